package cmd

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kb-labs/eslint-setup/internal/config"
	"github.com/kb-labs/eslint-setup/internal/lintconfig"
	"github.com/kb-labs/eslint-setup/internal/logger"
	"github.com/kb-labs/eslint-setup/internal/pm"
)

// options holds the persistent flags shared by all commands. Every flag
// defaults to the stock behavior.
type options struct {
	dir                string
	configPath         string
	packageManager     string
	installCommand     string
	failOnInstallError bool
	verbose            bool
	logFile            string
}

func (o *options) register(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.StringVar(&o.dir, "dir", "", "project directory (default: current directory)")
	f.StringVarP(&o.configPath, "config", "c", "", "JSON file overriding the default configuration")
	f.StringVar(&o.packageManager, "pm", "npm", "package manager: npm, pnpm, yarn or auto")
	f.StringVar(&o.installCommand, "install-cmd", "", `custom install command, package names are appended (e.g. "bun add -d")`)
	f.BoolVar(&o.failOnInstallError, "fail-on-install-error", false, "exit non-zero when installing dependencies fails")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "log every step and package manager output to stderr")
	f.StringVar(&o.logFile, "log-file", "", "also write the log to this file")
}

// resolve builds the run configuration from the config file and flags.
// Flags only override file values when set explicitly.
func (o *options) resolve(cmd *cobra.Command) (*config.Config, error) {
	dir := o.dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = wd
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	cfg := config.Default(dir)
	if o.configPath != "" {
		if cfg, err = config.Read(o.configPath, dir); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("pm") {
		cfg.PackageManager = o.packageManager
	}
	if flags.Changed("install-cmd") {
		cfg.InstallCommand = o.installCommand
	}
	if flags.Changed("fail-on-install-error") {
		cfg.FailOnInstallError = o.failOnInstallError
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// packageManager returns the custom command manager when one is configured.
func packageManager(cfg *config.Config) (pm.PackageManager, error) {
	if cfg.InstallCommand != "" {
		return pm.FromCommand(cfg.InstallCommand)
	}
	return pm.ByName(cfg.PackageManager, cfg.Dir)
}

func template(cfg *config.Config) *lintconfig.Template {
	if cfg.Template != "" {
		return lintconfig.FromFile(cfg.Template)
	}
	return lintconfig.Embedded()
}

// logger returns the diagnostic log: silent by default, stderr with
// --verbose, plus a file with --log-file.
func (o *options) logger(stderr io.Writer) (*logger.Logger, error) {
	var mirror io.Writer
	if o.verbose {
		mirror = stderr
	}
	if o.logFile != "" {
		return logger.Open(o.logFile, mirror)
	}
	if mirror != nil {
		return logger.New(mirror), nil
	}
	return logger.NewDiscard(), nil
}
