// Package config holds the values the installer is constructed with.
// Default reproduces the stock ESLint setup; a JSON file can override any
// field for projects that need a different dependency set or file names.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kb-labs/eslint-setup/internal/lintconfig"
	"github.com/kb-labs/eslint-setup/internal/manifest"
)

// Config describes one setup run.
type Config struct {
	// Dir is the project directory. It is never read from a config file.
	Dir string `json:"-"`

	ManifestFile string `json:"manifestFile"`
	ConfigFile   string `json:"configFile"`
	// Template overrides the embedded ESLint config template with a file path.
	Template string `json:"template,omitempty"`

	ScriptName  string `json:"scriptName"`
	LintCommand string `json:"lintCommand"`

	// Dependencies are installed in this order, by name only.
	Dependencies []string `json:"dependencies"`

	// PackageManager is npm, pnpm, yarn or auto.
	PackageManager string `json:"packageManager"`
	// InstallCommand replaces PackageManager with a custom command line;
	// package names are appended to it.
	InstallCommand string `json:"installCommand,omitempty"`

	// FailOnInstallError turns a failed dependency install into a fatal error.
	FailOnInstallError bool `json:"failOnInstallError"`
}

// DefaultDependencies is the stock dev-dependency list.
var DefaultDependencies = []string{
	"eslint",
	"eslint-config-prettier",
	"eslint-config-standard",
	"eslint-plugin-import",
	"eslint-plugin-node",
	"eslint-plugin-prettier",
	"eslint-plugin-promise",
	"@typescript-eslint/eslint-plugin",
	"@typescript-eslint/parser",
	"prettier",
}

// Default returns the stock configuration for dir.
func Default(dir string) *Config {
	return &Config{
		Dir:            dir,
		ManifestFile:   manifest.DefaultFileName,
		ConfigFile:     lintconfig.DefaultTargetName,
		ScriptName:     "lint",
		LintCommand:    "eslint . --ext .ts,.js",
		Dependencies:   append([]string(nil), DefaultDependencies...),
		PackageManager: "npm",
	}
}

// Read overlays the JSON file at path onto Default(dir). Fields absent from
// the file keep their defaults.
func Read(path, dir string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no config found at %s", path)
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default(dir)
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Encode writes cfg as indented JSON.
func Encode(w io.Writer, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Dir == "" {
		errs = append(errs, errors.New("project directory is required"))
	}
	for _, f := range []struct{ field, value string }{
		{"manifestFile", c.ManifestFile},
		{"configFile", c.ConfigFile},
	} {
		if f.value == "" {
			errs = append(errs, fmt.Errorf("%s is required", f.field))
		} else if strings.ContainsAny(f.value, `/\`) {
			errs = append(errs, fmt.Errorf("%s %q must be a file name, not a path", f.field, f.value))
		}
	}
	if strings.TrimSpace(c.ScriptName) == "" {
		errs = append(errs, errors.New("scriptName is required"))
	}
	if strings.TrimSpace(c.LintCommand) == "" {
		errs = append(errs, errors.New("lintCommand is required"))
	}
	if len(c.Dependencies) == 0 {
		errs = append(errs, errors.New("dependencies must not be empty"))
	}
	for i, d := range c.Dependencies {
		if strings.TrimSpace(d) == "" || strings.ContainsAny(d, " \t") {
			errs = append(errs, fmt.Errorf("dependencies[%d] %q is not a package name", i, d))
		}
	}
	if c.InstallCommand == "" {
		switch c.PackageManager {
		case "", "npm", "pnpm", "yarn", "auto":
		default:
			errs = append(errs, fmt.Errorf("unknown packageManager %q", c.PackageManager))
		}
	}
	return errors.Join(errs...)
}
