package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kb-labs/eslint-setup/internal/config"
	"github.com/kb-labs/eslint-setup/internal/console"
	"github.com/kb-labs/eslint-setup/internal/installer"
	"github.com/kb-labs/eslint-setup/internal/manifest"
)

func runSetup(cmd *cobra.Command, opts *options) error {
	cfg, err := opts.resolve(cmd)
	if err != nil {
		return err
	}

	log, err := opts.logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer log.Close()

	mgr, err := packageManager(cfg)
	if err != nil {
		return err
	}
	log.Printf("Using %s in %s", mgr.Name(), cfg.Dir)

	out := console.New(cmd.OutOrStdout())
	ins := &installer.Installer{
		Config:   cfg,
		PM:       mgr,
		Template: template(cfg),
		Log:      log,
		Console:  out,
		Policy:   installer.PolicyFor(cfg),
	}

	result, err := ins.Run(cmd.Context())
	if err != nil {
		report(out, cfg, err)
		return err
	}
	log.Printf("Done in %s", result.Duration.Round(time.Millisecond))
	return nil
}

// report prints the user-facing explanation of a failed run.
func report(out *console.Console, cfg *config.Config, err error) {
	var runErr *installer.Error
	if !errors.As(err, &runErr) {
		out.Errorf("%v", err)
		return
	}

	switch runErr.Kind {
	case installer.KindStartup:
		out.Errorf("could not load %s from '%s'.", cfg.ManifestFile, runErr.Path)
		if !errors.Is(err, manifest.ErrNotFound) {
			out.Println(runErr.Err.Error())
		}
		out.Println(fmt.Sprintf("Please ensure you run command from a folder that contains a %s.", cfg.ManifestFile))
	case installer.KindStepIO:
		out.Errorf("%s failed: %v", runErr.Op, runErr.Err)
		out.Println("Steps completed before the failure were not rolled back.")
	case installer.KindInstall:
		out.Errorf("dependency installation failed; the config and %s changes were kept.", cfg.ManifestFile)
	}
}
