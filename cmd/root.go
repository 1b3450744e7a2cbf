// Package cmd implements the eslint-setup CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kb-labs/eslint-setup/internal/installer"
)

// SetVersionInfo is called from main.go with values injected at build time via -ldflags.
// It must be called before Execute().
func SetVersionInfo(version, commit, date string) {
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"eslint-setup %s (commit %s, built %s)\n", version, commit, date,
	))
	rootCmd.Version = version
}

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "eslint-setup",
		Short: "Add ESLint to a JavaScript/TypeScript project",
		Long: `eslint-setup configures ESLint in the project in the current directory:
it writes .eslintrc.js, adds a 'lint' script to package.json and installs
the ESLint and Prettier dev dependencies.

Examples:
  eslint-setup                          set up the current project with npm
  eslint-setup --dir ../web --pm pnpm   set up another project with pnpm
  eslint-setup config                   print the effective configuration`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetup(cmd, opts)
		},
	}
	opts.register(cmd)
	cmd.AddCommand(newConfigCmd(opts))
	return cmd
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// classified run failures were already reported on the console
		if installer.KindOf(err) == "" {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(installer.ExitCode(err))
	}
}
