package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kb-labs/eslint-setup/internal/config"
)

func newConfigCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as JSON",
		Long: `Print the configuration a setup run would use, after applying
--config and the other flags. The output can be saved and passed back
with --config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			return config.Encode(cmd.OutOrStdout(), cfg)
		},
	}
}
