// Init command for the invobs CLI.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/invobs/pkg/inventory"
)

func newInitCmd(st *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration",
		Long: `Init creates the configuration directory and writes config.yaml if it does
not exist. Values given with --flavor, --items, or --use-variants are written
instead of the defaults. An existing config.yaml is left untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := st.translatorConfig()
			// Refuse to write a vocabulary that would not load.
			if _, err := inventory.NewTranslator(cfg, inventory.WithLogger(st.logger)); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			if err := os.MkdirAll(st.configDir, 0o755); err != nil {
				return sysErr(fmt.Errorf("create config directory: %w", err))
			}
			written, err := writeConfigIfMissing(st.configDir, cfg)
			if err != nil {
				return sysErr(err)
			}

			path := filepath.Join(st.configDir, configFileExt)
			if written {
				fmt.Fprintln(cmd.OutOrStdout(), "Wrote", path)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Config already exists:", path)
			}
			return nil
		},
	}
}
