// Version command for the invobs CLI.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const modulePath = "github.com/mesh-intelligence/invobs"

// version is overridden at build time with
// -ldflags "-X github.com/mesh-intelligence/invobs/internal/cli.version=...".
var version = "0.1.0"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the invobs version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "invobs v%s\nmodule: %s\n", version, modulePath)
			return nil
		},
	}
}
