// Shared helpers for invobs commands.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/invobs/pkg/inventory"
)

// printSpace writes the space's keys one per line, or the whole space as
// indented JSON in JSON mode.
func printSpace(cmd *cobra.Command, jsonMode bool, s inventory.Space) error {
	out := cmd.OutOrStdout()
	if jsonMode {
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal space: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}
	for _, k := range s.Keys {
		fmt.Fprintln(out, k)
	}
	return nil
}
