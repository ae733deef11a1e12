// Vocab command prints the configured vocabulary.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVocabCmd(st *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "vocab",
		Short: "Print the sorted item vocabulary",
		Long: `Vocab prints the item keys the configured translator reports on, in the
order counts are laid out. With --json it prints the full observation space.

Example:
  invobs vocab --items planks,log,dirt
  invobs vocab --flavor variant --items log#0,log#1 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := st.translator()
			if err != nil {
				return fmt.Errorf("build translator: %w", err)
			}
			return printSpace(cmd, st.jsonMode, tr.Space())
		},
	}
}
