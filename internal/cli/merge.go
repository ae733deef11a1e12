// Merge command combines two vocabularies.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/invobs/pkg/inventory"
	"github.com/mesh-intelligence/invobs/pkg/types"
)

func newMergeCmd(st *cliState) *cobra.Command {
	var (
		withItems       []string
		withFlavor      string
		withUseVariants bool
	)

	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge the configured vocabulary with another",
		Long: `Merge builds a second translator from --with and prints the union of both
vocabularies. Translators of different flavors cannot be merged.

Example:
  invobs merge --items log,dirt --with planks,log
  invobs merge --items log --with log#0 --with-flavor variant`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := st.translator()
			if err != nil {
				return fmt.Errorf("build translator: %w", err)
			}

			flavor := withFlavor
			if flavor == "" {
				flavor = base.Flavor()
			}
			other, err := inventory.NewTranslator(types.Config{
				Flavor:      flavor,
				Items:       withItems,
				UseVariants: withUseVariants,
			}, inventory.WithLogger(st.logger))
			if err != nil {
				return fmt.Errorf("build --with translator: %w", err)
			}

			merged, err := inventory.Merge(base, other)
			if err != nil {
				return err
			}
			return printSpace(cmd, st.jsonMode, merged.Space())
		},
	}

	cmd.Flags().StringSliceVar(&withItems, "with", nil, "items of the second vocabulary, comma separated")
	cmd.Flags().StringVar(&withFlavor, "with-flavor", "", "flavor of the second vocabulary (default: same as the first)")
	cmd.Flags().BoolVar(&withUseVariants, "with-use-variants", false, "use_variants for the second vocabulary")
	return cmd
}
