package readingreact

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zmzlois/readingreact/grid"
)

// guidesCmd represents the guides command.
var guidesCmd = &cobra.Command{
	Use:   "guides",
	Short: "Print the guide coordinates of a grid",
	Long:  `Print one line per guide of a rows x columns grid: the flat index and its 1-indexed x (column) and y (row).`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		guides, err := grid.Guides(rows, columns)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for i, g := range guides {
			if _, err := fmt.Fprintf(out, "%d\t%d\t%d\n", i, g.X, g.Y); err != nil {
				return fmt.Errorf("could not write guides: %w", err)
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(guidesCmd)

	guidesCmd.Flags().IntVarP(&rows, "rows", "r", 1, "Number of rows")
	guidesCmd.Flags().IntVarP(&columns, "columns", "c", 1, "Number of columns")
}
