package readingreact

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zmzlois/readingreact/db"
)

var (
	filenames []string
	mergeOut  string
)

// mergeCmd represents the merge command.
var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge grid storages into one",
	Long:  `Given several sqlite storages, create a new one holding all of their grids. Later files win on name conflicts.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		if _, err := os.Stat(mergeOut); err == nil {
			return fmt.Errorf("output file %s already exists", mergeOut)
		}

		inputs := make([]db.Storage, 0, len(filenames))
		for _, fn := range filenames {
			store, err := db.NewStorageFromPath(fn)
			if err != nil {
				return err
			}
			defer store.Close()

			inputs = append(inputs, store)
		}

		output, err := db.NewStorageFromPath(mergeOut)
		if err != nil {
			return err
		}
		defer output.Close()

		return db.Merge(inputs, output)
	},
}

func init() {
	rootCmd.AddCommand(mergeCmd)

	mergeCmd.Flags().StringSliceVarP(
		&filenames,
		"file",
		"f",
		[]string{},
		"List of storage files to merge",
	)

	mergeCmd.Flags().StringVarP(
		&mergeOut,
		"out",
		"o",
		"./merged.sqlite",
		"Output path for the merged storage")
}
