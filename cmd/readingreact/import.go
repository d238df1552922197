package readingreact

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/zmzlois/readingreact/db"
	"github.com/zmzlois/readingreact/ingest"
	"github.com/zmzlois/readingreact/layout"
)

var documentsDir string

// importCmd represents the import command.
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import grid documents into storage",
	Long: `Load every grid document under --dir matching --pattern and store it.
Documents already stored under the same name are replaced. Invalid documents are reported and skipped.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		files, err := layout.FindDocuments(documentsDir, pattern)
		if err != nil {
			return err
		}

		if len(files) == 0 {
			slog.WarnContext(logCtx, "No documents found", "dir", documentsDir, "pattern", pattern)

			return nil
		}

		storage, err := db.NewStorageFromPath(storagePath)
		if err != nil {
			return fmt.Errorf("could not open %s as sqlite file: %w", storagePath, err)
		}
		defer storage.Close()

		bar := progressbar.Default(int64(len(files)), "Importing grids...")

		var errs []error

		for _, path := range files {
			name, err := ingest.File(storage, documentsDir, path)
			if err != nil {
				errs = append(errs, err)
			} else {
				slog.DebugContext(logCtx, "Imported grid", "name", name, "path", path)
			}

			_ = bar.Add(1)
		}

		slog.InfoContext(logCtx, "Import finished", "imported", len(files)-len(errs), "failed", len(errs))

		return errors.Join(errs...)
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVarP(&documentsDir,
		"dir",
		"d",
		"./grids",
		"Directory with grid documents")

	importCmd.Flags().StringVar(&pattern,
		"pattern",
		layout.DefaultPattern,
		"Glob of document paths, relative to --dir")

	importCmd.Flags().StringVarP(
		&storagePath,
		"storage",
		"s",
		"./grids.sqlite",
		"Path to the sqlite file with imported grids")
}
