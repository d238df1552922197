package db

import (
	"fmt"
	"log/slog"
)

// Merge copies every grid of inputs into output. Inputs are applied in order,
// so a grid stored in several inputs ends up with the last one's version.
func Merge(inputs []Storage, output Storage) error {
	for i, input := range inputs {
		summaries, err := input.ListGrids()
		if err != nil {
			return fmt.Errorf("could not list grids of input %d: %w", i, err)
		}

		for _, summary := range summaries {
			doc, err := input.LoadGrid(summary.Name)
			if err != nil {
				return fmt.Errorf("could not read grid %s of input %d: %w", summary.Name, i, err)
			}

			if _, err := output.LoadGrid(summary.Name); err == nil {
				slog.WarnContext(logCtx, "Grid replaced by a later input", "name", summary.Name, "input", i)
			}

			if err := output.SaveGrid(doc); err != nil {
				return err
			}
		}

		slog.InfoContext(logCtx, "Merged input", "input", i, "grids", len(summaries))
	}

	return nil
}
