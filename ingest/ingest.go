package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/zmzlois/readingreact/db"
	"github.com/zmzlois/readingreact/layout"
	"github.com/zmzlois/readingreact/logging"
	"github.com/zmzlois/readingreact/watch"
)

var logCtx = logging.PackageCtx("ingest")

// File loads the document at path and stores it. root is the directory Source paths are relative to.
// It returns the stored grid name.
func File(storage db.Storage, root, path string) (string, error) {
	doc, err := layout.LoadFile(path)
	if err != nil {
		return "", err
	}

	grid, err := doc.ToModel()
	if err != nil {
		return "", fmt.Errorf("invalid document %s: %w", path, err)
	}

	if rel, err := filepath.Rel(root, path); err == nil {
		grid.Source = filepath.ToSlash(rel)
	}

	if err := storage.SaveGrid(grid); err != nil {
		return "", err
	}

	return grid.Name, nil
}

// Loop keeps storage in line with the watched documents until events is closed or ctx is done.
// Removed files delete the grid named after the file; a document naming itself differently stays stored.
func Loop(ctx context.Context, events <-chan watch.Event, storage db.Storage, root string) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				slog.InfoContext(logCtx, "Document events closed, bailing out")

				return
			}

			handle(storage, root, ev)
		}
	}
}

func handle(storage db.Storage, root string, ev watch.Event) {
	if ev.Removed {
		base := filepath.Base(ev.Path)
		name := base[:len(base)-len(filepath.Ext(base))]

		err := storage.DeleteGrid(name)
		if err != nil && !errors.Is(err, db.ErrGridNotFound) {
			slog.ErrorContext(logCtx, "Could not delete grid", "path", ev.Path, "error", err)

			return
		}

		slog.InfoContext(logCtx, "Removed grid", "name", name)

		return
	}

	name, err := File(storage, root, ev.Path)
	if err != nil {
		slog.WarnContext(logCtx, "Could not import document", "path", ev.Path, "error", err)

		return
	}

	slog.InfoContext(logCtx, "Reloaded grid", "name", name, "path", ev.Path)
}
