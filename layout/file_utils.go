package layout

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/gobwas/glob"
	"github.com/zmzlois/readingreact/logging"
)

var logCtx = logging.PackageCtx("layout")

// DefaultPattern matches YAML and JSON grid documents.
const DefaultPattern = "**.{yaml,yml,json}"

func OpenPath(path string) (*os.File, error) {
	slog.DebugContext(logCtx, "Opening document", "path", path)

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open file %s: %w", path, err)
	}

	return file, nil
}

// FindDocuments walks dir and returns the files whose slash-separated path relative to dir matches pattern.
func FindDocuments(dir, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}

	matcher, err := glob.Compile(pattern, '/')
	if err != nil {
		return nil, fmt.Errorf("invalid document pattern %q: %w", pattern, err)
	}

	var found []string

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return fmt.Errorf("could not relativize %s: %w", path, err)
		}

		if matcher.Match(filepath.ToSlash(rel)) {
			found = append(found, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not scan %s: %w", dir, err)
	}

	slices.Sort(found)

	slog.InfoContext(logCtx, "Found documents", "dir", dir, "pattern", pattern, "count", len(found))

	return found, nil
}

// LoadFile reads one document from disk. Documents without a name are named after the file.
func LoadFile(path string) (*Document, error) {
	file, err := OpenPath(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	doc, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("could not decode %s: %w", path, err)
	}

	if doc.Name == "" {
		base := filepath.Base(path)
		doc.Name = base[:len(base)-len(filepath.Ext(base))]
	}

	return doc, nil
}
