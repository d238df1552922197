package routes

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/zmzlois/readingreact/db"
	"github.com/zmzlois/readingreact/grid"
	"github.com/zmzlois/readingreact/model"
	cs "github.com/zmzlois/readingreact/web/components"
)

// PlaceCells applies the configured overflow policy to a stored document.
func (s *ServerHandler) PlaceCells(doc *model.GridDocument) (*model.GridDocument, error) {
	policy := s.Overflow
	if policy == "" {
		policy = grid.OverflowAllow
	}

	cells, err := grid.Place(doc.Spec, doc.Cells, policy)
	if err != nil {
		return nil, err
	}

	placed := *doc
	placed.Cells = cells

	return &placed, nil
}

func gridTitle(doc *model.GridDocument) string {
	if doc.Title == "" {
		return doc.Name
	}

	return doc.Title
}

// WriteGridPage renders the page GridHandle would serve for doc, for static output.
func (s *ServerHandler) WriteGridPage(ctx context.Context, w io.Writer, doc *model.GridDocument) error {
	placed, err := s.PlaceCells(doc)
	if err != nil {
		return err
	}

	page := model.PageContext{
		Title:         gridTitle(doc),
		Path:          "/grids/" + url.PathEscape(doc.Name),
		DefaultLocale: s.DefaultLocale,
	}

	s.Metrics.observeGuides(placed.Spec)

	rc := s.BuildRenderContext(page, doc.Source, cs.PageTypeGrid)

	return cs.Page(&rc, cs.DocumentGrid(placed)).Render(ctx, w)
}

// GridHandle renders one stored grid document.
func (s *ServerHandler) GridHandle(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	slog.InfoContext(logCtx, "Handling grid page request", "name", name)

	doc, err := s.Storage.LoadGrid(name)
	if errors.Is(err, db.ErrGridNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)

		return
	}

	if err != nil {
		slog.ErrorContext(logCtx, "Failed to load grid", "name", name, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	placed, err := s.PlaceCells(doc)
	if err != nil {
		slog.WarnContext(logCtx, "Grid has misplaced cells", "name", name, "policy", s.Overflow, "error", err)
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)

		return
	}

	s.Metrics.observeGuides(placed.Spec)

	rc := s.BuildRenderContext(s.PageFor(r, gridTitle(doc)), doc.Source, cs.PageTypeGrid)
	s.renderPage(w, r, &rc, cs.DocumentGrid(placed))
}

// GuidesHandle renders an empty grid of the requested size, as an authoring aid.
func (s *ServerHandler) GuidesHandle(w http.ResponseWriter, r *http.Request) {
	slog.InfoContext(logCtx, "Handling guides page request")

	rows, err := queryDimension(r, "rows", 3)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	columns, err := queryDimension(r, "columns", 3)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	spec, err := grid.NewSpec(rows, columns)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	s.Metrics.observeGuides(spec)

	rc := s.BuildRenderContext(s.PageFor(r, "Guides"), "", cs.PageTypeGuides)
	s.renderPage(w, r, &rc, cs.Grid(spec))
}

func queryDimension(r *http.Request, key string, fallback int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, err
	}

	return int(value), nil
}
