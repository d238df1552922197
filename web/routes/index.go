package routes

import (
	"log/slog"
	"net/http"

	cs "github.com/zmzlois/readingreact/web/components"
)

// IndexHandle lists the stored grids.
func (s *ServerHandler) IndexHandle(w http.ResponseWriter, r *http.Request) {
	slog.InfoContext(logCtx, "Handling index page request")

	summaries, err := s.Storage.ListGrids()
	if err != nil {
		slog.ErrorContext(logCtx, "Failed to list grids", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	rc := s.BuildRenderContext(s.PageFor(r, ""), "", cs.PageTypeIndex)
	s.renderPage(w, r, &rc, cs.GridIndex(summaries))
}
