package routes

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/zmzlois/readingreact/db"
	"github.com/zmzlois/readingreact/grid"
	"github.com/zmzlois/readingreact/logging"
	"github.com/zmzlois/readingreact/model"
	"github.com/zmzlois/readingreact/theme"
	cs "github.com/zmzlois/readingreact/web/components"
)

var logCtx = logging.PackageCtx("routes")

// ServerHandler holds all dependencies needed for the web server handlers.
type ServerHandler struct {
	Storage       db.Storage
	Theme         theme.Config
	Overflow      grid.OverflowPolicy
	DefaultLocale string
	Env           theme.Env
	Metrics       *Metrics
}

// SafeRenderTemplate safely renders a templ component to an http.ResponseWriter.
func SafeRenderTemplate(ctx context.Context, component templ.Component, w http.ResponseWriter) error {
	// Do not write to w because it implies 200 status
	var buf bytes.Buffer

	err := component.Render(ctx, &buf)
	if err != nil {
		return fmt.Errorf("could not render template: %w", err)
	}

	// Template executed successfully to the buffer.
	// Now, copy it over to the ResponseWriter
	// This implies a 200 OK status code
	w.Header().Set("Content-Type", "text/html; charset=UTF-8")

	if _, err := buf.WriteTo(w); err != nil {
		slog.ErrorContext(logCtx, "Failed to write response", "error", err)

		return fmt.Errorf("could not write to response writer: %w", err)
	}

	return nil
}

// PageFor describes the page a request is for.
func (s *ServerHandler) PageFor(r *http.Request, title string) model.PageContext {
	return model.PageContext{
		Title:         title,
		Path:          r.URL.Path,
		Locale:        r.URL.Query().Get("locale"),
		DefaultLocale: s.DefaultLocale,
	}
}

// BuildRenderContext assembles the page chrome. source is the document path for the edit link, if any.
func (s *ServerHandler) BuildRenderContext(page model.PageContext, source string, pageType cs.PageType) cs.RenderContext {
	return cs.RenderContext{
		Theme:    s.Theme,
		Page:     page,
		Meta:     theme.HeadMeta(s.Theme, page, s.Env),
		EditLink: theme.EditLink(s.Theme, source),
		Type:     pageType,
	}
}

func (s *ServerHandler) renderPage(w http.ResponseWriter, r *http.Request, rc *cs.RenderContext, body templ.Component) {
	err := SafeRenderTemplate(r.Context(), cs.Page(rc, body), w)
	if err != nil {
		slog.ErrorContext(logCtx, "Failed to render page", "path", r.URL.Path, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		s.Metrics.observeRender(rc.Type, false)

		return
	}

	s.Metrics.observeRender(rc.Type, true)
}
