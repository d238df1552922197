package components

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/zmzlois/readingreact/model"
)

func GridStyle(spec model.GridSpec) string {
	return fmt.Sprintf("--rows: %d; --columns: %d;", spec.Rows, spec.Columns)
}

func GuideStyle(g model.Guide) string {
	return fmt.Sprintf("--x: %d; --y: %d;", g.X, g.Y)
}

func CellStyle(at model.RowCol) string {
	return fmt.Sprintf("grid-row: %d; grid-column: %d;", at.Row, at.Col)
}

// htmlWriter keeps the first write error so that components can write without checking every call.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err == nil {
		_, h.err = io.WriteString(h.w, s)
	}
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) attr(name, value string) {
	h.raw(" " + name + "=\"" + templ.EscapeString(value) + "\"")
}

func (h *htmlWriter) render(c templ.Component) {
	if h.err == nil && c != nil {
		h.err = c.Render(h.ctx, h.w)
	}
}
