package components

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/zmzlois/readingreact/grid"
	"github.com/zmzlois/readingreact/model"
)

// Grid lays children out in a rows x columns grid over a layer of alignment guides.
// Guides are recomputed on every render and come before the children, so they never cover cell content.
func Grid(spec model.GridSpec, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		guides, err := grid.Guides(spec.Rows, spec.Columns)
		if err != nil {
			return fmt.Errorf("could not render grid: %w", err)
		}

		h := &htmlWriter{ctx: ctx, w: w}

		h.raw(`<div class="grid"`)
		h.attr("style", GridStyle(spec))
		h.raw(`>`)
		h.render(GuideLayer(guides))

		for _, child := range children {
			h.render(child)
		}

		h.raw(`</div>`)

		return h.err
	})
}

// GuideLayer renders the non-interactive guide markers.
func GuideLayer(guides []model.Guide) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{ctx: ctx, w: w}

		h.raw(`<div class="grid-guides" aria-hidden="true">`)

		for _, g := range guides {
			h.raw(`<div class="grid-guide"`)
			h.attr("style", GuideStyle(g))
			h.raw(`></div>`)
		}

		h.raw(`</div>`)

		return h.err
	})
}

// Cell pins content to one grid cell. It does not know the extent of its grid.
func Cell(row, column int, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{ctx: ctx, w: w}

		h.raw(`<div class="grid-cell"`)
		h.attr("style", CellStyle(model.RowCol{Row: row, Col: column}))
		h.raw(`>`)
		h.render(content)
		h.raw(`</div>`)

		return h.err
	})
}

// Text is escaped plain text.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))

		return err
	})
}

// DocumentGrid renders a stored grid document, cells as plain text.
func DocumentGrid(doc *model.GridDocument) templ.Component {
	cells := make([]templ.Component, 0, len(doc.Cells))
	for _, c := range doc.Cells {
		cells = append(cells, Cell(c.Row, c.Col, Text(c.Content)))
	}

	return Grid(doc.Spec, cells...)
}
