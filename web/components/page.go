package components

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/a-h/templ"
	"github.com/zmzlois/readingreact/model"
	"github.com/zmzlois/readingreact/theme"
)

func Page(rc *RenderContext, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{ctx: ctx, w: w}

		h.raw(`<!DOCTYPE html><html lang="en">`)
		h.render(Head(rc))
		h.raw(`<body>`)
		h.render(Navbar(rc))
		h.raw(`<main class="content">`)

		if rc.Page.Title != "" {
			h.raw(`<h1>`)
			h.text(rc.Page.Title)
			h.raw(`</h1>`)
		}

		h.render(body)
		h.raw(`</main>`)
		h.render(Footer(rc))
		h.raw(`</body></html>`)

		return h.err
	})
}

func Head(rc *RenderContext) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{ctx: ctx, w: w}

		title := rc.Theme.Head.DefaultTitle
		if rc.Page.Title != "" {
			title = rc.Page.Title + " – " + rc.Theme.Head.DefaultTitle
		}

		h.raw(`<head><meta charset="UTF-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1.0">`)
		h.raw(`<title>`)
		h.text(title)
		h.raw(`</title>`)

		for _, tag := range rc.Meta {
			h.render(Meta(tag))
		}

		h.raw(`<link rel="stylesheet" href="/assets/grid.css">`)
		h.raw(`</head>`)

		return h.err
	})
}

func Meta(tag theme.MetaTag) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{ctx: ctx, w: w}

		h.raw(`<meta`)

		if tag.Property != "" {
			h.attr("property", tag.Property)
		} else {
			h.attr("name", tag.Name)
		}

		h.attr("content", tag.Content)
		h.raw(`>`)

		return h.err
	})
}

func Navbar(rc *RenderContext) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{ctx: ctx, w: w}

		h.raw(`<nav class="navbar"><a class="logo" href="/"><b>`)
		h.text(rc.Theme.Logo)
		h.raw(`</b></a>`)

		h.raw(`<a class="nav-link"`)
		h.attr("href", "/guides")

		if rc.Type == PageTypeGuides {
			h.raw(` aria-current="page"`)
		}

		h.raw(`>Guides</a>`)

		if rc.Theme.Project.Link != "" {
			h.raw(`<a class="project-link" rel="noreferrer" target="_blank"`)
			h.attr("href", rc.Theme.Project.Link)
			h.raw(`>GitHub</a>`)
		}

		if rc.Theme.Chat.Link != "" {
			h.raw(`<a class="chat-link" rel="noreferrer" target="_blank"`)
			h.attr("href", rc.Theme.Chat.Link)
			h.raw(`>Discord</a>`)
		}

		h.raw(`</nav>`)

		return h.err
	})
}

func Footer(rc *RenderContext) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{ctx: ctx, w: w}
		from := rc.Theme.Footer.TranslatedFrom

		h.raw(`<footer class="footer">`)

		if rc.EditLink != "" {
			h.raw(`<a class="edit-link"`)
			h.attr("href", rc.EditLink)
			h.raw(`>Edit this page</a>`)
		}

		h.raw(`<div>`)
		h.text(rc.Theme.Footer.Text)
		h.raw(`<br>`)

		if from.Title != "" {
			h.raw(`<p class="text-xs">Translated from `)

			if from.Link != "" {
				h.raw(`<a`)
				h.attr("href", from.Link)
				h.raw(`>`)
				h.text(from.Title)
				h.raw(`</a>`)
			} else {
				h.text(from.Title)
			}

			h.raw(`</p>`)
		}

		h.raw(`</div></footer>`)

		return h.err
	})
}

// GridIndex lists the stored grids.
func GridIndex(summaries []model.GridSummary) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{ctx: ctx, w: w}

		if len(summaries) == 0 {
			h.raw(`<p class="empty">No grids imported yet.</p>`)

			return h.err
		}

		h.raw(`<ul class="grid-index">`)

		for _, s := range summaries {
			title := s.Title
			if title == "" {
				title = s.Name
			}

			h.raw(`<li><a`)
			h.attr("href", "/grids/"+url.PathEscape(s.Name))
			h.raw(`>`)
			h.text(title)
			h.raw(`</a> <span class="grid-size">`)
			h.text(fmt.Sprintf("%d×%d, %d cells", s.Spec.Rows, s.Spec.Columns, s.CellCount))
			h.raw(`</span></li>`)
		}

		h.raw(`</ul>`)

		return h.err
	})
}
