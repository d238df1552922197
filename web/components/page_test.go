package components_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zmzlois/readingreact/model"
	"github.com/zmzlois/readingreact/theme"
	"github.com/zmzlois/readingreact/web/components"
)

func testRenderContext() *components.RenderContext {
	cfg := theme.Default()
	page := model.PageContext{Title: "Hooks", Path: "/grids/hooks"}

	return &components.RenderContext{
		Theme:    cfg,
		Page:     page,
		Meta:     theme.HeadMeta(cfg, page, nil),
		EditLink: theme.EditLink(cfg, "grids/hooks.yaml"),
		Type:     components.PageTypeGrid,
	}
}

func TestPage(t *testing.T) {
	t.Run("renders chrome around body", func(t *testing.T) {
		doc := renderDoc(t, components.Page(testRenderContext(), components.Text("body text")))

		assert.Equal(t, "Hooks – Reading React", doc.Find("title").Text())
		assert.Equal(t, "Hooks", doc.Find("main h1").Text())
		assert.Contains(t, doc.Find("main").Text(), "body text")
		assert.Equal(t, "Reading React", doc.Find("nav .logo b").Text())
		assert.Equal(t, "https://github.com/zmzlois/reading-react", doc.Find("nav .project-link").AttrOr("href", ""))
		assert.Equal(t, "https://discord.gg/CPWTVStGZQ", doc.Find("nav .chat-link").AttrOr("href", ""))
	})

	t.Run("renders head meta tags", func(t *testing.T) {
		doc := renderDoc(t, components.Page(testRenderContext(), nil))

		assert.Equal(t, "https://reading-react.vercel.app/grids/hooks", doc.Find(`meta[property="og:url"]`).AttrOr("content", ""))
		assert.Equal(t, 1, doc.Find(`meta[property="og:title"]`).Length())
		assert.Equal(t, "Hooks", doc.Find(`meta[property="og:description"]`).AttrOr("content", ""))
		assert.Equal(t, "@zmzlois", doc.Find(`meta[name="twitter:site"]`).AttrOr("content", ""))
		assert.Equal(t, "/assets/grid.css", doc.Find(`link[rel="stylesheet"]`).AttrOr("href", ""))
	})

	t.Run("renders footer", func(t *testing.T) {
		doc := renderDoc(t, components.Page(testRenderContext(), nil))

		footer := doc.Find("footer")
		assert.Contains(t, footer.Text(), "Reading React - zmzlois")
		assert.Equal(t, "https://react-book-new.vercel.app/", footer.Find("p.text-xs a").AttrOr("href", ""))
		assert.Equal(t, "Analysing React Source Code", footer.Find("p.text-xs a").Text())
		assert.Equal(t, "https://github.com/zmzlois/reading-react/blob/main/grids/hooks.yaml", footer.Find(".edit-link").AttrOr("href", ""))
	})

	t.Run("untitled page uses default title", func(t *testing.T) {
		rc := testRenderContext()
		rc.Page.Title = ""
		rc.EditLink = ""
		rc.Theme.Chat.Link = ""

		doc := renderDoc(t, components.Page(rc, nil))

		assert.Equal(t, "Reading React", doc.Find("title").Text())
		assert.Equal(t, 0, doc.Find("main h1").Length())
		assert.Equal(t, 0, doc.Find(".edit-link").Length())
		assert.Equal(t, 0, doc.Find(".chat-link").Length())
	})

	t.Run("marks the guides page as current", func(t *testing.T) {
		rc := testRenderContext()
		rc.Type = components.PageTypeGuides

		doc := renderDoc(t, components.Page(rc, nil))

		assert.Equal(t, "page", doc.Find(`nav a[href="/guides"]`).AttrOr("aria-current", ""))
	})
}

func TestGridIndex(t *testing.T) {
	t.Run("lists grids", func(t *testing.T) {
		doc := renderDoc(t, components.GridIndex([]model.GridSummary{
			{Name: "hooks", Title: "Hooks", Spec: model.GridSpec{Rows: 2, Columns: 3}, CellCount: 4},
			{Name: "fiber tree", Spec: model.GridSpec{Rows: 1, Columns: 1}},
		}))

		links := doc.Find(".grid-index li a")
		assert.Equal(t, 2, links.Length())
		assert.Equal(t, "/grids/hooks", links.Eq(0).AttrOr("href", ""))
		assert.Equal(t, "Hooks", links.Eq(0).Text())
		assert.Equal(t, "/grids/fiber%20tree", links.Eq(1).AttrOr("href", ""))
		assert.Equal(t, "fiber tree", links.Eq(1).Text())
		assert.Equal(t, "2×3, 4 cells", doc.Find(".grid-size").First().Text())
	})

	t.Run("empty index", func(t *testing.T) {
		doc := renderDoc(t, components.GridIndex(nil))

		assert.Equal(t, 1, doc.Find("p.empty").Length())
	})
}
