package routes_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zmzlois/readingreact/grid"
	"github.com/zmzlois/readingreact/model"
)

func TestPlaceCells(t *testing.T) {
	tests := []struct {
		name      string
		policy    grid.OverflowPolicy
		wantCell  model.RowCol
		wantError bool
	}{
		{name: "unset policy allows overflow", policy: "", wantCell: model.RowCol{Row: 3, Col: 4}},
		{name: "allow", policy: grid.OverflowAllow, wantCell: model.RowCol{Row: 3, Col: 4}},
		{name: "clamp", policy: grid.OverflowClamp, wantCell: model.RowCol{Row: 2, Col: 3}},
		{name: "reject", policy: grid.OverflowReject, wantError: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler := setupMockServerHandler()
			handler.Overflow = tc.policy

			doc := createTestGrid()

			placed, err := handler.PlaceCells(doc)
			if tc.wantError {
				require.ErrorIs(t, err, grid.ErrCellOutOfRange)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantCell, placed.Cells[1].RowCol)
			assert.Equal(t, model.RowCol{Row: 3, Col: 4}, doc.Cells[1].RowCol, "stored document must not change")
		})
	}
}

func TestGridHandle(t *testing.T) {
	tests := []struct {
		name           string
		gridName       string
		policy         grid.OverflowPolicy
		storageError   error
		expectedStatus int
	}{
		{name: "renders grid", gridName: "hooks", expectedStatus: http.StatusOK},
		{name: "unknown grid", gridName: "fiber", expectedStatus: http.StatusNotFound},
		{name: "storage error", gridName: "hooks", storageError: errors.New("database error"), expectedStatus: http.StatusInternalServerError},
		{name: "rejected overflow", gridName: "hooks", policy: grid.OverflowReject, expectedStatus: http.StatusUnprocessableEntity},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler := setupMockServerHandler()
			handler.Overflow = tc.policy
			handler.MockStorage.ReturnError = tc.storageError

			req := httptest.NewRequest(http.MethodGet, "/grids/"+tc.gridName, nil)
			req.SetPathValue("name", tc.gridName)
			w := httptest.NewRecorder()

			handler.GridHandle(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Equal(t, 1, handler.MockStorage.CallCount, "LoadGrid should be called exactly once")
		})
	}

	t.Run("page content", func(t *testing.T) {
		handler := setupMockServerHandler()

		req := httptest.NewRequest(http.MethodGet, "/grids/hooks", nil)
		req.SetPathValue("name", "hooks")
		w := httptest.NewRecorder()

		handler.GridHandle(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		doc, err := goquery.NewDocumentFromReader(w.Body)
		require.NoError(t, err)

		assert.Equal(t, "Hooks", doc.Find("main h1").Text())
		assert.Equal(t, 6, doc.Find(".grid-guide").Length())
		assert.Equal(t, "grid-row: 3; grid-column: 4;", doc.Find(".grid-cell").Eq(1).AttrOr("style", ""))
		assert.Equal(t, "https://github.com/zmzlois/reading-react/blob/main/grids/hooks.yaml", doc.Find(".edit-link").AttrOr("href", ""))
	})
}

func TestGuidesHandle(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		expectedStatus int
		expectedGuides int
	}{
		{name: "defaults", target: "/guides", expectedStatus: http.StatusOK, expectedGuides: 9},
		{name: "explicit size", target: "/guides?rows=2&columns=5", expectedStatus: http.StatusOK, expectedGuides: 10},
		{name: "zero rows", target: "/guides?rows=0", expectedStatus: http.StatusBadRequest},
		{name: "negative columns", target: "/guides?columns=-2", expectedStatus: http.StatusBadRequest},
		{name: "not a number", target: "/guides?rows=many", expectedStatus: http.StatusBadRequest},
		{name: "too many guides", target: "/guides?rows=100000&columns=100000", expectedStatus: http.StatusBadRequest},
		{name: "int32 maximum", target: "/guides?rows=2147483647&columns=2147483647", expectedStatus: http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler := setupMockServerHandler()

			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			w := httptest.NewRecorder()

			handler.GuidesHandle(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			if tc.expectedStatus != http.StatusOK {
				return
			}

			doc, err := goquery.NewDocumentFromReader(w.Body)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedGuides, doc.Find(".grid-guide").Length())
			assert.Equal(t, 0, doc.Find(".grid-cell").Length())
		})
	}
}

func TestWriteGridPage(t *testing.T) {
	t.Run("writes the full page", func(t *testing.T) {
		handler := setupMockServerHandler()

		var buf bytes.Buffer
		require.NoError(t, handler.WriteGridPage(context.Background(), &buf, createTestGrid()))

		doc, err := goquery.NewDocumentFromReader(&buf)
		require.NoError(t, err)

		assert.Equal(t, "Hooks – Reading React", doc.Find("title").Text())
		assert.Equal(t, "https://reading-react.vercel.app/grids/hooks", doc.Find(`meta[property="og:url"]`).AttrOr("content", ""))
		assert.Equal(t, 2, doc.Find(".grid-cell").Length())
	})

	t.Run("untitled grid uses its name", func(t *testing.T) {
		handler := setupMockServerHandler()
		untitled := createTestGrid()
		untitled.Title = ""

		var buf bytes.Buffer
		require.NoError(t, handler.WriteGridPage(context.Background(), &buf, untitled))
		assert.Contains(t, buf.String(), "<h1>hooks</h1>")
	})

	t.Run("rejected placement writes nothing", func(t *testing.T) {
		handler := setupMockServerHandler()
		handler.Overflow = grid.OverflowReject

		var buf bytes.Buffer
		require.ErrorIs(t, handler.WriteGridPage(context.Background(), &buf, createTestGrid()), grid.ErrCellOutOfRange)
		assert.Empty(t, buf.String())
	})
}
