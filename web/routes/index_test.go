package routes_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexHandle(t *testing.T) {
	t.Run("lists grids", func(t *testing.T) {
		handler := setupMockServerHandler()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()

		handler.IndexHandle(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, handler.MockStorage.CallCount, "ListGrids should be called exactly once")

		doc, err := goquery.NewDocumentFromReader(w.Body)
		require.NoError(t, err)

		assert.Equal(t, "/grids/hooks", doc.Find(".grid-index a").AttrOr("href", ""))
		assert.Equal(t, "Reading React", doc.Find("title").Text())
	})

	t.Run("storage error", func(t *testing.T) {
		handler := setupMockServerHandler()
		handler.MockStorage.ReturnError = errors.New("database error")

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()

		handler.IndexHandle(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
