package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wikifolio-trading/src/apierrors"
	"wikifolio-trading/src/models"
)

type listItem struct {
	Name string `json:"name"`
}

// newPagedServer serves canned pages keyed by the pageNumber query
// parameter and counts every request it sees. failOnPage, if non-zero,
// answers that page with a 500.
func newPagedServer(t *testing.T, pages []models.PaginatedResponse[listItem], failOnPage int, requests *int) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*requests++

		assert.Equal(t, "test-token", r.Header.Get("sessionToken"))

		page := 0
		_, err := fmt.Sscanf(r.URL.Query().Get("pageNumber"), "%d", &page)
		require.NoError(t, err)

		if failOnPage != 0 && page == failOnPage {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		require.LessOrEqual(t, page, len(pages))
		require.NoError(t, json.NewEncoder(w).Encode(pages[page-1]))
	}))
}

func TestFetchAllPages(t *testing.T) {
	t.Run("three pages yield three requests and concatenated results", func(t *testing.T) {
		pages := []models.PaginatedResponse[listItem]{
			{PageNumber: 1, TotalPages: 3, Results: []listItem{{Name: "a"}, {Name: "b"}}},
			{PageNumber: 2, TotalPages: 3, Results: []listItem{{Name: "c"}}},
			{PageNumber: 3, TotalPages: 3, Results: []listItem{{Name: "d"}, {Name: "e"}}},
		}

		requests := 0
		server := newPagedServer(t, pages, 0, &requests)
		defer server.Close()

		results, err := FetchAllPages[listItem](server.URL, "/wikifolios", "test-token", nil)
		assert.NoError(t, err)
		assert.Equal(t, 3, requests)
		assert.Equal(t, []listItem{{Name: "a"}, {Name: "b"}, {Name: "c"}, {Name: "d"}, {Name: "e"}}, results)
	})

	t.Run("single page terminates after one request", func(t *testing.T) {
		pages := []models.PaginatedResponse[listItem]{
			{PageNumber: 1, TotalPages: 1, Results: []listItem{{Name: "a"}}},
		}

		requests := 0
		server := newPagedServer(t, pages, 0, &requests)
		defer server.Close()

		results, err := FetchAllPages[listItem](server.URL, "/wikifolios", "test-token", nil)
		assert.NoError(t, err)
		assert.Equal(t, 1, requests)
		assert.Len(t, results, 1)
	})

	t.Run("totalPages zero yields an empty sequence with one request", func(t *testing.T) {
		pages := []models.PaginatedResponse[listItem]{
			{PageNumber: 1, TotalPages: 0, Results: []listItem{}},
		}

		requests := 0
		server := newPagedServer(t, pages, 0, &requests)
		defer server.Close()

		results, err := FetchAllPages[listItem](server.URL, "/wikifolios", "test-token", nil)
		assert.NoError(t, err)
		assert.Equal(t, 1, requests)
		assert.Empty(t, results)
	})

	t.Run("empty first page yields an empty sequence with one request", func(t *testing.T) {
		pages := []models.PaginatedResponse[listItem]{
			{PageNumber: 1, TotalPages: 4, Results: []listItem{}},
		}

		requests := 0
		server := newPagedServer(t, pages, 0, &requests)
		defer server.Close()

		results, err := FetchAllPages[listItem](server.URL, "/wikifolios", "test-token", nil)
		assert.NoError(t, err)
		assert.Equal(t, 1, requests)
		assert.Empty(t, results)
	})

	t.Run("failure on a later page discards accumulated results", func(t *testing.T) {
		pages := []models.PaginatedResponse[listItem]{
			{PageNumber: 1, TotalPages: 3, Results: []listItem{{Name: "a"}}},
			{PageNumber: 2, TotalPages: 3, Results: []listItem{{Name: "b"}}},
			{PageNumber: 3, TotalPages: 3, Results: []listItem{{Name: "c"}}},
		}

		requests := 0
		server := newPagedServer(t, pages, 2, &requests)
		defer server.Close()

		results, err := FetchAllPages[listItem](server.URL, "/wikifolios", "test-token", nil)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, apierrors.ErrTransport))
		assert.Nil(t, results)
		assert.Equal(t, 2, requests)
	})

	t.Run("duplicates across pages propagate", func(t *testing.T) {
		pages := []models.PaginatedResponse[listItem]{
			{PageNumber: 1, TotalPages: 2, Results: []listItem{{Name: "a"}}},
			{PageNumber: 2, TotalPages: 2, Results: []listItem{{Name: "a"}}},
		}

		requests := 0
		server := newPagedServer(t, pages, 0, &requests)
		defer server.Close()

		results, err := FetchAllPages[listItem](server.URL, "/wikifolios", "test-token", nil)
		assert.NoError(t, err)
		assert.Equal(t, []listItem{{Name: "a"}, {Name: "a"}}, results)
	})
}
