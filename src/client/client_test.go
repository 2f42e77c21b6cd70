package client

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wikifolio-trading/src/apierrors"
)

// newVenueServer stands in for the trading API: it hands out one session
// token, accepts exactly one logout, and serves a minimal order listing.
func newVenueServer(t *testing.T, requests *[]string) *httptest.Server {
	t.Helper()

	sessionActive := false

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*requests = append(*requests, r.Method+" "+r.URL.Path)

		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/sessions":
			sessionActive = true
			_, err := w.Write([]byte(`{"sessionToken": "session-abc"}`))
			require.NoError(t, err)
		case r.Method == http.MethodDelete && r.URL.Path == "/sessions":
			if !sessionActive {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			sessionActive = false
		default:
			assert.Equal(t, "session-abc", r.Header.Get("sessionToken"))
			_, err := w.Write([]byte(`{"pageNumber": 1, "totalPages": 1, "results": []}`))
			require.NoError(t, err)
		}
	}))
}

func TestNewWikifolioTradingAPIWithBaseURL(t *testing.T) {
	t.Run("authenticates at construction", func(t *testing.T) {
		var requests []string
		server := newVenueServer(t, &requests)
		defer server.Close()

		api, err := NewWikifolioTradingAPIWithBaseURL(server.URL, "client-key", "user-key")
		require.NoError(t, err)
		require.NotNil(t, api)
		assert.Equal(t, []string{"POST /sessions"}, requests)
	})

	t.Run("rejected credentials fail construction", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		api, err := NewWikifolioTradingAPIWithBaseURL(server.URL, "client-key", "bad-key")
		assert.Nil(t, api)
		assert.True(t, errors.Is(err, apierrors.ErrAuthentication))
	})

	t.Run("trailing slash on the base url is tolerated", func(t *testing.T) {
		var requests []string
		server := newVenueServer(t, &requests)
		defer server.Close()

		api, err := NewWikifolioTradingAPIWithBaseURL(server.URL+"/", "client-key", "user-key")
		require.NoError(t, err)

		_, err = api.ListWikifolios()
		require.NoError(t, err)
		assert.Equal(t, []string{"POST /sessions", "GET /wikifolios"}, requests)
	})
}

func TestLogout(t *testing.T) {
	t.Run("second logout fails locally without a request", func(t *testing.T) {
		var requests []string
		server := newVenueServer(t, &requests)
		defer server.Close()

		api, err := NewWikifolioTradingAPIWithBaseURL(server.URL, "client-key", "user-key")
		require.NoError(t, err)

		require.NoError(t, api.Logout())
		assert.Equal(t, []string{"POST /sessions", "DELETE /sessions"}, requests)

		err = api.Logout()
		assert.True(t, errors.Is(err, apierrors.ErrSession))
		assert.Len(t, requests, 2)
	})

	t.Run("calls after logout fail locally", func(t *testing.T) {
		var requests []string
		server := newVenueServer(t, &requests)
		defer server.Close()

		api, err := NewWikifolioTradingAPIWithBaseURL(server.URL, "client-key", "user-key")
		require.NoError(t, err)
		require.NoError(t, api.Logout())

		issued := len(requests)

		_, err = api.ListOrders("WF0SYMBOL1", "")
		assert.True(t, errors.Is(err, apierrors.ErrSession))

		_, err = api.GetWikifolio("WF0SYMBOL1")
		assert.True(t, errors.Is(err, apierrors.ErrSession))

		err = api.DeleteLimitOrder("order-1")
		assert.True(t, errors.Is(err, apierrors.ErrSession))

		assert.Len(t, requests, issued)
	})

	t.Run("rejected logout keeps the session usable", func(t *testing.T) {
		logoutRejected := true
		var requests []string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests = append(requests, r.Method+" "+r.URL.Path)

			switch {
			case r.Method == http.MethodPost && r.URL.Path == "/sessions":
				_, err := w.Write([]byte(`{"sessionToken": "session-abc"}`))
				require.NoError(t, err)
			case r.Method == http.MethodDelete && r.URL.Path == "/sessions":
				if logoutRejected {
					w.WriteHeader(http.StatusBadGateway)
					return
				}
			default:
				_, err := w.Write([]byte(`{"pageNumber": 1, "totalPages": 1, "results": []}`))
				require.NoError(t, err)
			}
		}))
		defer server.Close()

		api, err := NewWikifolioTradingAPIWithBaseURL(server.URL, "client-key", "user-key")
		require.NoError(t, err)

		err = api.Logout()
		assert.True(t, errors.Is(err, apierrors.ErrSession))

		_, err = api.ListWikifolios()
		assert.NoError(t, err)

		logoutRejected = false
		assert.NoError(t, api.Logout())
	})
}

func TestTokenThreading(t *testing.T) {
	var requests []string
	server := newVenueServer(t, &requests)
	defer server.Close()

	api, err := NewWikifolioTradingAPIWithBaseURL(server.URL, "client-key", "user-key")
	require.NoError(t, err)

	_, err = api.ListUnderlyings("WF0SYMBOL1")
	require.NoError(t, err)

	orders, err := api.ListOrders("WF0SYMBOL1", "Executed")
	require.NoError(t, err)
	assert.Empty(t, orders)

	assert.Equal(t, []string{
		"POST /sessions",
		"GET /wikifolios/WF0SYMBOL1/underlyings",
		"GET /wikifolios/WF0SYMBOL1/orders",
	}, requests)
}
