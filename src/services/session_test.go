package services

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wikifolio-trading/src/apierrors"
	"wikifolio-trading/src/models"
)

func TestEstablishSession(t *testing.T) {
	t.Run("exchanges credentials for a session token", func(t *testing.T) {
		requests := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++

			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/sessions", r.URL.Path)
			assert.Equal(t, "client-key", r.Header.Get("clientApiKey"))
			assert.Equal(t, "user-key", r.Header.Get("userApiKey"))
			assert.Empty(t, r.Header.Get("sessionToken"))

			_, err := w.Write([]byte(`{"sessionToken": "session-abc"}`))
			require.NoError(t, err)
		}))
		defer server.Close()

		session, err := EstablishSession(server.URL, "client-key", "user-key")
		require.NoError(t, err)
		assert.Equal(t, "session-abc", session.Token)
		assert.False(t, session.EstablishedAt.IsZero())
		assert.Equal(t, 1, requests)
	})

	t.Run("rejected credentials map to authentication error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		session, err := EstablishSession(server.URL, "client-key", "bad-key")
		assert.Nil(t, session)
		assert.True(t, errors.Is(err, apierrors.ErrAuthentication))
	})

	t.Run("unreachable venue maps to transport error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		_, err := EstablishSession(server.URL, "client-key", "user-key")
		assert.True(t, errors.Is(err, apierrors.ErrTransport))
	})
}

func TestTerminateSession(t *testing.T) {
	t.Run("deletes the session with the token header", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/sessions", r.URL.Path)
			assert.Equal(t, "session-abc", r.Header.Get("sessionToken"))
		}))
		defer server.Close()

		err := TerminateSession(server.URL, &models.Session{Token: "session-abc"})
		assert.NoError(t, err)
	})

	t.Run("already terminated session maps to session error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		err := TerminateSession(server.URL, &models.Session{Token: "stale"})
		assert.True(t, errors.Is(err, apierrors.ErrSession))
	})
}
