package services

import (
	"encoding/json"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"wikifolio-trading/src/apierrors"
	"wikifolio-trading/src/models"
)

type sessionResponse struct {
	SessionToken string `json:"sessionToken"`
}

// EstablishSession exchanges the two long-lived credential strings for a
// session token. There is no retry; a rejected exchange or a transport
// failure surfaces immediately.
func EstablishSession(baseURL, clientAPIKey, userAPIKey string) (*models.Session, error) {
	log.Info("establishing session")

	statusCode, body, err := doRequest(http.MethodPost, baseURL+"/sessions", map[string]string{
		headerClientAPIKey: clientAPIKey,
		headerUserAPIKey:   userAPIKey,
	}, nil)
	if err != nil {
		return nil, apierrors.Wrap(apierrors.ErrTransport, "EstablishSession: credential exchange failed", err)
	}

	if !isSuccess(statusCode) {
		return nil, apierrors.NewStatus(apierrors.ErrAuthentication, "EstablishSession: credentials rejected", statusCode, string(body))
	}

	var resp sessionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, apierrors.Wrap(apierrors.ErrTransport, "EstablishSession: failed to parse session response", err)
	}

	log.Debugf("session token: %s", resp.SessionToken)

	return &models.Session{
		Token:         resp.SessionToken,
		EstablishedAt: time.Now(),
	}, nil
}

// TerminateSession invalidates the session token server-side. It is not
// idempotent: terminating an already terminated session fails.
func TerminateSession(baseURL string, session *models.Session) error {
	log.Info("terminating session")

	statusCode, body, err := doRequest(http.MethodDelete, baseURL+"/sessions", tokenHeaders(session.Token), nil)
	if err != nil {
		return apierrors.Wrap(apierrors.ErrTransport, "TerminateSession: request failed", err)
	}

	if !isSuccess(statusCode) {
		return apierrors.NewStatus(apierrors.ErrSession, "TerminateSession: logout rejected", statusCode, string(body))
	}

	return nil
}
