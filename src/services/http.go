// Package services implements the wikifolio trading API operations: the
// session exchange, the paginated listing protocol, portfolio retrieval and
// the order lifecycle. Every function takes the base URL and the current
// session token by value; nothing here caches the token across calls.
package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const requestTimeout = 10 * time.Second

// Header names used by the venue. The credential pair is only ever sent on
// the session exchange; every other call carries the session token.
const (
	headerSessionToken = "sessionToken"
	headerClientAPIKey = "clientApiKey"
	headerUserAPIKey   = "userApiKey"
)

// doRequest issues one round trip and returns the status code and raw body.
// It fails only on request construction, network, and body-read problems;
// classifying non-success statuses is left to the calling operation. No
// request is ever retried.
func doRequest(method, requestURL string, headers map[string]string, body interface{}) (int, []byte, error) {
	client := http.Client{
		Timeout: requestTimeout,
	}

	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("doRequest: failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, requestURL, bodyReader)
	if err != nil {
		return 0, nil, fmt.Errorf("doRequest: failed to create request: %w", err)
	}

	req.Header.Add("Accept", "application/json")
	if body != nil {
		req.Header.Add("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Add(k, v)
	}

	log.WithFields(log.Fields{
		"requestId": uuid.NewString(),
		"method":    method,
	}).Tracef("fetching from %v", req.URL.String())

	res, err := client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("doRequest: request failed: %w", err)
	}

	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("doRequest: failed to read response body: %w", err)
	}

	return res.StatusCode, resBody, nil
}

func isSuccess(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}

// tokenHeaders builds the session-token header attached to every
// authenticated call.
func tokenHeaders(token string) map[string]string {
	return map[string]string{headerSessionToken: token}
}
