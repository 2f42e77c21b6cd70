// Package apierrors provides typed errors for the wikifolio trading client.
package apierrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the client's failure classes. Callers match them with
// errors.Is; no component downgrades one into a default value.
var (
	// ErrValidation indicates malformed caller input, caught before any
	// network call is issued.
	ErrValidation = errors.New("validation error")

	// ErrAuthentication indicates the credential exchange was rejected.
	ErrAuthentication = errors.New("authentication error")

	// ErrSession indicates session misuse, such as terminating a session
	// that has already been terminated.
	ErrSession = errors.New("session error")

	// ErrTransport indicates a network failure, an unreadable response, or
	// a non-success status on a list/read path.
	ErrTransport = errors.New("transport error")

	// ErrOrder indicates a non-success status on an order mutation
	// endpoint.
	ErrOrder = errors.New("order error")

	// ErrQuote indicates a non-success status on the quote request.
	ErrQuote = errors.New("quote error")
)

// APIError is a structured client error.
type APIError struct {
	// Kind is one of the sentinel errors above.
	Kind error
	// Message is the operation-level error message.
	Message string
	// StatusCode is the HTTP status of the failed response, if any.
	StatusCode int
	// Body is the raw response body text of the failed response, if any.
	Body string
	// Cause is the underlying error.
	Cause error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	msg := e.Message
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s: http code %d: %s", e.Message, e.StatusCode, e.Body)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the error kind, so errors.Is matches the sentinels.
func (e *APIError) Unwrap() error {
	return e.Kind
}

// New creates an APIError of the given kind.
func New(kind error, message string) *APIError {
	return &APIError{Kind: kind, Message: message}
}

// NewStatus creates an APIError carrying the HTTP status and the raw body
// text of a failed response.
func NewStatus(kind error, message string, statusCode int, body string) *APIError {
	return &APIError{Kind: kind, Message: message, StatusCode: statusCode, Body: body}
}

// Wrap creates an APIError of the given kind around an underlying error.
func Wrap(kind error, message string, cause error) *APIError {
	return &APIError{Kind: kind, Message: message, Cause: cause}
}
