// Package client provides the single entry point for the wikifolio trading
// service: one authenticated session, portfolio and instrument retrieval,
// and the order lifecycle.
package client

import (
	"fmt"
	"strings"

	"wikifolio-trading/src/apierrors"
	"wikifolio-trading/src/models"
	"wikifolio-trading/src/services"
)

// DefaultBaseURL is the production trading API host.
const DefaultBaseURL = "https://trading-api.wikifolio.com/v1"

// WikifolioTradingAPI composes the session, pagination and order operations
// behind one object. The session token is established at construction and
// never mutated afterwards; every call reads it as-is, so concurrent use
// needs no client-side locking.
type WikifolioTradingAPI struct {
	baseURL string
	session *models.Session
}

// NewWikifolioTradingAPI authenticates against the production API with the
// two long-lived credential strings. Authentication is synchronous;
// construction fails if the credential exchange is rejected.
func NewWikifolioTradingAPI(clientAPIKey, userAPIKey string) (*WikifolioTradingAPI, error) {
	return NewWikifolioTradingAPIWithBaseURL(DefaultBaseURL, clientAPIKey, userAPIKey)
}

// NewWikifolioTradingAPIWithBaseURL authenticates against an alternate
// host, e.g. a test double.
func NewWikifolioTradingAPIWithBaseURL(baseURL, clientAPIKey, userAPIKey string) (*WikifolioTradingAPI, error) {
	baseURL = strings.TrimSuffix(baseURL, "/")

	session, err := services.EstablishSession(baseURL, clientAPIKey, userAPIKey)
	if err != nil {
		return nil, fmt.Errorf("NewWikifolioTradingAPI: %w", err)
	}

	return &WikifolioTradingAPI{
		baseURL: baseURL,
		session: session,
	}, nil
}

// token returns the current session token. Calls after logout fail locally:
// no request is ever issued with a token known to be stale.
func (api *WikifolioTradingAPI) token() (string, error) {
	if api.session == nil {
		return "", apierrors.New(apierrors.ErrSession, "session already terminated")
	}

	return api.session.Token, nil
}

// ListWikifolios lists the wikifolios tradable with this session.
func (api *WikifolioTradingAPI) ListWikifolios() ([]models.WikifolioListItem, error) {
	token, err := api.token()
	if err != nil {
		return nil, err
	}

	return services.ListWikifolios(api.baseURL, token)
}

// GetWikifolio returns the portfolio snapshot of one wikifolio.
func (api *WikifolioTradingAPI) GetWikifolio(symbol string) (*models.Wikifolio, error) {
	token, err := api.token()
	if err != nil {
		return nil, err
	}

	return services.FetchWikifolio(api.baseURL, token, symbol)
}

// ListUnderlyings lists the tradable instruments of a wikifolio.
func (api *WikifolioTradingAPI) ListUnderlyings(symbol string) ([]models.Underlying, error) {
	token, err := api.token()
	if err != nil {
		return nil, err
	}

	return services.ListUnderlyings(api.baseURL, token, symbol)
}

// ListOrders lists the orders of a wikifolio. An empty status returns the
// unfiltered listing; an unrecognized status is dropped, not rejected.
func (api *WikifolioTradingAPI) ListOrders(symbol, status string) ([]models.OrderStatus, error) {
	token, err := api.token()
	if err != nil {
		return nil, err
	}

	return services.ListOrders(api.baseURL, token, symbol, status)
}

// PlaceLimitOrder submits a new limit order and returns the venue-assigned
// order id.
func (api *WikifolioTradingAPI) PlaceLimitOrder(req models.PlaceLimitOrderRequest) (string, error) {
	token, err := api.token()
	if err != nil {
		return "", err
	}

	return services.PlaceLimitOrder(api.baseURL, token, req)
}

// UpdateLimitOrder replaces the mutable fields of a still-open order.
func (api *WikifolioTradingAPI) UpdateLimitOrder(orderID string, req models.UpdateLimitOrderRequest) error {
	token, err := api.token()
	if err != nil {
		return err
	}

	return services.UpdateLimitOrder(api.baseURL, token, orderID, req)
}

// DeleteLimitOrder requests cancellation of an order.
func (api *WikifolioTradingAPI) DeleteLimitOrder(orderID string) error {
	token, err := api.token()
	if err != nil {
		return err
	}

	return services.DeleteLimitOrder(api.baseURL, token, orderID)
}

// GetLimitOrder reads the current status of an order.
func (api *WikifolioTradingAPI) GetLimitOrder(orderID string) (*models.OrderStatus, error) {
	token, err := api.token()
	if err != nil {
		return nil, err
	}

	return services.FetchLimitOrder(api.baseURL, token, orderID)
}

// PlaceQuoteOrder executes the two-phase quote flow and returns the
// venue-assigned order id.
func (api *WikifolioTradingAPI) PlaceQuoteOrder(req models.PlaceQuoteOrderRequest) (string, error) {
	token, err := api.token()
	if err != nil {
		return "", err
	}

	return services.PlaceQuoteOrder(api.baseURL, token, req)
}

// Logout invalidates the session token server-side. Logging out is not
// idempotent: call it at most once. A second call fails locally without
// issuing a request.
func (api *WikifolioTradingAPI) Logout() error {
	if api.session == nil {
		return apierrors.New(apierrors.ErrSession, "Logout: session already terminated")
	}

	if err := services.TerminateSession(api.baseURL, api.session); err != nil {
		return fmt.Errorf("Logout: %w", err)
	}

	api.session = nil

	return nil
}
