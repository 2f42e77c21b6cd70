package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gorilla/schema"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"wikifolio-trading/src/apierrors"
	"wikifolio-trading/src/models"
)

type placeLimitOrderBody struct {
	Symbol         string           `json:"symbol"`
	UnderlyingIsin string           `json:"underlyingIsin"`
	Amount         decimal.Decimal  `json:"amount"`
	LimitPrice     decimal.Decimal  `json:"limitPrice"`
	ValidUntilDate string           `json:"validUntilDate"`
	OrderType      models.OrderType `json:"orderType"`
	StopPrice      *decimal.Decimal `json:"stopPrice,omitempty"`
}

type updateLimitOrderBody struct {
	LimitPrice     decimal.Decimal  `json:"limitPrice"`
	Amount         decimal.Decimal  `json:"amount"`
	ValidUntilDate string           `json:"validUntilDate"`
	StopPrice      *decimal.Decimal `json:"stopPrice,omitempty"`
}

type quoteRequestBody struct {
	Symbol         string           `json:"symbol"`
	UnderlyingIsin string           `json:"underlyingIsin"`
	Amount         decimal.Decimal  `json:"amount"`
	OrderType      models.OrderType `json:"orderType"`
}

type quoteOrderBody struct {
	QuoteID string `json:"quoteId"`
}

type orderIDResponse struct {
	OrderID string `json:"orderId"`
}

type quoteResponse struct {
	QuoteID string `json:"quoteId"`
}

type orderListParams struct {
	Status string `schema:"status,omitempty"`
}

// validateLimitOrderSide normalizes the side and rejects the sell+stop
// combination before any network call. Stop limits are buy-side only on
// this venue.
func validateLimitOrderSide(side string, stopPrice *decimal.Decimal) (models.Side, error) {
	parsed, err := models.ParseSide(side)
	if err != nil {
		return "", apierrors.New(apierrors.ErrValidation, fmt.Sprintf("invalid order side %q: must be buy or sell", side))
	}

	if stopPrice != nil && parsed == models.SideSell {
		return "", apierrors.New(apierrors.ErrValidation, "stop price is not supported for sell orders")
	}

	return parsed, nil
}

// PlaceLimitOrder submits a new limit order and returns the venue-assigned
// order id. The valid-until date is serialized as a calendar date; the
// venue enforces its own maximum horizon and rejects out-of-range dates.
func PlaceLimitOrder(baseURL, token string, req models.PlaceLimitOrderRequest) (string, error) {
	side, err := validateLimitOrderSide(req.Side, req.StopPrice)
	if err != nil {
		return "", fmt.Errorf("PlaceLimitOrder: %w", err)
	}

	orderType, ok := models.LimitOrderTypeFor(side, req.StopPrice != nil)
	if !ok {
		return "", apierrors.New(apierrors.ErrValidation, fmt.Sprintf("PlaceLimitOrder: no order type for side %q", side))
	}

	body := placeLimitOrderBody{
		Symbol:         req.WikifolioSymbol,
		UnderlyingIsin: req.UnderlyingIsin,
		Amount:         req.Amount,
		LimitPrice:     req.LimitPrice,
		ValidUntilDate: models.FormatVenueDate(req.ValidUntil),
		OrderType:      orderType,
		StopPrice:      req.StopPrice,
	}

	log.Infof("placing %s order for %s", orderType, req.UnderlyingIsin)

	statusCode, resBody, err := doRequest(http.MethodPost, baseURL+"/limitorders", tokenHeaders(token), body)
	if err != nil {
		return "", apierrors.Wrap(apierrors.ErrTransport, "PlaceLimitOrder: request failed", err)
	}

	if !isSuccess(statusCode) {
		return "", apierrors.NewStatus(apierrors.ErrOrder, "PlaceLimitOrder: order rejected", statusCode, string(resBody))
	}

	var resp orderIDResponse
	if err := json.Unmarshal(resBody, &resp); err != nil {
		return "", apierrors.Wrap(apierrors.ErrTransport, "PlaceLimitOrder: failed to parse order response", err)
	}

	log.Infof("placed order %s", resp.OrderID)

	return resp.OrderID, nil
}

// UpdateLimitOrder replaces the mutable fields of an existing, still-open
// order. The venue reports whether the order is still updatable; there is
// no local state pre-check.
func UpdateLimitOrder(baseURL, token, orderID string, req models.UpdateLimitOrderRequest) error {
	body := updateLimitOrderBody{
		LimitPrice:     req.LimitPrice,
		Amount:         req.Amount,
		ValidUntilDate: models.FormatVenueDate(req.ValidUntil),
		StopPrice:      req.StopPrice,
	}

	log.Infof("updating order %s", orderID)

	statusCode, resBody, err := doRequest(http.MethodPut, fmt.Sprintf("%s/limitorders/%s", baseURL, orderID), tokenHeaders(token), body)
	if err != nil {
		return apierrors.Wrap(apierrors.ErrTransport, fmt.Sprintf("UpdateLimitOrder: failed to update order %s", orderID), err)
	}

	if !isSuccess(statusCode) {
		return apierrors.NewStatus(apierrors.ErrOrder, fmt.Sprintf("UpdateLimitOrder: order %s not updatable", orderID), statusCode, string(resBody))
	}

	return nil
}

// DeleteLimitOrder requests cancellation of an order. The venue rejects the
// cancellation if the order is already in a terminal state.
func DeleteLimitOrder(baseURL, token, orderID string) error {
	log.Infof("deleting order %s", orderID)

	statusCode, resBody, err := doRequest(http.MethodDelete, fmt.Sprintf("%s/limitorders/%s", baseURL, orderID), tokenHeaders(token), nil)
	if err != nil {
		return apierrors.Wrap(apierrors.ErrTransport, fmt.Sprintf("DeleteLimitOrder: failed to delete order %s", orderID), err)
	}

	if !isSuccess(statusCode) {
		return apierrors.NewStatus(apierrors.ErrOrder, fmt.Sprintf("DeleteLimitOrder: failed to delete order %s", orderID), statusCode, string(resBody))
	}

	return nil
}

// FetchLimitOrder reads the current status of an order. Always safe; no
// state precondition.
func FetchLimitOrder(baseURL, token, orderID string) (*models.OrderStatus, error) {
	log.Infof("fetching order %s", orderID)

	statusCode, body, err := doRequest(http.MethodGet, fmt.Sprintf("%s/limitorders/%s", baseURL, orderID), tokenHeaders(token), nil)
	if err != nil {
		return nil, apierrors.Wrap(apierrors.ErrTransport, fmt.Sprintf("FetchLimitOrder: failed to fetch order %s", orderID), err)
	}

	if !isSuccess(statusCode) {
		return nil, apierrors.NewStatus(apierrors.ErrTransport, fmt.Sprintf("FetchLimitOrder: failed to fetch order %s", orderID), statusCode, string(body))
	}

	var dto models.OrderStatusDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return nil, apierrors.Wrap(apierrors.ErrTransport, fmt.Sprintf("FetchLimitOrder: failed to parse order %s", orderID), err)
	}

	order, err := dto.ToOrderStatus()
	if err != nil {
		return nil, fmt.Errorf("FetchLimitOrder: %w", err)
	}

	return order, nil
}

// PlaceQuoteOrder executes the two-phase quote flow: request a binding
// quote, then commit it for a firm order. A phase-1 failure aborts before
// any commit; a phase-2 failure (e.g. the quote expired first) abandons the
// quote with no retry and no re-quoting.
func PlaceQuoteOrder(baseURL, token string, req models.PlaceQuoteOrderRequest) (string, error) {
	side, err := models.ParseSide(req.Side)
	if err != nil {
		return "", apierrors.New(apierrors.ErrValidation, fmt.Sprintf("PlaceQuoteOrder: invalid order side %q: must be buy or sell", req.Side))
	}

	orderType := models.QuoteOrderTypeFor(side)

	quoteBody := quoteRequestBody{
		Symbol:         req.WikifolioSymbol,
		UnderlyingIsin: req.UnderlyingIsin,
		Amount:         req.Amount,
		OrderType:      orderType,
	}

	log.Infof("requesting %s quote for %s", orderType, req.UnderlyingIsin)

	statusCode, resBody, err := doRequest(http.MethodPost, baseURL+"/quotes", tokenHeaders(token), quoteBody)
	if err != nil {
		return "", apierrors.Wrap(apierrors.ErrTransport, "PlaceQuoteOrder: quote request failed", err)
	}

	if !isSuccess(statusCode) {
		return "", apierrors.NewStatus(apierrors.ErrQuote, "PlaceQuoteOrder: quote rejected", statusCode, string(resBody))
	}

	var quote quoteResponse
	if err := json.Unmarshal(resBody, &quote); err != nil {
		return "", apierrors.Wrap(apierrors.ErrTransport, "PlaceQuoteOrder: failed to parse quote response", err)
	}

	log.Debugf("received quote %s", quote.QuoteID)

	statusCode, resBody, err = doRequest(http.MethodPost, baseURL+"/quoteorders", tokenHeaders(token), quoteOrderBody{QuoteID: quote.QuoteID})
	if err != nil {
		return "", apierrors.Wrap(apierrors.ErrTransport, "PlaceQuoteOrder: commit request failed", err)
	}

	if !isSuccess(statusCode) {
		return "", apierrors.NewStatus(apierrors.ErrOrder, fmt.Sprintf("PlaceQuoteOrder: failed to commit quote %s", quote.QuoteID), statusCode, string(resBody))
	}

	var resp orderIDResponse
	if err := json.Unmarshal(resBody, &resp); err != nil {
		return "", apierrors.Wrap(apierrors.ErrTransport, "PlaceQuoteOrder: failed to parse order response", err)
	}

	log.Infof("placed quote order %s", resp.OrderID)

	return resp.OrderID, nil
}

// ListOrders returns the orders of a wikifolio across all pages. A status
// value outside the venue's vocabulary is dropped and the unfiltered
// listing is returned instead; an unknown filter is deliberately not an
// error.
func ListOrders(baseURL, token, symbol, status string) ([]models.OrderStatus, error) {
	params := orderListParams{}
	if status != "" {
		if models.IsValidOrderStatusFilter(status) {
			params.Status = status
		} else {
			log.Errorf("ListOrders: invalid order status: %s, ignoring filter", status)
		}
	}

	values := url.Values{}
	if err := schema.NewEncoder().Encode(params, values); err != nil {
		return nil, fmt.Errorf("ListOrders: failed to encode query parameters: %w", err)
	}

	dtos, err := FetchAllPages[models.OrderStatusDTO](baseURL, fmt.Sprintf("/wikifolios/%s/orders", symbol), token, values)
	if err != nil {
		return nil, fmt.Errorf("ListOrders: %w", err)
	}

	orders := make([]models.OrderStatus, 0, len(dtos))
	for _, dto := range dtos {
		order, err := dto.ToOrderStatus()
		if err != nil {
			return nil, fmt.Errorf("ListOrders: %w", err)
		}

		orders = append(orders, *order)
	}

	return orders, nil
}
