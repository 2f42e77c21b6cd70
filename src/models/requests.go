package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlaceLimitOrderRequest carries the caller-supplied fields of a new limit
// order. The order type is derived from Side and StopPrice, never supplied
// by the caller. StopPrice is accepted on buy orders only.
type PlaceLimitOrderRequest struct {
	WikifolioSymbol string
	UnderlyingIsin  string
	Amount          decimal.Decimal
	LimitPrice      decimal.Decimal
	ValidUntil      time.Time
	Side            string
	StopPrice       *decimal.Decimal
}

// UpdateLimitOrderRequest carries the mutable subset of an open limit
// order.
type UpdateLimitOrderRequest struct {
	LimitPrice decimal.Decimal
	Amount     decimal.Decimal
	ValidUntil time.Time
	StopPrice  *decimal.Decimal
}

// PlaceQuoteOrderRequest carries the caller-supplied fields of a two-phase
// quote order.
type PlaceQuoteOrderRequest struct {
	WikifolioSymbol string
	UnderlyingIsin  string
	Amount          decimal.Decimal
	Side            string
}
