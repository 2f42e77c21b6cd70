package models

import (
	"fmt"
	"strings"
)

// Side is the caller-facing order direction.
type Side string

const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

// ParseSide normalizes a side value case-insensitively. Anything other than
// buy or sell is rejected.
func ParseSide(value string) (Side, error) {
	switch strings.ToLower(value) {
	case string(SideBuy):
		return SideBuy, nil
	case string(SideSell):
		return SideSell, nil
	default:
		return "", fmt.Errorf("ParseSide: unknown side %q: must be buy or sell", value)
	}
}

// OrderType is the venue's order-type vocabulary. Limit orders derive their
// type from the side and stop-price presence; quote orders use the bare
// Buy/Sell vocabulary.
type OrderType string

const (
	OrderTypeBuyLimit     OrderType = "BuyLimit"
	OrderTypeBuyStopLimit OrderType = "BuyStopLimit"
	OrderTypeSellLimit    OrderType = "SellLimit"
	OrderTypeBuy          OrderType = "Buy"
	OrderTypeSell         OrderType = "Sell"
)

type limitOrderKey struct {
	side    Side
	hasStop bool
}

// limitOrderTypes maps (side, stop present) to the venue order type. Stop
// limits exist on the buy side only; sell+stop is rejected during
// validation and never reaches this table.
var limitOrderTypes = map[limitOrderKey]OrderType{
	{SideBuy, true}:   OrderTypeBuyStopLimit,
	{SideBuy, false}:  OrderTypeBuyLimit,
	{SideSell, false}: OrderTypeSellLimit,
}

// LimitOrderTypeFor selects the limit order type for a side and stop-price
// presence.
func LimitOrderTypeFor(side Side, hasStop bool) (OrderType, bool) {
	orderType, ok := limitOrderTypes[limitOrderKey{side: side, hasStop: hasStop}]
	return orderType, ok
}

// QuoteOrderTypeFor selects the quote order type for a side.
func QuoteOrderTypeFor(side Side) OrderType {
	if side == SideSell {
		return OrderTypeSell
	}
	return OrderTypeBuy
}
