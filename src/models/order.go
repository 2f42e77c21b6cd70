package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// The venue reads and writes money fields as plain JSON numbers.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// OrderStatusDTO mirrors the venue's order-status response body.
type OrderStatusDTO struct {
	OrderID         string           `json:"orderId"`
	OrderStatus     string           `json:"orderStatus"`
	OrderType       string           `json:"orderType"`
	Amount          decimal.Decimal  `json:"amount"`
	CreationDate    string           `json:"creationDate"`
	WikifolioSymbol *string          `json:"wikifolioSymbol"`
	ExecutionPrice  *decimal.Decimal `json:"executionPrice"`
	StatusDate      *string          `json:"statusDate"`
	Reason          *int             `json:"reason"`
	Stop            *decimal.Decimal `json:"stop"`
	Limit           *decimal.Decimal `json:"limit"`
}

// OrderStatus is the current server-reported state of one order. The venue
// owns the authoritative state machine; the client only reads it.
type OrderStatus struct {
	OrderID         string
	OrderStatus     string
	OrderType       OrderType
	Amount          decimal.Decimal
	CreationDate    time.Time
	WikifolioSymbol *string
	ExecutionPrice  *decimal.Decimal
	StatusDate      *time.Time
	ReasonCode      *int
	StopPrice       *decimal.Decimal
	LimitPrice      *decimal.Decimal
}

func (dto *OrderStatusDTO) ToOrderStatus() (*OrderStatus, error) {
	creationDate, err := ParseVenueDate(dto.CreationDate)
	if err != nil {
		return nil, fmt.Errorf("OrderStatusDTO:ToOrderStatus(): failed to parse creation date: %w", err)
	}

	var statusDate *time.Time
	if dto.StatusDate != nil && *dto.StatusDate != "" {
		parsed, err := ParseVenueDate(*dto.StatusDate)
		if err != nil {
			return nil, fmt.Errorf("OrderStatusDTO:ToOrderStatus(): failed to parse status date: %w", err)
		}
		statusDate = &parsed
	}

	return &OrderStatus{
		OrderID:         dto.OrderID,
		OrderStatus:     dto.OrderStatus,
		OrderType:       OrderType(dto.OrderType),
		Amount:          dto.Amount,
		CreationDate:    creationDate,
		WikifolioSymbol: dto.WikifolioSymbol,
		ExecutionPrice:  dto.ExecutionPrice,
		StatusDate:      statusDate,
		ReasonCode:      dto.Reason,
		StopPrice:       dto.Stop,
		LimitPrice:      dto.Limit,
	}, nil
}
