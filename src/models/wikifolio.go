package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// WikifolioListItem identifies a wikifolio tradable with the current
// session.
type WikifolioListItem struct {
	WikifolioSymbol *string `json:"wikifolioSymbol"`
	ResourceLink    *string `json:"resourceLink"`
}

// Position is a single instrument position inside a wikifolio.
type Position struct {
	Quantity             decimal.Decimal  `json:"quantity"`
	Underlying           *string          `json:"underlying"`
	AveragePurchasePrice *decimal.Decimal `json:"averagePurchasePrice"`
}

// Underlying is a tradable instrument available within a wikifolio,
// identified by its ISIN.
type Underlying struct {
	Isin *string `json:"isin"`
	Name *string `json:"name"`
}

// WikifolioDTO mirrors the GET /wikifolios/{symbol} response body.
type WikifolioDTO struct {
	WikifolioSymbol           *string          `json:"wikifolioSymbol"`
	CashAccountCurrentBalance decimal.Decimal  `json:"cashAccountCurrentBalance"`
	TotalValue                decimal.Decimal  `json:"totalValue"`
	BidPrice                  *decimal.Decimal `json:"bidPrice"`
	AskPrice                  *decimal.Decimal `json:"askPrice"`
	PriceDate                 *string          `json:"priceDate"`
	BaseCurrency              *string          `json:"baseCurrency"`
	Positions                 []Position       `json:"positions"`
}

// Wikifolio is a portfolio snapshot with its positions in server order.
type Wikifolio struct {
	WikifolioSymbol           *string
	CashAccountCurrentBalance decimal.Decimal
	TotalValue                decimal.Decimal
	BidPrice                  *decimal.Decimal
	AskPrice                  *decimal.Decimal
	PriceDate                 *time.Time
	BaseCurrency              *string
	Positions                 []Position
}

func (dto *WikifolioDTO) ToWikifolio() (*Wikifolio, error) {
	var priceDate *time.Time
	if dto.PriceDate != nil && *dto.PriceDate != "" {
		parsed, err := ParseVenueDate(*dto.PriceDate)
		if err != nil {
			return nil, fmt.Errorf("WikifolioDTO:ToWikifolio(): failed to parse price date: %w", err)
		}
		priceDate = &parsed
	}

	return &Wikifolio{
		WikifolioSymbol:           dto.WikifolioSymbol,
		CashAccountCurrentBalance: dto.CashAccountCurrentBalance,
		TotalValue:                dto.TotalValue,
		BidPrice:                  dto.BidPrice,
		AskPrice:                  dto.AskPrice,
		PriceDate:                 priceDate,
		BaseCurrency:              dto.BaseCurrency,
		Positions:                 dto.Positions,
	}, nil
}
