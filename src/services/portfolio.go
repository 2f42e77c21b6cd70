package services

import (
	"encoding/json"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"

	"wikifolio-trading/src/apierrors"
	"wikifolio-trading/src/models"
)

// ListWikifolios returns every wikifolio tradable with this session, across
// all pages.
func ListWikifolios(baseURL, token string) ([]models.WikifolioListItem, error) {
	items, err := FetchAllPages[models.WikifolioListItem](baseURL, "/wikifolios", token, nil)
	if err != nil {
		return nil, fmt.Errorf("ListWikifolios: %w", err)
	}

	return items, nil
}

// FetchWikifolio returns the portfolio snapshot of one wikifolio, with its
// positions in server order.
func FetchWikifolio(baseURL, token, symbol string) (*models.Wikifolio, error) {
	log.Infof("fetching wikifolio %s", symbol)

	statusCode, body, err := doRequest(http.MethodGet, fmt.Sprintf("%s/wikifolios/%s", baseURL, symbol), tokenHeaders(token), nil)
	if err != nil {
		return nil, apierrors.Wrap(apierrors.ErrTransport, fmt.Sprintf("FetchWikifolio: failed to fetch wikifolio %s", symbol), err)
	}

	if !isSuccess(statusCode) {
		return nil, apierrors.NewStatus(apierrors.ErrTransport, fmt.Sprintf("FetchWikifolio: failed to fetch wikifolio %s", symbol), statusCode, string(body))
	}

	var dto models.WikifolioDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return nil, apierrors.Wrap(apierrors.ErrTransport, fmt.Sprintf("FetchWikifolio: failed to parse wikifolio %s", symbol), err)
	}

	wikifolio, err := dto.ToWikifolio()
	if err != nil {
		return nil, fmt.Errorf("FetchWikifolio: %w", err)
	}

	return wikifolio, nil
}

// ListUnderlyings returns the tradable instruments of a wikifolio, across
// all pages.
func ListUnderlyings(baseURL, token, symbol string) ([]models.Underlying, error) {
	underlyings, err := FetchAllPages[models.Underlying](baseURL, fmt.Sprintf("/wikifolios/%s/underlyings", symbol), token, nil)
	if err != nil {
		return nil, fmt.Errorf("ListUnderlyings: %w", err)
	}

	return underlyings, nil
}
