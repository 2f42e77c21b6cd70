package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	log "github.com/sirupsen/logrus"

	"wikifolio-trading/src/apierrors"
	"wikifolio-trading/src/models"
)

// FetchAllPages exhausts a page-numbered listing endpoint into one ordered
// sequence, preserving server order. Every invocation starts over from page
// 1, and a failure on any page discards everything accumulated so far. The
// engine does not deduplicate across pages.
func FetchAllPages[T any](baseURL, endpoint, token string, extra url.Values) ([]T, error) {
	page := 1
	var results []T

	for {
		params := url.Values{}
		for key, values := range extra {
			params[key] = values
		}
		params.Set("pageNumber", strconv.Itoa(page))

		requestURL := fmt.Sprintf("%s%s?%s", baseURL, endpoint, params.Encode())

		log.Infof("fetching %s, page %d", endpoint, page)

		statusCode, body, err := doRequest(http.MethodGet, requestURL, tokenHeaders(token), nil)
		if err != nil {
			return nil, apierrors.Wrap(apierrors.ErrTransport, fmt.Sprintf("FetchAllPages: failed to fetch page %d of %s", page, endpoint), err)
		}

		if !isSuccess(statusCode) {
			return nil, apierrors.NewStatus(apierrors.ErrTransport, fmt.Sprintf("FetchAllPages: failed to fetch page %d of %s", page, endpoint), statusCode, string(body))
		}

		var resp models.PaginatedResponse[T]
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, apierrors.Wrap(apierrors.ErrTransport, fmt.Sprintf("FetchAllPages: failed to parse page %d of %s", page, endpoint), err)
		}

		if page == 1 {
			log.Infof("found %d pages of %s", resp.TotalPages, endpoint)
		}
		log.Infof("found %d results on page %d of %s", len(resp.Results), page, endpoint)

		results = append(results, resp.Results...)

		// 1-based pages; done when the server reports
		// pageNumber == totalPages. totalPages == 0 and an empty page both
		// terminate after a single request.
		if len(resp.Results) == 0 || resp.PageNumber >= resp.TotalPages {
			break
		}

		page++
	}

	return results, nil
}
