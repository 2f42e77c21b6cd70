package models

// PaginatedResponse is the envelope returned by every page-numbered listing
// endpoint. Page numbers are 1-based.
type PaginatedResponse[T any] struct {
	PageNumber int `json:"pageNumber"`
	TotalPages int `json:"totalPages"`
	Results    []T `json:"results"`
}
