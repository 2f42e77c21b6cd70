package models

// validOrderStatusFilters is the venue's fixed order-status vocabulary for
// the listing filter.
var validOrderStatusFilters = map[string]struct{}{
	"Inactive":                       {},
	"Waiting":                        {},
	"Active":                         {},
	"Evaluating":                     {},
	"Executing":                      {},
	"RequestingExecutionInformation": {},
	"PartiallyExecutedActive":        {},
	"Executed":                       {},
	"PartiallyExecutedExecuted":      {},
	"Deleted":                        {},
	"DeleteRequested":                {},
	"Updated":                        {},
	"Obsolete":                       {},
	"Error":                          {},
	"Rejected":                       {},
	"Undone":                         {},
	"Abandoned":                      {},
}

// IsValidOrderStatusFilter reports whether status is part of the venue's
// order-status vocabulary.
func IsValidOrderStatusFilter(status string) bool {
	_, ok := validOrderStatusFilters[status]
	return ok
}
