// This file implements helpers for parsing and validating HTTP request
// data shared by the form handlers.
package http

import (
	"net/url"
	"strings"

	"github.com/avangala-19/finance-tracker/internal/query"
)

// sanitizeInput removes control characters (except tab/newline/CR) and
// trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}

// parseFilters extracts the optional history filters from query
// parameters. Absent or blank values mean no constraint; dates are
// passed through as opaque strings, matching the permissive add
// contract.
func parseFilters(values url.Values) query.Filters {
	return query.Filters{
		StartDate: sanitizeInput(values.Get("start_date")),
		EndDate:   sanitizeInput(values.Get("end_date")),
		Category:  sanitizeInput(values.Get("category")),
	}
}
