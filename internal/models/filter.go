package models

import (
	"net/url"
	"strings"
)

// SearchFilter holds the optional criteria used to narrow a news search.
// Dates are expected as YYYY-MM-DD.
type SearchFilter struct {
	Keyword   string `json:"keyword,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// Upstream query parameter names
const (
	QueryKeyword   = "keyword"
	QueryStartDate = "startdate"
	QueryEndDate   = "enddate"
)

// HasFilters reports whether any field holds a non-blank value
func (f SearchFilter) HasFilters() bool {
	return isPresent(f.Keyword) || isPresent(f.StartDate) || isPresent(f.EndDate)
}

// Encode builds the upstream query string. Only present fields are emitted,
// always in keyword, startdate, enddate order.
func (f SearchFilter) Encode() string {
	var parts []string

	if isPresent(f.Keyword) {
		parts = append(parts, QueryKeyword+"="+url.QueryEscape(f.Keyword))
	}
	if isPresent(f.StartDate) {
		parts = append(parts, QueryStartDate+"="+url.QueryEscape(NormalizeDate(f.StartDate)))
	}
	if isPresent(f.EndDate) {
		parts = append(parts, QueryEndDate+"="+url.QueryEscape(NormalizeDate(f.EndDate)))
	}

	return strings.Join(parts, "&")
}

// NormalizeDate converts YYYY-MM-DD into the YYYY/MM/DD form the upstream expects
func NormalizeDate(date string) string {
	return strings.ReplaceAll(date, "-", "/")
}

func isPresent(value string) bool {
	return strings.TrimSpace(value) != ""
}
