package qiwi

import (
	"fmt"
	"slices"
	"strings"
)

// Endpoint categories as derived from request paths.
const (
	CategoryPersonProfile  = "person-profile"
	CategoryFundingSources = "funding-sources"
	CategoryPaymentHistory = "payment-history"
	CategoryIdentification = "identification"
)

// errorRule describes one known failure. A rule without categories is the
// fallback for its status code.
type errorRule struct {
	categories []string
	msg        string
}

var apiCodes = map[int][]errorRule{
	400: {
		{msg: "Invalid request syntax (invalid format of data)"},
	},
	401: {
		{msg: "Invalid or expired token"},
	},
	403: {
		{msg: "Not enough rights for the request, check token permissions"},
	},
	404: {
		{categories: []string{CategoryPaymentHistory}, msg: "Transaction not found or no payments with specified params"},
		{categories: []string{CategoryFundingSources, CategoryPersonProfile, CategoryIdentification}, msg: "Wallet not found"},
	},
	423: {
		{categories: []string{CategoryPaymentHistory}, msg: "Too many requests, service is temporarily unavailable"},
	},
	500: {
		{msg: "Internal service error"},
	},
}

// Classify returns a human readable description for a failed call. A message
// scoped to the category wins over the status fallback.
func Classify(statusCode int, category string) string {
	var fallback, scoped string
	for _, rule := range apiCodes[statusCode] {
		switch {
		case rule.categories == nil:
			fallback = rule.msg
		case slices.Contains(rule.categories, category):
			scoped = rule.msg
		}
	}

	if scoped != "" {
		return scoped
	}
	if fallback != "" {
		return fallback
	}
	return fmt.Sprintf("unknown error %d at %s", statusCode, category)
}

// CategoryOf derives the endpoint category of an API path: the first segment,
// or the last one for sinap paths.
func CategoryOf(path string) string {
	path = strings.Trim(path, "/")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	parts := strings.Split(path, "/")
	if parts[0] == "sinap" {
		return parts[len(parts)-1]
	}
	return parts[0]
}
