// Package states holds the fixed list of US state abbreviations used to
// validate directory filters and drive the per-state fan-outs.
package states

import "strings"

// All lists the 50 states plus DC, in alphabetical order.
var All = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DC", "DE", "FL",
	"GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
	"MD", "MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH",
	"NJ", "NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI",
	"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
}

var valid = func() map[string]bool {
	m := make(map[string]bool, len(All))
	for _, s := range All {
		m[s] = true
	}
	return m
}()

// IsValid reports whether code is a known state abbreviation.
// Comparison is case-insensitive; callers should store Normalize(code).
func IsValid(code string) bool {
	return valid[strings.ToUpper(strings.TrimSpace(code))]
}

// Normalize returns the canonical upper-case form of a state code.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
