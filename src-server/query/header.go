package query

import "strings"

// HeaderPredicate reports whether a cell's text marks its row as a header
// row. Detection is best-effort: sheets conventionally carry a label row at
// the top, but nothing enforces it.
type HeaderPredicate func(cell string) bool

// HeaderTokens builds a predicate matching any of the given labels,
// case-insensitively, after trimming.
func HeaderTokens(tokens ...string) HeaderPredicate {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[strings.ToLower(strings.TrimSpace(t))] = struct{}{}
	}
	return func(cell string) bool {
		_, ok := set[strings.ToLower(strings.TrimSpace(cell))]
		return ok
	}
}

// DefaultHeaderPredicate knows the header labels observed across the six
// tables in production sheets.
func DefaultHeaderPredicate() HeaderPredicate {
	return HeaderTokens(
		"type", "event type", "date", "time", "zoom link", "zoom_link",
		"name", "names", "category", "categories",
		"upline", "downline", "month", "remarks",
		"admin", "admin id", "admin ids", "mc", "mcs",
		"presenter", "presenters", "impact", "impact speaker", "impact speakers",
		"key", "url",
	)
}

func trim(s string) string {
	return strings.TrimSpace(s)
}
