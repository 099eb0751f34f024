// Package search implements the substring filter behind the list pages.
// It works on in-memory slices, independent of the database collation.
package search

import "strings"

// Options tune matching.
type Options struct {
	CaseInsensitive bool
}

// Filter returns the items whose field contains query, in their original order.
// An empty query returns items unfiltered. No match yields an empty, non-nil slice.
func Filter[T any](items []T, query string, field func(T) string, opts Options) []T {
	if query == "" {
		return items
	}

	match := Matcher(query, opts)
	out := make([]T, 0, len(items))
	for _, item := range items {
		if match(field(item)) {
			out = append(out, item)
		}
	}
	return out
}

// Matcher returns a predicate reporting whether a value contains query.
func Matcher(query string, opts Options) func(string) bool {
	if !opts.CaseInsensitive {
		return func(s string) bool {
			return strings.Contains(s, query)
		}
	}
	q := strings.ToLower(query)
	return func(s string) bool {
		return strings.Contains(strings.ToLower(s), q)
	}
}
