// Package listview implements the selectable list + detail pattern shared by
// every feature view: a pure filter predicate over an immutable record set and
// a single-record selection that drives a detail panel.
package listview

import (
	"strings"
)

// All is the category selector that matches every record.
const All = "All"

// Fields tells the filter how to read a record.
type Fields[T any] struct {
	// Text returns the fields searched by the query, e.g. title and tags.
	Text func(T) []string
	// Category returns the field compared against the selector. When nil the
	// category condition is always true.
	Category func(T) string
}

// Query is a search string plus an exact-match category selector. Only the
// empty search is vacuous; whitespace is part of the needle.
type Query struct {
	Search   string `json:"search"`
	Category string `json:"category"`
}

// IsZero reports whether the query matches every record.
func (q Query) IsZero() bool {
	return q.Search == "" && isAll(q.Category)
}

func isAll(category string) bool {
	return category == "" || category == All
}

// Matches reports whether a record satisfies both the text and the category condition.
func Matches[T any](record T, q Query, f Fields[T]) bool {
	return matchesCategory(record, q.Category, f) && matchesText(record, q.Search, f)
}

func matchesCategory[T any](record T, category string, f Fields[T]) bool {
	if isAll(category) || f.Category == nil {
		return true
	}
	return f.Category(record) == category
}

func matchesText[T any](record T, search string, f Fields[T]) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	if f.Text == nil {
		return false
	}
	for _, field := range f.Text(record) {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// Apply returns the records matching q in their original order. The input
// slice is never modified and the result never aliases it.
func Apply[T any](records []T, q Query, f Fields[T]) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if Matches(r, q, f) {
			out = append(out, r)
		}
	}
	return out
}

// Categories returns All followed by each distinct category in first-seen order.
func Categories[T any](records []T, category func(T) string) []string {
	seen := make(map[string]bool)
	out := []string{All}
	for _, r := range records {
		c := category(r)
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// NextCategory returns the category after current in options, wrapping around.
// Unknown values restart at the first option.
func NextCategory(options []string, current string) string {
	if len(options) == 0 {
		return All
	}
	for i, o := range options {
		if o == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}
