// Package catalog filters, searches and sorts the read-only travel catalog.
//
// Every list view runs the same pipeline: a case-insensitive text match, a
// conjunction of filter predicates, then a stable sort. Apply never mutates
// its input and never fails; unknown filter or sort keys are ignored and an
// empty result is a normal answer.
package catalog

import (
	"slices"
	"strings"
)

// Apply returns the items matching q, ordered by q's sort key. The result is
// a new slice.
func Apply[T any](items []T, schema Schema[T], q Query) []T {
	match := schema.matcher(q)
	out := make([]T, 0, len(items))
	for _, item := range items {
		if match(item) {
			out = append(out, item)
		}
	}
	if compare := schema.comparator(q.Sort); compare != nil {
		slices.SortStableFunc(out, compare)
	}
	return out
}

// Matches reports whether a single item passes q's search and filters.
func Matches[T any](item T, schema Schema[T], q Query) bool {
	return schema.matcher(q)(item)
}

// Facets counts, for each value, how many items pass q with field set to that
// value. The remaining filters and the search text still apply.
func Facets[T any](items []T, schema Schema[T], q Query, field string, values []string) map[string]int {
	counts := make(map[string]int, len(values))
	for _, value := range values {
		match := schema.matcher(q.WithFilter(field, value))
		n := 0
		for _, item := range items {
			if match(item) {
				n++
			}
		}
		counts[value] = n
	}
	return counts
}

type activeFilter[T any] struct {
	pred  Predicate[T]
	value string
}

func (s Schema[T]) matcher(q Query) func(T) bool {
	term := strings.ToLower(strings.TrimSpace(q.Search))

	filters := make([]activeFilter[T], 0, len(q.Filters))
	for field, value := range q.Filters {
		if isUnrestricted(value) {
			continue
		}
		pred, ok := s.Filters[field]
		if !ok {
			continue
		}
		filters = append(filters, activeFilter[T]{pred: pred, value: value})
	}

	return func(item T) bool {
		if term != "" && !s.textMatches(item, term) {
			return false
		}
		for _, f := range filters {
			if !f.pred(item, f.value) {
				return false
			}
		}
		return true
	}
}

func (s Schema[T]) textMatches(item T, term string) bool {
	for _, field := range s.Text {
		if strings.Contains(strings.ToLower(field(item)), term) {
			return true
		}
	}
	return false
}

func (s Schema[T]) comparator(key string) func(a, b T) int {
	key = strings.TrimSpace(key)
	if key == "" {
		key = s.DefaultSort
	}
	ordering, ok := s.Sorts[key]
	if !ok {
		return nil
	}
	return ordering()
}

// SortKeys lists the sort keys the schema understands.
func (s Schema[T]) SortKeys() []string {
	keys := make([]string, 0, len(s.Sorts))
	for k := range s.Sorts {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// FilterKeys lists the filter fields the schema understands.
func (s Schema[T]) FilterKeys() []string {
	keys := make([]string, 0, len(s.Filters))
	for k := range s.Filters {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
