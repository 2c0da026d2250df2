package catalog

import (
	"cmp"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Predicate reports whether item satisfies a filter set to value.
type Predicate[T any] func(item T, value string) bool

// Ordering builds a three-way comparator for one evaluation. A fresh
// comparator is built per call because collators keep internal buffers.
type Ordering[T any] func() func(a, b T) int

// Schema describes how the engine reads one record kind: which fields are
// searched, which filters and sort keys exist, and the default sort.
type Schema[T any] struct {
	Kind        string
	Text        []func(T) string
	Filters     map[string]Predicate[T]
	Sorts       map[string]Ordering[T]
	DefaultSort string
}

// Equals matches a categorical field exactly.
func Equals[T any, V ~string](field func(T) V) Predicate[T] {
	return func(item T, value string) bool {
		return string(field(item)) == value
	}
}

// Contains matches when value is a case-insensitive substring of the field.
func Contains[T any](field func(T) string) Predicate[T] {
	return func(item T, value string) bool {
		return strings.Contains(strings.ToLower(field(item)), strings.ToLower(value))
	}
}

// InBucket matches when the numeric field falls in the bucket named by value.
// Unknown bucket names match nothing.
func InBucket[T any](field func(T) int64, buckets Buckets) Predicate[T] {
	return func(item T, value string) bool {
		b, ok := buckets.Lookup(value)
		if !ok {
			return false
		}
		return b.Holds(field(item))
	}
}

func Descending[T any, V cmp.Ordered](field func(T) V) Ordering[T] {
	return func() func(a, b T) int {
		return func(a, b T) int { return cmp.Compare(field(b), field(a)) }
	}
}

func Ascending[T any, V cmp.Ordered](field func(T) V) Ordering[T] {
	return func() func(a, b T) int {
		return func(a, b T) int { return cmp.Compare(field(a), field(b)) }
	}
}

// TrueFirst puts items whose flag is set ahead of the rest.
func TrueFirst[T any](flag func(T) bool) Ordering[T] {
	return func() func(a, b T) int {
		return func(a, b T) int {
			return boolRank(flag(b)) - boolRank(flag(a))
		}
	}
}

// Collated orders a text field ascending by English collation rules.
func Collated[T any](field func(T) string) Ordering[T] {
	return func() func(a, b T) int {
		c := collate.New(language.English)
		return func(a, b T) int { return c.CompareString(field(a), field(b)) }
	}
}

func boolRank(v bool) int {
	if v {
		return 1
	}
	return 0
}
