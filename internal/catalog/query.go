package catalog

import (
	"maps"
	"net/url"
	"slices"
	"strings"
)

// All is the filter value meaning "no restriction".
const All = "all"

// Query is one evaluation's search text, filter values, and sort key.
// It is a value type: the With* methods return modified copies and never
// touch the receiver's filter map.
type Query struct {
	Search  string
	Filters map[string]string
	Sort    string
}

// Filter is a single field/value pair used to build a Query.
type Filter struct {
	Field string
	Value string
}

// NewQuery builds a Query. When several filters name the same field the last
// one wins.
func NewQuery(search, sort string, filters ...Filter) Query {
	q := Query{Search: search, Sort: sort}
	for _, f := range filters {
		q = q.WithFilter(f.Field, f.Value)
	}
	return q
}

func (q Query) WithSearch(search string) Query {
	q.Filters = maps.Clone(q.Filters)
	q.Search = search
	return q
}

func (q Query) WithSort(sort string) Query {
	q.Filters = maps.Clone(q.Filters)
	q.Sort = sort
	return q
}

// WithFilter sets field to value, replacing any earlier value for field.
func (q Query) WithFilter(field, value string) Query {
	field = strings.TrimSpace(field)
	next := make(map[string]string, len(q.Filters)+1)
	maps.Copy(next, q.Filters)
	if field != "" {
		next[field] = value
	}
	q.Filters = next
	return q
}

// Filter returns the active value for field, or All when unset.
func (q Query) Filter(field string) string {
	if v, ok := q.Filters[field]; ok && !isUnrestricted(v) {
		return v
	}
	return All
}

// ParseValues reads a Query from URL query parameters, e.g. the
// "/destinations?region=luzon" links on the home page. "q", "search" or
// "query" is the search text (in that precedence), "sort" or "sortby" the sort
// key, and every other key is a filter. Keys are case-insensitive and walked
// in sorted order, so when one filter appears under several spellings the
// lower-case spelling wins. Repeated keys resolve to their last value.
func ParseValues(values url.Values) Query {
	var q Query
	aliases := make(map[string]string)
	for _, key := range slices.Sorted(maps.Keys(values)) {
		vals := values[key]
		if len(vals) == 0 {
			continue
		}
		last := strings.TrimSpace(vals[len(vals)-1])
		lower := strings.ToLower(strings.TrimSpace(key))
		switch lower {
		case "q", "search", "query", "sort", "sortby":
			aliases[lower] = last
		default:
			q = q.WithFilter(canonicalField(lower), last)
		}
	}
	q.Search = firstPresent(aliases, "q", "search", "query")
	q.Sort = firstPresent(aliases, "sort", "sortby")
	return q
}

var knownFields = map[string]string{
	strings.ToLower(FieldCategory):   FieldCategory,
	strings.ToLower(FieldRegion):     FieldRegion,
	strings.ToLower(FieldType):       FieldType,
	strings.ToLower(FieldPrice):      FieldPrice,
	strings.ToLower(FieldPriceRange): FieldPriceRange,
	strings.ToLower(FieldDifficulty): FieldDifficulty,
}

func canonicalField(lower string) string {
	if field, ok := knownFields[lower]; ok {
		return field
	}
	return lower
}

func firstPresent(m map[string]string, keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			return v
		}
	}
	return ""
}

func isUnrestricted(value string) bool {
	v := strings.TrimSpace(value)
	return v == "" || strings.EqualFold(v, All)
}
