package catalog

import "strings"

// Bucket is a named half-open range [Low, High). A nil bound is unbounded.
type Bucket struct {
	Name string
	Low  *int64
	High *int64
}

func (b Bucket) Holds(v int64) bool {
	if b.Low != nil && v < *b.Low {
		return false
	}
	if b.High != nil && v >= *b.High {
		return false
	}
	return true
}

type Buckets []Bucket

func (bs Buckets) Lookup(name string) (Bucket, bool) {
	for _, b := range bs {
		if strings.EqualFold(b.Name, strings.TrimSpace(name)) {
			return b, true
		}
	}
	return Bucket{}, false
}

// Classify returns the name of the first bucket holding v.
func (bs Buckets) Classify(v int64) (string, bool) {
	for _, b := range bs {
		if b.Holds(v) {
			return b.Name, true
		}
	}
	return "", false
}

func bound(v int64) *int64 { return &v }

// AccommodationPriceBuckets classify the minimum nightly rate.
var AccommodationPriceBuckets = Buckets{
	{Name: "budget", High: bound(5000)},
	{Name: "mid", Low: bound(5000), High: bound(15000)},
	{Name: "luxury", Low: bound(15000)},
}

// ActivityPriceBuckets classify the per-person price. "free" is exactly zero.
var ActivityPriceBuckets = Buckets{
	{Name: "free", Low: bound(0), High: bound(1)},
	{Name: "budget", Low: bound(1), High: bound(1000)},
	{Name: "mid", Low: bound(1000), High: bound(3000)},
	{Name: "premium", Low: bound(3000)},
}
