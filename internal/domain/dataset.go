package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidDataset = errors.New("invalid catalog dataset")

// Dataset is the read-only catalog every list page queries.
type Dataset struct {
	Destinations   []Destination   `json:"touristSpots"`
	Accommodations []Accommodation `json:"accommodations"`
	Activities     []Activity      `json:"activities"`
	Regions        []Region        `json:"regions"`
}

// Validate checks the record invariants. All problems are reported together,
// wrapped in ErrInvalidDataset.
func (d *Dataset) Validate() error {
	if d == nil {
		return fmt.Errorf("%w: dataset is nil", ErrInvalidDataset)
	}

	var problems []error
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Errorf(format, args...))
	}

	seen := make(map[string]struct{}, len(d.Destinations))
	for i, dest := range d.Destinations {
		ref := recordRef("destination", i, dest.ID)
		checkIdentity(ref, dest.ID, dest.Name, seen, add)
		checkScore(ref, dest.Rating, dest.ReviewCount, add)
		if !dest.Category.Valid() {
			add("%s: unknown category %q", ref, dest.Category)
		}
		if dest.EntryFee != nil && *dest.EntryFee < 0 {
			add("%s: entry fee must not be negative", ref)
		}
	}

	seen = make(map[string]struct{}, len(d.Accommodations))
	for i, acc := range d.Accommodations {
		ref := recordRef("accommodation", i, acc.ID)
		checkIdentity(ref, acc.ID, acc.Name, seen, add)
		checkScore(ref, acc.Rating, acc.ReviewCount, add)
		if !acc.Type.Valid() {
			add("%s: unknown type %q", ref, acc.Type)
		}
		if acc.PriceRange.Min < 0 || acc.PriceRange.Max < 0 {
			add("%s: price range must not be negative", ref)
		}
		if acc.PriceRange.Min > acc.PriceRange.Max {
			add("%s: price range min %d exceeds max %d", ref, acc.PriceRange.Min, acc.PriceRange.Max)
		}
	}

	seen = make(map[string]struct{}, len(d.Activities))
	for i, act := range d.Activities {
		ref := recordRef("activity", i, act.ID)
		checkIdentity(ref, act.ID, act.Name, seen, add)
		checkScore(ref, act.Rating, act.ReviewCount, add)
		if !act.Type.Valid() {
			add("%s: unknown type %q", ref, act.Type)
		}
		if !act.Difficulty.Valid() {
			add("%s: unknown difficulty %q", ref, act.Difficulty)
		}
		if act.Price < 0 {
			add("%s: price must not be negative", ref)
		}
	}

	seen = make(map[string]struct{}, len(d.Regions))
	for i, region := range d.Regions {
		checkIdentity(recordRef("region", i, region.ID), region.ID, region.Name, seen, add)
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidDataset, errors.Join(problems...))
}

func recordRef(kind string, index int, id string) string {
	if strings.TrimSpace(id) == "" {
		return fmt.Sprintf("%s[%d]", kind, index)
	}
	return fmt.Sprintf("%s %q", kind, id)
}

func checkIdentity(ref, id, name string, seen map[string]struct{}, add func(string, ...any)) {
	if strings.TrimSpace(id) == "" {
		add("%s: id is required", ref)
	} else if _, dup := seen[id]; dup {
		add("%s: duplicate id", ref)
	} else {
		seen[id] = struct{}{}
	}
	if strings.TrimSpace(name) == "" {
		add("%s: name is required", ref)
	}
}

func checkScore(ref string, rating float64, reviews int, add func(string, ...any)) {
	if !(rating >= 0 && rating <= 5) {
		add("%s: rating %.2f outside [0, 5]", ref, rating)
	}
	if reviews < 0 {
		add("%s: review count must not be negative", ref)
	}
}
