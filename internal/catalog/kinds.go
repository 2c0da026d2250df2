package catalog

import "github.com/njprem/PH_TouristFinder_BackEnd/internal/domain"

const (
	SortRating      = "rating"
	SortReviews     = "reviews"
	SortReviewCount = "reviewCount"
	SortName        = "name"
	SortFeatured    = "featured"
	SortPriceLow    = "price_low"
	SortPriceHigh   = "price_high"
)

const (
	FieldCategory   = "category"
	FieldRegion     = "region"
	FieldType       = "type"
	FieldPrice      = "price"
	FieldPriceRange = "priceRange"
	FieldDifficulty = "difficulty"
)

func DestinationSchema() Schema[domain.Destination] {
	rating := Descending(func(d domain.Destination) float64 { return d.Rating })
	reviews := Descending(func(d domain.Destination) int { return d.ReviewCount })
	return Schema[domain.Destination]{
		Kind: "destination",
		Text: []func(domain.Destination) string{
			func(d domain.Destination) string { return d.Name },
			func(d domain.Destination) string { return d.Location },
			func(d domain.Destination) string { return d.Description },
		},
		Filters: map[string]Predicate[domain.Destination]{
			FieldCategory: Equals(func(d domain.Destination) domain.DestinationCategory { return d.Category }),
			FieldRegion:   Contains(func(d domain.Destination) string { return d.Region }),
		},
		Sorts: map[string]Ordering[domain.Destination]{
			SortRating:      rating,
			SortReviews:     reviews,
			SortReviewCount: reviews,
			SortName:        Collated(func(d domain.Destination) string { return d.Name }),
			SortFeatured:    TrueFirst(func(d domain.Destination) bool { return d.Featured }),
		},
		DefaultSort: SortRating,
	}
}

// DashboardSchema is the destination schema as the dashboard search box uses
// it: name and location only.
func DashboardSchema() Schema[domain.Destination] {
	s := DestinationSchema()
	s.Text = s.Text[:2]
	return s
}

func AccommodationSchema() Schema[domain.Accommodation] {
	minPrice := func(a domain.Accommodation) int64 { return a.PriceRange.Min }
	price := InBucket(minPrice, AccommodationPriceBuckets)
	reviews := Descending(func(a domain.Accommodation) int { return a.ReviewCount })
	return Schema[domain.Accommodation]{
		Kind: "accommodation",
		Text: []func(domain.Accommodation) string{
			func(a domain.Accommodation) string { return a.Name },
			func(a domain.Accommodation) string { return a.Location },
			func(a domain.Accommodation) string { return a.Description },
		},
		Filters: map[string]Predicate[domain.Accommodation]{
			FieldType:       Equals(func(a domain.Accommodation) domain.AccommodationType { return a.Type }),
			FieldPrice:      price,
			FieldPriceRange: price,
		},
		Sorts: map[string]Ordering[domain.Accommodation]{
			SortRating:      Descending(func(a domain.Accommodation) float64 { return a.Rating }),
			SortReviews:     reviews,
			SortReviewCount: reviews,
			SortName:        Collated(func(a domain.Accommodation) string { return a.Name }),
			SortPriceLow:    Ascending(minPrice),
			SortPriceHigh:   Descending(minPrice),
		},
		DefaultSort: SortRating,
	}
}

func ActivitySchema() Schema[domain.Activity] {
	price := func(a domain.Activity) int64 { return a.Price }
	reviews := Descending(func(a domain.Activity) int { return a.ReviewCount })
	return Schema[domain.Activity]{
		Kind: "activity",
		Text: []func(domain.Activity) string{
			func(a domain.Activity) string { return a.Name },
			func(a domain.Activity) string { return a.Location },
			func(a domain.Activity) string { return a.Description },
		},
		Filters: map[string]Predicate[domain.Activity]{
			FieldType:       Equals(func(a domain.Activity) domain.ActivityType { return a.Type }),
			FieldDifficulty: Equals(func(a domain.Activity) domain.ActivityDifficulty { return a.Difficulty }),
			FieldPrice:      InBucket(price, ActivityPriceBuckets),
		},
		Sorts: map[string]Ordering[domain.Activity]{
			SortRating:      Descending(func(a domain.Activity) float64 { return a.Rating }),
			SortReviews:     reviews,
			SortReviewCount: reviews,
			SortName:        Collated(func(a domain.Activity) string { return a.Name }),
			SortPriceLow:    Ascending(price),
			SortPriceHigh:   Descending(price),
		},
		DefaultSort: SortRating,
	}
}
