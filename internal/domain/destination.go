package domain

type DestinationCategory string

const (
	DestinationCategoryBeach      DestinationCategory = "beach"
	DestinationCategoryMountain   DestinationCategory = "mountain"
	DestinationCategoryHistorical DestinationCategory = "historical"
	DestinationCategoryCultural   DestinationCategory = "cultural"
	DestinationCategoryUrban      DestinationCategory = "urban"
	DestinationCategoryNatural    DestinationCategory = "natural"
)

var DestinationCategories = []DestinationCategory{
	DestinationCategoryBeach,
	DestinationCategoryMountain,
	DestinationCategoryHistorical,
	DestinationCategoryCultural,
	DestinationCategoryUrban,
	DestinationCategoryNatural,
}

func (c DestinationCategory) Valid() bool {
	for _, known := range DestinationCategories {
		if c == known {
			return true
		}
	}
	return false
}

type Coordinates struct {
	Lat float64 `db:"latitude" json:"lat"`
	Lng float64 `db:"longitude" json:"lng"`
}

// Destination is a tourist spot as listed on the destinations page.
type Destination struct {
	ID              string              `db:"id" json:"id"`
	Name            string              `db:"name" json:"name"`
	Description     string              `db:"description" json:"description"`
	Location        string              `db:"location" json:"location"`
	Region          string              `db:"region" json:"region"`
	Province        string              `db:"province" json:"province"`
	Category        DestinationCategory `db:"category" json:"category"`
	Images          []string            `db:"-" json:"images"`
	Rating          float64             `db:"rating" json:"rating"`
	ReviewCount     int                 `db:"review_count" json:"reviewCount"`
	BestTimeToVisit string              `db:"best_time_to_visit" json:"bestTimeToVisit"`
	EntryFee        *int64              `db:"entry_fee" json:"entryFee,omitempty"`
	Activities      []string            `db:"-" json:"activities"`
	Coordinates     Coordinates         `db:"-" json:"coordinates"`
	Featured        bool                `db:"featured" json:"featured"`
}
