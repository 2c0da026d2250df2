package domain

type AccommodationType string

const (
	AccommodationTypeHotel      AccommodationType = "hotel"
	AccommodationTypeResort     AccommodationType = "resort"
	AccommodationTypeHostel     AccommodationType = "hostel"
	AccommodationTypeVilla      AccommodationType = "villa"
	AccommodationTypeGuesthouse AccommodationType = "guesthouse"
)

var AccommodationTypes = []AccommodationType{
	AccommodationTypeHotel,
	AccommodationTypeResort,
	AccommodationTypeHostel,
	AccommodationTypeVilla,
	AccommodationTypeGuesthouse,
}

func (t AccommodationType) Valid() bool {
	for _, known := range AccommodationTypes {
		if t == known {
			return true
		}
	}
	return false
}

// PriceRange is a nightly rate range in whole pesos.
type PriceRange struct {
	Min int64 `db:"price_min" json:"min"`
	Max int64 `db:"price_max" json:"max"`
}

type ContactInfo struct {
	Phone   string  `db:"contact_phone" json:"phone"`
	Email   string  `db:"contact_email" json:"email"`
	Website *string `db:"contact_website" json:"website,omitempty"`
}

type Accommodation struct {
	ID          string            `db:"id" json:"id"`
	Name        string            `db:"name" json:"name"`
	Type        AccommodationType `db:"type" json:"type"`
	Description string            `db:"description" json:"description"`
	Location    string            `db:"location" json:"location"`
	Images      []string          `db:"-" json:"images"`
	Rating      float64           `db:"rating" json:"rating"`
	ReviewCount int               `db:"review_count" json:"reviewCount"`
	PriceRange  PriceRange        `db:"-" json:"priceRange"`
	Amenities   []string          `db:"-" json:"amenities"`
	ContactInfo ContactInfo       `db:"-" json:"contactInfo"`
	Coordinates Coordinates       `db:"-" json:"coordinates"`
}
