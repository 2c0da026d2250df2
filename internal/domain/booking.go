package domain

import (
	"time"

	"github.com/google/uuid"
)

// StayQuote is the simulated outcome of the accommodation booking dialog.
// Nothing is reserved or charged.
type StayQuote struct {
	Reference     uuid.UUID `json:"reference"`
	Accommodation string    `json:"accommodation"`
	CheckIn       time.Time `json:"checkIn"`
	CheckOut      time.Time `json:"checkOut"`
	Nights        int       `json:"nights"`
	Guests        int       `json:"guests"`
	EstimateMin   int64     `json:"estimateMin"`
	EstimateMax   int64     `json:"estimateMax"`
	Message       string    `json:"message"`
}

// ActivityQuote is the simulated outcome of the activity booking dialog.
type ActivityQuote struct {
	Reference       uuid.UUID `json:"reference"`
	Activity        string    `json:"activity"`
	Date            time.Time `json:"date"`
	Participants    int       `json:"participants"`
	PricePerPerson  int64     `json:"pricePerPerson"`
	Total           int64     `json:"total"`
	SpecialRequests string    `json:"specialRequests,omitempty"`
	Message         string    `json:"message"`
}
