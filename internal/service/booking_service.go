package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/njprem/PH_TouristFinder_BackEnd/internal/domain"
	"github.com/njprem/PH_TouristFinder_BackEnd/internal/metrics"
)

var ErrBookingValidation = errors.New("booking validation failed")

const (
	bookingDateLayout = "2006-01-02"
	minPartySize      = 1
	maxPartySize      = 5
)

type StayQuoteInput struct {
	AccommodationID string
	CheckIn         string
	CheckOut        string
	Guests          int
}

type ActivityQuoteInput struct {
	ActivityID      string
	Date            string
	Participants    int
	SpecialRequests string
}

// BookingService simulates the booking dialogs: it validates the form and
// prices the request. Nothing is reserved, stored or charged.
type BookingService struct {
	catalog *CatalogService
	metrics *metrics.Metrics
	logger  *zap.Logger
	newRef  func() uuid.UUID
}

func NewBookingService(catalogSvc *CatalogService, m *metrics.Metrics, logger *zap.Logger) *BookingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BookingService{
		catalog: catalogSvc,
		metrics: m,
		logger:  logger,
		newRef:  uuid.New,
	}
}

func (s *BookingService) QuoteStay(ctx context.Context, input StayQuoteInput) (_ *domain.StayQuote, err error) {
	defer func() { s.metrics.Quote("stay", err) }()

	var problems []string
	checkIn, checkInErr := parseBookingDate(input.CheckIn)
	checkOut, checkOutErr := parseBookingDate(input.CheckOut)
	if checkInErr != nil || checkOutErr != nil {
		problems = append(problems, "please select check-in and check-out dates")
	} else if !checkOut.After(checkIn) {
		problems = append(problems, "check-out must be after check-in")
	}
	if input.Guests < minPartySize || input.Guests > maxPartySize {
		problems = append(problems, fmt.Sprintf("guests must be between %d and %d", minPartySize, maxPartySize))
	}
	if len(problems) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrBookingValidation, strings.Join(problems, "; "))
	}

	acc, err := s.catalog.GetAccommodation(ctx, input.AccommodationID)
	if err != nil {
		return nil, err
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	quote := &domain.StayQuote{
		Reference:     s.newRef(),
		Accommodation: acc.Name,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Nights:        nights,
		Guests:        input.Guests,
		EstimateMin:   acc.PriceRange.Min * int64(nights),
		EstimateMax:   acc.PriceRange.Max * int64(nights),
		Message: fmt.Sprintf("Your booking for %s has been confirmed. You will receive a confirmation email shortly.",
			acc.Name),
	}
	s.logger.Info("stay quoted",
		zap.String("reference", quote.Reference.String()),
		zap.String("accommodation", acc.ID),
		zap.Int("nights", nights),
		zap.Int("guests", input.Guests),
	)
	return quote, nil
}

func (s *BookingService) QuoteActivity(ctx context.Context, input ActivityQuoteInput) (_ *domain.ActivityQuote, err error) {
	defer func() { s.metrics.Quote("activity", err) }()

	var problems []string
	date, dateErr := parseBookingDate(input.Date)
	if dateErr != nil {
		problems = append(problems, "please select a date for the activity")
	}
	if input.Participants < minPartySize || input.Participants > maxPartySize {
		problems = append(problems, fmt.Sprintf("participants must be between %d and %d", minPartySize, maxPartySize))
	}
	if len(problems) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrBookingValidation, strings.Join(problems, "; "))
	}

	act, err := s.catalog.GetActivity(ctx, input.ActivityID)
	if err != nil {
		return nil, err
	}

	quote := &domain.ActivityQuote{
		Reference:       s.newRef(),
		Activity:        act.Name,
		Date:            date,
		Participants:    input.Participants,
		PricePerPerson:  act.Price,
		Total:           act.Price * int64(input.Participants),
		SpecialRequests: strings.TrimSpace(input.SpecialRequests),
		Message: fmt.Sprintf("Your booking for %s has been confirmed! You will receive a confirmation email with all the details.",
			act.Name),
	}
	s.logger.Info("activity quoted",
		zap.String("reference", quote.Reference.String()),
		zap.String("activity", act.ID),
		zap.Int("participants", input.Participants),
		zap.Int64("total", quote.Total),
	)
	return quote, nil
}

func parseBookingDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errors.New("date is required")
	}
	return time.Parse(bookingDateLayout, value)
}
