package cli

import (
	"context"
	"fmt"

	"github.com/njprem/PH_TouristFinder_BackEnd/internal/service"
	"github.com/njprem/PH_TouristFinder_BackEnd/internal/util"
)

func (a *App) runQuoteStay(ctx context.Context, args []string) error {
	var input service.StayQuoteInput
	fs := newFlagSet("quote-stay", a.out)
	fs.StringVar(&input.AccommodationID, "id", "", "accommodation id")
	fs.StringVar(&input.CheckIn, "check-in", "", "check-in date (YYYY-MM-DD)")
	fs.StringVar(&input.CheckOut, "check-out", "", "check-out date (YYYY-MM-DD)")
	fs.IntVar(&input.Guests, "guests", 1, "number of guests (1-5)")
	asJSON := fs.Bool("json", false, "print JSON")
	if err := parseFlags(fs, args, false); err != nil {
		return err
	}

	quote, err := a.svc.Booking.QuoteStay(ctx, input)
	if err != nil {
		return a.fail(*asJSON, err)
	}
	if *asJSON {
		return a.writeJSON(util.Data("booking", quote))
	}
	fmt.Fprintln(a.out, "Booking Confirmed!")
	fmt.Fprintln(a.out, quote.Message)
	fmt.Fprintf(a.out, "Reference: %s\n", quote.Reference)
	fmt.Fprintf(a.out, "Stay:      %s to %s (%d nights, %d guests)\n",
		quote.CheckIn.Format("2006-01-02"), quote.CheckOut.Format("2006-01-02"), quote.Nights, quote.Guests)
	fmt.Fprintf(a.out, "Estimate:  %s - %s\n", a.peso(quote.EstimateMin), a.peso(quote.EstimateMax))
	return nil
}

func (a *App) runQuoteActivity(ctx context.Context, args []string) error {
	var input service.ActivityQuoteInput
	fs := newFlagSet("quote-activity", a.out)
	fs.StringVar(&input.ActivityID, "id", "", "activity id")
	fs.StringVar(&input.Date, "date", "", "activity date (YYYY-MM-DD)")
	fs.IntVar(&input.Participants, "participants", 1, "number of participants (1-5)")
	fs.StringVar(&input.SpecialRequests, "requests", "", "special requests")
	asJSON := fs.Bool("json", false, "print JSON")
	if err := parseFlags(fs, args, false); err != nil {
		return err
	}

	quote, err := a.svc.Booking.QuoteActivity(ctx, input)
	if err != nil {
		return a.fail(*asJSON, err)
	}
	if *asJSON {
		return a.writeJSON(util.Data("booking", quote))
	}
	fmt.Fprintln(a.out, "Booking Confirmed!")
	fmt.Fprintln(a.out, quote.Message)
	fmt.Fprintf(a.out, "Reference: %s\n", quote.Reference)
	fmt.Fprintf(a.out, "Date:      %s (%d participants)\n", quote.Date.Format("2006-01-02"), quote.Participants)
	fmt.Fprintf(a.out, "Total:     %s\n", a.peso(quote.Total))
	if quote.SpecialRequests != "" {
		fmt.Fprintf(a.out, "Requests:  %s\n", quote.SpecialRequests)
	}
	return nil
}
