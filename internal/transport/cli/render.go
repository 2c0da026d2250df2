package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/currency"

	"github.com/njprem/PH_TouristFinder_BackEnd/internal/domain"
)

var php = currency.MustParseISO("PHP")

func (a *App) peso(amount int64) string {
	return a.printer.Sprint(currency.Symbol(php.Amount(amount)))
}

func (a *App) count(n int) string {
	return a.printer.Sprintf("%d", n)
}

func newTable(w io.Writer, header ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	return tw
}

func row(w io.Writer, cells ...string) {
	fmt.Fprintln(w, strings.Join(cells, "\t"))
}

func rating(r float64) string {
	return fmt.Sprintf("%.1f", r)
}

func (a *App) entryFee(d domain.Destination) string {
	switch {
	case d.EntryFee == nil:
		return "-"
	case *d.EntryFee == 0:
		return "Free"
	default:
		return a.peso(*d.EntryFee)
	}
}

func (a *App) renderDestinations(spots []domain.Destination) error {
	tw := newTable(a.out, "ID", "NAME", "CATEGORY", "REGION", "RATING", "REVIEWS", "ENTRY", "FEATURED")
	for _, d := range spots {
		featured := ""
		if d.Featured {
			featured = "yes"
		}
		row(tw, d.ID, d.Name, string(d.Category), d.Region, rating(d.Rating), a.count(d.ReviewCount), a.entryFee(d), featured)
	}
	return tw.Flush()
}

func (a *App) renderAccommodations(stays []domain.Accommodation) error {
	tw := newTable(a.out, "ID", "NAME", "TYPE", "LOCATION", "RATING", "REVIEWS", "PER NIGHT")
	for _, s := range stays {
		price := a.peso(s.PriceRange.Min) + " - " + a.peso(s.PriceRange.Max)
		row(tw, s.ID, s.Name, string(s.Type), s.Location, rating(s.Rating), a.count(s.ReviewCount), price)
	}
	return tw.Flush()
}

func (a *App) renderActivities(acts []domain.Activity) error {
	tw := newTable(a.out, "ID", "NAME", "TYPE", "DIFFICULTY", "DURATION", "RATING", "PRICE")
	for _, act := range acts {
		price := "Free"
		if act.Price > 0 {
			price = a.peso(act.Price)
		}
		row(tw, act.ID, act.Name, string(act.Type), string(act.Difficulty), act.Duration, rating(act.Rating), price)
	}
	return tw.Flush()
}

// showing prints the "Showing 1-12 of 30 destinations" footer.
func (a *App) showing(kind string, count, total, offset int) {
	if count == 0 {
		fmt.Fprintf(a.out, "No %s match your filters.\n", kind)
		return
	}
	fmt.Fprintf(a.out, "Showing %d-%d of %d %s\n", offset+1, offset+count, total, kind)
}
