package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/njprem/PH_TouristFinder_BackEnd/internal/util"
)

// runDashboard prints the overview. With -q or -category it runs the
// dashboard quick search instead.
func (a *App) runDashboard(ctx context.Context, args []string) error {
	fs := newFlagSet("dashboard", a.out)
	search := fs.String("q", "", "search name and location")
	category := fs.String("category", "", "category (all, beach, mountain, cultural, historical)")
	asJSON := fs.Bool("json", false, "print JSON")
	if err := parseFlags(fs, args, false); err != nil {
		return err
	}

	if strings.TrimSpace(*search) != "" || strings.TrimSpace(*category) != "" {
		spots := a.svc.Dashboard.Search(ctx, *search, *category)
		categories := a.svc.Dashboard.Categories(ctx, *search)
		if *asJSON {
			return a.writeJSON(util.Envelope{"destinations": spots, "categories": categories})
		}
		if err := a.renderDestinations(spots); err != nil {
			return err
		}
		a.showing("destinations", len(spots), len(spots), 0)
		return nil
	}

	stats := a.svc.Dashboard.Stats(ctx)
	if *asJSON {
		return a.writeJSON(util.Data("stats", stats))
	}
	fmt.Fprintf(a.out, "Destinations:    %s\n", a.count(stats.TotalDestinations))
	fmt.Fprintf(a.out, "Accommodations:  %s\n", a.count(stats.TotalAccommodations))
	fmt.Fprintf(a.out, "Activities:      %s\n", a.count(stats.TotalActivities))
	fmt.Fprintf(a.out, "Average rating:  %.1f\n", stats.AverageRating)
	fmt.Fprintf(a.out, "Featured:        %s\n", a.count(stats.FeaturedCount))
	fmt.Fprintln(a.out)

	tw := newTable(a.out, "CATEGORY", "SPOTS")
	for _, c := range stats.Categories {
		row(tw, c.Name, a.count(c.Count))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Top destinations:")
	return a.renderDestinations(stats.TopDestinations)
}
