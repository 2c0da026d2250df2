package cli

import (
	"context"

	"github.com/njprem/PH_TouristFinder_BackEnd/internal/catalog"
	"github.com/njprem/PH_TouristFinder_BackEnd/internal/util"
)

func (a *App) runDestinations(ctx context.Context, args []string) error {
	f, err := parseListFlags("destinations", keysOf(catalog.DestinationSchema()), args, a.out)
	if err != nil {
		return err
	}
	page := a.svc.Catalog.ListDestinations(ctx, f.query(), f.limit, f.offset)
	if f.json {
		return a.writeJSON(util.List("destinations", page.Items, len(page.Items), page.Total, page.Limit, page.Offset))
	}
	if err := a.renderDestinations(page.Items); err != nil {
		return err
	}
	a.showing("destinations", len(page.Items), page.Total, page.Offset)
	return nil
}

func (a *App) runAccommodations(ctx context.Context, args []string) error {
	f, err := parseListFlags("accommodations", keysOf(catalog.AccommodationSchema()), args, a.out)
	if err != nil {
		return err
	}
	page := a.svc.Catalog.ListAccommodations(ctx, f.query(), f.limit, f.offset)
	if f.json {
		return a.writeJSON(util.List("accommodations", page.Items, len(page.Items), page.Total, page.Limit, page.Offset))
	}
	if err := a.renderAccommodations(page.Items); err != nil {
		return err
	}
	a.showing("accommodations", len(page.Items), page.Total, page.Offset)
	return nil
}

func (a *App) runActivities(ctx context.Context, args []string) error {
	f, err := parseListFlags("activities", keysOf(catalog.ActivitySchema()), args, a.out)
	if err != nil {
		return err
	}
	page := a.svc.Catalog.ListActivities(ctx, f.query(), f.limit, f.offset)
	if f.json {
		return a.writeJSON(util.List("activities", page.Items, len(page.Items), page.Total, page.Limit, page.Offset))
	}
	if err := a.renderActivities(page.Items); err != nil {
		return err
	}
	a.showing("activities", len(page.Items), page.Total, page.Offset)
	return nil
}
