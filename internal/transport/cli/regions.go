package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/njprem/PH_TouristFinder_BackEnd/internal/catalog"
	"github.com/njprem/PH_TouristFinder_BackEnd/internal/util"
)

// runRegions lists the island groups, or with a region argument shows the
// destinations inside it.
func (a *App) runRegions(ctx context.Context, args []string) error {
	var q queryFlags
	fs := newFlagSet("regions", a.out)
	q.register(fs, keysOf(catalog.DestinationSchema()))
	asJSON := fs.Bool("json", false, "print JSON")
	if err := parseFlags(fs, args, true); err != nil {
		return err
	}

	if fs.NArg() == 0 {
		return a.listRegions(ctx, *asJSON)
	}

	region, spots, err := a.svc.Catalog.RegionDestinations(ctx, strings.Join(fs.Args(), " "), q.query())
	if err != nil {
		return a.fail(*asJSON, err)
	}
	if *asJSON {
		return a.writeJSON(util.Envelope{"region": region, "destinations": spots})
	}
	fmt.Fprintf(a.out, "%s\n%s\n\n", region.Name, region.Description)
	if len(region.Provinces) > 0 {
		fmt.Fprintf(a.out, "Provinces: %s\n\n", strings.Join(region.Provinces, ", "))
	}
	if err := a.renderDestinations(spots); err != nil {
		return err
	}
	a.showing("destinations", len(spots), len(spots), 0)
	return nil
}

func (a *App) listRegions(ctx context.Context, asJSON bool) error {
	regions := a.svc.Catalog.Regions(ctx)
	if asJSON {
		return a.writeJSON(util.Data("regions", regions))
	}
	tw := newTable(a.out, "ID", "REGION", "SPOTS", "POPULAR")
	for _, r := range regions {
		_, spots, err := a.svc.Catalog.RegionDestinations(ctx, r.ID, catalog.Query{})
		if err != nil {
			return err
		}
		row(tw, r.ID, r.Name, a.count(len(spots)), strings.Join(r.PopularDestinations, ", "))
	}
	return tw.Flush()
}
