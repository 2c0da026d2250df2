package service

import (
	"context"
	"math"

	"github.com/njprem/PH_TouristFinder_BackEnd/internal/catalog"
	"github.com/njprem/PH_TouristFinder_BackEnd/internal/domain"
)

const defaultTopDestinations = 5

// dashboardCategories is the category dropdown on the dashboard, in order.
var dashboardCategories = []domain.CategoryCount{
	{Name: "All", Value: catalog.All},
	{Name: "Beaches", Value: string(domain.DestinationCategoryBeach)},
	{Name: "Mountains", Value: string(domain.DestinationCategoryMountain)},
	{Name: "Cultural", Value: string(domain.DestinationCategoryCultural)},
	{Name: "Historical", Value: string(domain.DestinationCategoryHistorical)},
}

type DashboardService struct {
	catalog *CatalogService
	schema  catalog.Schema[domain.Destination]
	topN    int
}

func NewDashboardService(catalogSvc *CatalogService, topN int) *DashboardService {
	if topN <= 0 {
		topN = defaultTopDestinations
	}
	return &DashboardService{
		catalog: catalogSvc,
		schema:  catalog.DashboardSchema(),
		topN:    topN,
	}
}

func (s *DashboardService) Stats(ctx context.Context) domain.DashboardStats {
	ds := s.catalog.Dataset()
	spots := ds.Destinations

	var ratingSum float64
	featured := 0
	for _, spot := range spots {
		ratingSum += spot.Rating
		if spot.Featured {
			featured++
		}
	}
	var avg float64
	if len(spots) > 0 {
		avg = math.Round(ratingSum/float64(len(spots))*10) / 10
	}

	top := evaluate(s.catalog, ctx, spots, s.schema, catalog.NewQuery("", catalog.SortRating))
	if len(top) > s.topN {
		top = top[:s.topN]
	}

	return domain.DashboardStats{
		TotalDestinations:   len(spots),
		TotalAccommodations: len(ds.Accommodations),
		TotalActivities:     len(ds.Activities),
		AverageRating:       avg,
		FeaturedCount:       featured,
		Categories:          s.Categories(ctx, ""),
		TopDestinations:     top,
	}
}

// Categories counts the destinations each dropdown entry would show for the
// given search text.
func (s *DashboardService) Categories(ctx context.Context, search string) []domain.CategoryCount {
	values := make([]string, len(dashboardCategories))
	for i, c := range dashboardCategories {
		values[i] = c.Value
	}
	counts := catalog.Facets(s.catalog.Dataset().Destinations, s.schema, catalog.NewQuery(search, ""), catalog.FieldCategory, values)

	out := make([]domain.CategoryCount, len(dashboardCategories))
	for i, c := range dashboardCategories {
		c.Count = counts[c.Value]
		out[i] = c
	}
	return out
}

// Search is the dashboard's quick search: name and location only, with an
// optional category. Results keep dataset order.
func (s *DashboardService) Search(ctx context.Context, search, category string) []domain.Destination {
	q := catalog.NewQuery(search, "", catalog.Filter{Field: catalog.FieldCategory, Value: category})
	return evaluate(s.catalog, ctx, s.catalog.Dataset().Destinations, s.withoutSort(), q)
}

func (s *DashboardService) withoutSort() catalog.Schema[domain.Destination] {
	schema := s.schema
	schema.DefaultSort = ""
	return schema
}
