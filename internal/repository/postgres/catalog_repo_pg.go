package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/njprem/PH_TouristFinder_BackEnd/internal/domain"
)

// CatalogRepository reads the catalog tables. It never writes.
type CatalogRepository struct {
	db *sqlx.DB
}

func NewCatalogRepo(db *sqlx.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

type touristSpotRow struct {
	ID              string         `db:"id"`
	Name            string         `db:"name"`
	Description     string         `db:"description"`
	Location        string         `db:"location"`
	Region          string         `db:"region"`
	Province        string         `db:"province"`
	Category        string         `db:"category"`
	Images          pq.StringArray `db:"images"`
	Rating          float64        `db:"rating"`
	ReviewCount     int            `db:"review_count"`
	BestTimeToVisit string         `db:"best_time_to_visit"`
	EntryFee        sql.NullInt64  `db:"entry_fee"`
	Activities      pq.StringArray `db:"activities"`
	Latitude        float64        `db:"latitude"`
	Longitude       float64        `db:"longitude"`
	Featured        bool           `db:"featured"`
}

type accommodationRow struct {
	ID             string         `db:"id"`
	Name           string         `db:"name"`
	Type           string         `db:"type"`
	Description    string         `db:"description"`
	Location       string         `db:"location"`
	Images         pq.StringArray `db:"images"`
	Rating         float64        `db:"rating"`
	ReviewCount    int            `db:"review_count"`
	PriceMin       int64          `db:"price_min"`
	PriceMax       int64          `db:"price_max"`
	Amenities      pq.StringArray `db:"amenities"`
	ContactPhone   string         `db:"contact_phone"`
	ContactEmail   string         `db:"contact_email"`
	ContactWebsite sql.NullString `db:"contact_website"`
	Latitude       float64        `db:"latitude"`
	Longitude      float64        `db:"longitude"`
}

type activityRow struct {
	ID           string         `db:"id"`
	Name         string         `db:"name"`
	Description  string         `db:"description"`
	Type         string         `db:"type"`
	Location     string         `db:"location"`
	Duration     string         `db:"duration"`
	Difficulty   string         `db:"difficulty"`
	Price        int64          `db:"price"`
	Images       pq.StringArray `db:"images"`
	Rating       float64        `db:"rating"`
	ReviewCount  int            `db:"review_count"`
	Includes     pq.StringArray `db:"includes"`
	Requirements pq.StringArray `db:"requirements"`
}

type regionRow struct {
	ID                  string         `db:"id"`
	Name                string         `db:"name"`
	Description         string         `db:"description"`
	Image               string         `db:"image"`
	Provinces           pq.StringArray `db:"provinces"`
	PopularDestinations pq.StringArray `db:"popular_destinations"`
	Members             pq.StringArray `db:"members"`
}

// Load reads every catalog table in display order.
func (r *CatalogRepository) Load(ctx context.Context) (*domain.Dataset, error) {
	spots, err := r.ListTouristSpots(ctx)
	if err != nil {
		return nil, err
	}
	stays, err := r.ListAccommodations(ctx)
	if err != nil {
		return nil, err
	}
	acts, err := r.ListActivities(ctx)
	if err != nil {
		return nil, err
	}
	regions, err := r.ListRegions(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.Dataset{
		Destinations:   spots,
		Accommodations: stays,
		Activities:     acts,
		Regions:        regions,
	}, nil
}

func (r *CatalogRepository) ListTouristSpots(ctx context.Context) ([]domain.Destination, error) {
	const query = `
		SELECT id, name, description, location, region, province, category,
		       images, rating, review_count, best_time_to_visit, entry_fee,
		       activities, latitude, longitude, featured
		FROM tourist_spot
		ORDER BY position, id
	`
	var rows []touristSpotRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list tourist spots: %w", err)
	}
	out := make([]domain.Destination, 0, len(rows))
	for _, row := range rows {
		dest := domain.Destination{
			ID:              row.ID,
			Name:            row.Name,
			Description:     row.Description,
			Location:        row.Location,
			Region:          row.Region,
			Province:        row.Province,
			Category:        domain.DestinationCategory(row.Category),
			Images:          stringsOrEmpty(row.Images),
			Rating:          row.Rating,
			ReviewCount:     row.ReviewCount,
			BestTimeToVisit: row.BestTimeToVisit,
			Activities:      stringsOrEmpty(row.Activities),
			Coordinates:     domain.Coordinates{Lat: row.Latitude, Lng: row.Longitude},
			Featured:        row.Featured,
		}
		if row.EntryFee.Valid {
			fee := row.EntryFee.Int64
			dest.EntryFee = &fee
		}
		out = append(out, dest)
	}
	return out, nil
}

func (r *CatalogRepository) ListAccommodations(ctx context.Context) ([]domain.Accommodation, error) {
	const query = `
		SELECT id, name, type, description, location, images, rating, review_count,
		       price_min, price_max, amenities, contact_phone, contact_email,
		       contact_website, latitude, longitude
		FROM accommodation
		ORDER BY position, id
	`
	var rows []accommodationRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list accommodations: %w", err)
	}
	out := make([]domain.Accommodation, 0, len(rows))
	for _, row := range rows {
		acc := domain.Accommodation{
			ID:          row.ID,
			Name:        row.Name,
			Type:        domain.AccommodationType(row.Type),
			Description: row.Description,
			Location:    row.Location,
			Images:      stringsOrEmpty(row.Images),
			Rating:      row.Rating,
			ReviewCount: row.ReviewCount,
			PriceRange:  domain.PriceRange{Min: row.PriceMin, Max: row.PriceMax},
			Amenities:   stringsOrEmpty(row.Amenities),
			ContactInfo: domain.ContactInfo{Phone: row.ContactPhone, Email: row.ContactEmail},
			Coordinates: domain.Coordinates{Lat: row.Latitude, Lng: row.Longitude},
		}
		if row.ContactWebsite.Valid {
			site := row.ContactWebsite.String
			acc.ContactInfo.Website = &site
		}
		out = append(out, acc)
	}
	return out, nil
}

func (r *CatalogRepository) ListActivities(ctx context.Context) ([]domain.Activity, error) {
	const query = `
		SELECT id, name, description, type, location, duration, difficulty, price,
		       images, rating, review_count, includes, requirements
		FROM activity
		ORDER BY position, id
	`
	var rows []activityRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	out := make([]domain.Activity, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.Activity{
			ID:           row.ID,
			Name:         row.Name,
			Description:  row.Description,
			Type:         domain.ActivityType(row.Type),
			Location:     row.Location,
			Duration:     row.Duration,
			Difficulty:   domain.ActivityDifficulty(row.Difficulty),
			Price:        row.Price,
			Images:       stringsOrEmpty(row.Images),
			Rating:       row.Rating,
			ReviewCount:  row.ReviewCount,
			Includes:     stringsOrEmpty(row.Includes),
			Requirements: stringsOrEmpty(row.Requirements),
		})
	}
	return out, nil
}

func (r *CatalogRepository) ListRegions(ctx context.Context) ([]domain.Region, error) {
	const query = `
		SELECT id, name, description, image, provinces, popular_destinations, members
		FROM region
		ORDER BY position, id
	`
	var rows []regionRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list regions: %w", err)
	}
	out := make([]domain.Region, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.Region{
			ID:                  row.ID,
			Name:                row.Name,
			Description:         row.Description,
			Image:               row.Image,
			Provinces:           stringsOrEmpty(row.Provinces),
			PopularDestinations: stringsOrEmpty(row.PopularDestinations),
			Members:             stringsOrEmpty(row.Members),
		})
	}
	return out, nil
}

func stringsOrEmpty(arr pq.StringArray) []string {
	if len(arr) == 0 {
		return []string{}
	}
	return []string(arr)
}
