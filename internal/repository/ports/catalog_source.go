package ports

import (
	"context"

	"github.com/njprem/PH_TouristFinder_BackEnd/internal/domain"
)

// CatalogSource loads the full read-only catalog.
type CatalogSource interface {
	Load(ctx context.Context) (*domain.Dataset, error)
}
