package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// ProductFilter narrows storefront product listings. Zero values mean
// "no constraint"; Limit and Offset clamp to defaults via shared.Filter.
type ProductFilter struct {
	CategoryID *uuid.UUID
	Search     string
	Limit      int
	Offset     int
}

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a product by its ID regardless of the active flag
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindByIDs finds multiple products by their IDs
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Product, error)

	// FindActive finds active products matching the filter, newest first
	FindActive(ctx context.Context, filter ProductFilter) ([]Product, error)

	// FindFeatured returns the most recently created active products
	FindFeatured(ctx context.Context, limit int) ([]Product, error)

	// FindAll finds all products matching the filter, active or not
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error

	// CountActive counts active products
	CountActive(ctx context.Context) (int64, error)
}
