package catalog

import (
	"context"

	"github.com/google/uuid"
)

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	// FindByID finds a category by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)

	// FindBySlug finds a category by its URL slug
	FindBySlug(ctx context.Context, slug string) (*Category, error)

	// FindAll returns all categories ordered alphabetically by name
	FindAll(ctx context.Context) ([]Category, error)

	// ExistsBySlug checks if a category with the given slug exists
	ExistsBySlug(ctx context.Context, slug string) (bool, error)

	// Save creates or updates a category
	Save(ctx context.Context, category *Category) error
}
