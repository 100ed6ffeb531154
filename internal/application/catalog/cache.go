package catalog

import (
	"context"
	"fmt"

	"github.com/storefront/backend/internal/domain/catalog"
)

// ProductCache is a read-through cache for storefront product listings.
// Implementations must treat failures as misses; the catalog always has the
// database as its source of truth.
type ProductCache interface {
	// GetList returns the cached listing for the key and whether it was found
	GetList(ctx context.Context, key string) ([]catalog.Product, bool)

	// SetList stores a listing under the key
	SetList(ctx context.Context, key string, products []catalog.Product)

	// Invalidate drops all cached listings
	Invalidate(ctx context.Context)
}

// listCacheKey derives a cache key from the listing filter. Every distinct
// combination of query parameters gets its own entry.
func listCacheKey(filter catalog.ProductFilter) string {
	category := ""
	if filter.CategoryID != nil {
		category = filter.CategoryID.String()
	}
	return fmt.Sprintf("list:%s:%s:%d:%d", category, filter.Search, filter.Limit, filter.Offset)
}

// featuredCacheKey derives the cache key for the featured products strip.
// Callers that take the default size share one entry under limit zero.
func featuredCacheKey(limit int) string {
	return fmt.Sprintf("featured:%d", limit)
}
