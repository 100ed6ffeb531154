package order

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storefront/backend/internal/domain/shared"
)

// Stats summarizes the order book for the admin dashboard. Revenue counts
// delivered orders only.
type Stats struct {
	TotalOrders   int64
	PendingOrders int64
	TotalRevenue  decimal.Decimal
}

// Repository defines the interface for order persistence
type Repository interface {
	// FindByID finds an order with its items
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindAll returns orders with their items, newest first
	FindAll(ctx context.Context, filter shared.Filter) ([]Order, error)

	// Save persists the order and all of its items in one transaction
	Save(ctx context.Context, o *Order) error

	// UpdateStatus overwrites the status of an existing order
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error

	// MarkTelegramSent flags the order notification as delivered
	MarkTelegramSent(ctx context.Context, id uuid.UUID) error

	// Stats aggregates order counts and delivered revenue
	Stats(ctx context.Context) (*Stats, error)
}
