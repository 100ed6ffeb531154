package order

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/order"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
)

// Notifier delivers new-order notifications to the shop operator
type Notifier interface {
	NotifyNewOrder(ctx context.Context, o *order.Order) error
}

// Service handles checkout and order fulfillment operations
type Service struct {
	orderRepo   order.Repository
	productRepo catalog.ProductRepository
	notifier    Notifier
	logger      *zap.Logger
}

// NewService creates a new order Service
func NewService(
	orderRepo order.Repository,
	productRepo catalog.ProductRepository,
	notifier Notifier,
	logger *zap.Logger,
) *Service {
	return &Service{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// Create places a cash-on-delivery order. Item prices and names are
// snapshotted from the current catalog, the delivery fee is added on top,
// and the operator is notified after the order is stored. A notification
// failure never fails the checkout.
func (s *Service) Create(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	if len(req.Items) == 0 {
		return nil, shared.NewDomainError("INVALID_ITEMS", "Order must contain at least one item")
	}

	productIDs := make([]uuid.UUID, 0, len(req.Items))
	seen := make(map[uuid.UUID]bool, len(req.Items))
	for _, item := range req.Items {
		if !seen[item.ProductID] {
			seen[item.ProductID] = true
			productIDs = append(productIDs, item.ProductID)
		}
	}

	products, err := s.productRepo.FindByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*catalog.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	total := valueobject.ZeroILS()
	type line struct {
		product  *catalog.Product
		quantity int
	}
	lines := make([]line, 0, len(req.Items))
	for _, item := range req.Items {
		product, ok := byID[item.ProductID]
		if !ok {
			return nil, shared.NewDomainError("INVALID_PRODUCT", "Product not found: "+item.ProductID.String())
		}
		if !product.IsOrderable() {
			return nil, shared.NewDomainError("PRODUCT_UNAVAILABLE", "Product is not available: "+product.Name)
		}
		total = total.MustAdd(product.UnitPrice().MultiplyByInt(int64(item.Quantity)))
		lines = append(lines, line{product: product, quantity: item.Quantity})
	}
	total = total.MustAdd(valueobject.NewMoneyILS(order.DeliveryFee))

	o, err := order.NewOrder(req.Order.CustomerName, req.Order.CustomerPhone,
		req.Order.CustomerCity, req.Order.CustomerAddress, req.Order.Notes, total)
	if err != nil {
		return nil, err
	}
	for _, l := range lines {
		if _, err := o.AddItem(l.product.ID, l.product.Name, l.quantity, l.product.UnitPrice()); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}

	s.logger.Info("order placed",
		zap.String("order_id", o.ID.String()),
		zap.Int("items", len(o.Items)),
		zap.String("total", o.TotalAmount.StringFixed(2)))

	s.notify(ctx, o)

	response := ToOrderResponse(o)
	return &response, nil
}

// notify sends the operator notification and records delivery. Errors are
// logged and dropped; there is no retry.
func (s *Service) notify(ctx context.Context, o *order.Order) {
	if err := s.notifier.NotifyNewOrder(ctx, o); err != nil {
		s.logger.Warn("order notification failed",
			zap.String("order_id", o.ID.String()),
			zap.Error(err))
		return
	}
	if err := s.orderRepo.MarkTelegramSent(ctx, o.ID); err != nil {
		s.logger.Warn("failed to record notification delivery",
			zap.String("order_id", o.ID.String()),
			zap.Error(err))
		return
	}
	o.MarkTelegramSent()
}

// List returns a page of orders, newest first. Out-of-range limit and
// offset values fall back to the defaults.
func (s *Service) List(ctx context.Context, limit, offset int) ([]OrderResponse, error) {
	orders, err := s.orderRepo.FindAll(ctx, shared.Filter{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return ToOrderResponses(orders), nil
}

// GetByID returns an order with its items
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToOrderResponse(o)
	return &response, nil
}

// UpdateStatus moves an order to the given fulfillment state. Any valid
// status is accepted from any current status.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*OrderResponse, error) {
	next := order.Status(status)
	if !next.IsValid() {
		return nil, shared.NewDomainError("INVALID_STATUS", "Unknown order status: "+status)
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}

	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("order status changed",
		zap.String("order_id", id.String()),
		zap.String("status", status))

	response := ToOrderResponse(o)
	return &response, nil
}

// Stats aggregates order counts and delivered revenue for the dashboard
func (s *Service) Stats(ctx context.Context) (*StatsResponse, error) {
	stats, err := s.orderRepo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return &StatsResponse{
		TotalOrders:   stats.TotalOrders,
		PendingOrders: stats.PendingOrders,
		TotalRevenue:  stats.TotalRevenue,
	}, nil
}
