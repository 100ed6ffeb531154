package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/order"
)

// OrderItemRequest is one line of a checkout request
type OrderItemRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// OrderDetailsRequest carries the customer fields of a checkout
type OrderDetailsRequest struct {
	CustomerName    string `json:"customerName" binding:"required,min=1,max=100"`
	CustomerPhone   string `json:"customerPhone" binding:"required,min=3,max=30"`
	CustomerCity    string `json:"customerCity" binding:"required,min=1,max=100"`
	CustomerAddress string `json:"customerAddress" binding:"required,min=1,max=500"`
	Notes           string `json:"notes" binding:"max=2000"`
}

// CreateOrderRequest represents a storefront checkout: customer details
// nested under "order" plus the cart lines
type CreateOrderRequest struct {
	Order OrderDetailsRequest `json:"order" binding:"required"`
	Items []OrderItemRequest  `json:"items" binding:"required,min=1,dive"`
}

// OrderListFilter represents pagination options for the admin order list
type OrderListFilter struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

// UpdateStatusRequest changes the fulfillment state of an order
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderItemResponse represents an order line in API responses
type OrderItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID              uuid.UUID           `json:"id"`
	CustomerName    string              `json:"customerName"`
	CustomerPhone   string              `json:"customerPhone"`
	CustomerCity    string              `json:"customerCity"`
	CustomerAddress string              `json:"customerAddress"`
	Notes           string              `json:"notes,omitempty"`
	Status          string              `json:"status"`
	TotalAmount     decimal.Decimal     `json:"totalAmount"`
	TelegramSent    bool                `json:"telegramSent"`
	Items           []OrderItemResponse `json:"items"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}

// StatsResponse is the admin dashboard summary
type StatsResponse struct {
	TotalOrders   int64           `json:"totalOrders"`
	PendingOrders int64           `json:"pendingOrders"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
}

// ToOrderResponse converts a domain Order to OrderResponse
func ToOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
		}
	}
	return OrderResponse{
		ID:              o.ID,
		CustomerName:    o.CustomerName,
		CustomerPhone:   o.CustomerPhone,
		CustomerCity:    o.CustomerCity,
		CustomerAddress: o.CustomerAddress,
		Notes:           o.Notes,
		Status:          o.Status.String(),
		TotalAmount:     o.TotalAmount,
		TelegramSent:    o.TelegramSent,
		Items:           items,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

// ToOrderResponses converts a slice of orders
func ToOrderResponses(orders []order.Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderResponse(&orders[i])
	}
	return responses
}
