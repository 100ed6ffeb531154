package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	catalogapp "github.com/storefront/backend/internal/application/catalog"
	orderapp "github.com/storefront/backend/internal/application/order"
)

// StatsHandler serves the admin dashboard summary
type StatsHandler struct {
	BaseHandler
	orderService   *orderapp.Service
	productService *catalogapp.ProductService
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(orderService *orderapp.Service, productService *catalogapp.ProductService) *StatsHandler {
	return &StatsHandler{
		orderService:   orderService,
		productService: productService,
	}
}

// DashboardStats is the admin dashboard summary payload
type DashboardStats struct {
	TotalOrders    int64           `json:"totalOrders"`
	PendingOrders  int64           `json:"pendingOrders"`
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	ActiveProducts int64           `json:"activeProducts"`
}

// Stats godoc
// @Summary      Dashboard statistics
// @Description  Order counts, delivered revenue and active product count
// @Tags         admin
// @Produce      json
// @Success      200 {object} dto.Response{data=DashboardStats}
// @Security     BearerAuth
// @Router       /admin/stats [get]
func (h *StatsHandler) Stats(c *gin.Context) {
	orderStats, err := h.orderService.Stats(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	activeProducts, err := h.productService.CountActive(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, DashboardStats{
		TotalOrders:    orderStats.TotalOrders,
		PendingOrders:  orderStats.PendingOrders,
		TotalRevenue:   orderStats.TotalRevenue,
		ActiveProducts: activeProducts,
	})
}
