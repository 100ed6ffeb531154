package router

import (
	"github.com/gin-gonic/gin"

	"github.com/storefront/backend/internal/interfaces/http/handler"
)

// Handlers bundles everything the route table needs
type Handlers struct {
	System   *handler.SystemHandler
	Auth     *handler.AuthHandler
	Category *handler.CategoryHandler
	Product  *handler.ProductHandler
	Order    *handler.OrderHandler
	Stats    *handler.StatsHandler
}

// Setup registers all storefront and admin routes. adminAuth guards
// everything under /api/admin; the rest of the API is public.
func Setup(engine *gin.Engine, h Handlers, adminAuth gin.HandlerFunc) {
	engine.GET("/health", h.System.Health)

	api := engine.Group("/api")

	// public storefront API
	api.GET("/categories", h.Category.List)
	api.GET("/categories/:slug", h.Category.GetBySlug)
	api.GET("/products", h.Product.List)
	api.GET("/products/featured", h.Product.Featured)
	api.GET("/products/:id", h.Product.GetByID)
	api.POST("/orders", h.Order.Create)
	api.POST("/auth/login", h.Auth.Login)

	// admin panel API
	admin := api.Group("/admin", adminAuth)
	admin.GET("/stats", h.Stats.Stats)
	admin.GET("/orders", h.Order.List)
	admin.GET("/orders/:id", h.Order.GetByID)
	admin.PATCH("/orders/:id/status", h.Order.UpdateStatus)
	admin.GET("/products", h.Product.ListAll)
	admin.POST("/products", h.Product.Create)
	admin.PUT("/products/:id", h.Product.Update)
	admin.DELETE("/products/:id", h.Product.Delete)
	admin.POST("/categories", h.Category.Create)
	admin.PUT("/categories/:id", h.Category.Update)
}
