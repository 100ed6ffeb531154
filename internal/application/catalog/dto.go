package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/catalog"
)

// CreateCategoryRequest represents a request to create a category
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	NameRu      string `json:"nameRu" binding:"max=100"`
	NameHe      string `json:"nameHe" binding:"max=100"`
	Slug        string `json:"slug" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"max=2000"`
}

// UpdateCategoryRequest represents a partial category update
type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	NameRu      *string `json:"nameRu" binding:"omitempty,max=100"`
	NameHe      *string `json:"nameHe" binding:"omitempty,max=100"`
	Slug        *string `json:"slug" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
}

// CategoryResponse represents a category in API responses. DisplayName is
// filled by Localize for storefront reads and stays empty on admin writes.
type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	NameRu      string    `json:"nameRu,omitempty"`
	NameHe      string    `json:"nameHe,omitempty"`
	DisplayName string    `json:"displayName,omitempty"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateProductRequest represents a request to create a product
type CreateProductRequest struct {
	Name          string          `json:"name" binding:"required,min=1,max=200"`
	NameRu        string          `json:"nameRu" binding:"max=200"`
	NameHe        string          `json:"nameHe" binding:"max=200"`
	Description   string          `json:"description" binding:"required,max=5000"`
	DescriptionRu string          `json:"descriptionRu" binding:"max=5000"`
	DescriptionHe string          `json:"descriptionHe" binding:"max=5000"`
	Price         decimal.Decimal `json:"price" binding:"required"`
	CategoryID    *uuid.UUID      `json:"categoryId"`
	Brand         string          `json:"brand" binding:"max=100"`
	ImageURL      string          `json:"imageUrl" binding:"omitempty,url"`
	ImageURLs     []string        `json:"imageUrls" binding:"omitempty,dive,url"`
	Stock         *int            `json:"stock" binding:"omitempty,min=0"`
}

// UpdateProductRequest represents a partial product update. Nil fields keep
// their current value.
type UpdateProductRequest struct {
	Name          *string          `json:"name" binding:"omitempty,min=1,max=200"`
	NameRu        *string          `json:"nameRu" binding:"omitempty,max=200"`
	NameHe        *string          `json:"nameHe" binding:"omitempty,max=200"`
	Description   *string          `json:"description" binding:"omitempty,max=5000"`
	DescriptionRu *string          `json:"descriptionRu" binding:"omitempty,max=5000"`
	DescriptionHe *string          `json:"descriptionHe" binding:"omitempty,max=5000"`
	Price         *decimal.Decimal `json:"price"`
	CategoryID    *uuid.UUID       `json:"categoryId"`
	Brand         *string          `json:"brand" binding:"omitempty,max=100"`
	ImageURL      *string          `json:"imageUrl" binding:"omitempty,url"`
	ImageURLs     []string         `json:"imageUrls" binding:"omitempty,dive,url"`
	Stock         *int             `json:"stock" binding:"omitempty,min=0"`
	IsActive      *bool            `json:"isActive"`
}

// ProductListFilter represents query options for listing storefront products
type ProductListFilter struct {
	CategoryID *uuid.UUID `form:"categoryId"`
	Search     string     `form:"search"`
	Limit      int        `form:"limit"`
	Offset     int        `form:"offset"`
}

// ProductResponse represents a product in API responses. The Display*
// fields are filled by Localize for storefront reads.
type ProductResponse struct {
	ID                 uuid.UUID         `json:"id"`
	Name               string            `json:"name"`
	NameRu             string            `json:"nameRu,omitempty"`
	NameHe             string            `json:"nameHe,omitempty"`
	DisplayName        string            `json:"displayName,omitempty"`
	Description        string            `json:"description"`
	DescriptionRu      string            `json:"descriptionRu,omitempty"`
	DescriptionHe      string            `json:"descriptionHe,omitempty"`
	DisplayDescription string            `json:"displayDescription,omitempty"`
	Price              decimal.Decimal   `json:"price"`
	CategoryID         *uuid.UUID        `json:"categoryId"`
	Category           *CategoryResponse `json:"category,omitempty"`
	Brand              string            `json:"brand,omitempty"`
	ImageURL           string            `json:"imageUrl,omitempty"`
	ImageURLs          []string          `json:"imageUrls,omitempty"`
	Stock              *int              `json:"stock,omitempty"`
	IsActive           bool              `json:"isActive"`
	CreatedAt          time.Time         `json:"createdAt"`
	UpdatedAt          time.Time         `json:"updatedAt"`
}

// ToCategoryResponse converts a domain Category to CategoryResponse
func ToCategoryResponse(c *catalog.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		NameRu:      c.NameRu,
		NameHe:      c.NameHe,
		Slug:        c.Slug,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToCategoryResponses converts a slice of categories
func ToCategoryResponses(categories []catalog.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = ToCategoryResponse(&categories[i])
	}
	return responses
}

// ToProductResponse converts a domain Product to ProductResponse. The
// category is attached when the repository loaded it.
func ToProductResponse(p *catalog.Product) ProductResponse {
	var category *CategoryResponse
	if p.Category != nil {
		c := ToCategoryResponse(p.Category)
		category = &c
	}
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		NameRu:        p.NameRu,
		NameHe:        p.NameHe,
		Description:   p.Description,
		DescriptionRu: p.DescriptionRu,
		DescriptionHe: p.DescriptionHe,
		Price:         p.Price,
		CategoryID:    p.CategoryID,
		Category:      category,
		Brand:         p.Brand,
		ImageURL:      p.ImageURL,
		ImageURLs:     p.ImageURLs,
		Stock:         p.Stock,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// ToProductResponses converts a slice of products
func ToProductResponses(products []catalog.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses
}
