package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
)

// Product represents a sellable item in the storefront catalog.
// It is the aggregate root for product-related operations.
//
// Stock is a pointer: nil means stock is not tracked for this product.
// A tracked product with stock <= 0 stays viewable but cannot be ordered.
type Product struct {
	shared.BaseAggregateRoot
	Name          string          `gorm:"type:varchar(200);not null"`
	NameRu        string          `gorm:"type:varchar(200)"`
	NameHe        string          `gorm:"type:varchar(200)"`
	Description   string          `gorm:"type:text;not null"`
	DescriptionRu string          `gorm:"type:text"`
	DescriptionHe string          `gorm:"type:text"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CategoryID    *uuid.UUID      `gorm:"type:uuid;index"`
	Category      *Category       `gorm:"foreignKey:CategoryID"`
	Brand         string          `gorm:"type:varchar(100)"`
	ImageURL      string          `gorm:"type:text"`
	ImageURLs     []string        `gorm:"serializer:json;type:text"`
	Stock         *int            `gorm:""`
	IsActive      bool            `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new active product
func NewProduct(name, description string, price valueobject.Money) (*Product, error) {
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if err := validateProductDescription(description); err != nil {
		return nil, err
	}
	if err := validateProductPrice(price.Amount()); err != nil {
		return nil, err
	}

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Description:       description,
		Price:             price.Amount(),
		IsActive:          true,
	}, nil
}

// Update updates the product's basic information
func (p *Product) Update(name, description string) error {
	if err := validateProductName(name); err != nil {
		return err
	}
	if err := validateProductDescription(description); err != nil {
		return err
	}

	p.Name = name
	p.Description = description
	p.touch()

	return nil
}

// SetTranslations sets the localized name and description variants
func (p *Product) SetTranslations(nameRu, nameHe, descriptionRu, descriptionHe string) {
	p.NameRu = nameRu
	p.NameHe = nameHe
	p.DescriptionRu = descriptionRu
	p.DescriptionHe = descriptionHe
	p.touch()
}

// SetPrice updates the selling price
func (p *Product) SetPrice(price valueobject.Money) error {
	if err := validateProductPrice(price.Amount()); err != nil {
		return err
	}

	p.Price = price.Amount()
	p.touch()

	return nil
}

// SetCategory sets the product category
func (p *Product) SetCategory(categoryID *uuid.UUID) {
	p.CategoryID = categoryID
	p.touch()
}

// SetBrand sets the product brand
func (p *Product) SetBrand(brand string) {
	p.Brand = brand
	p.touch()
}

// SetImages sets the primary image URL and the gallery
func (p *Product) SetImages(imageURL string, imageURLs []string) {
	p.ImageURL = imageURL
	p.ImageURLs = imageURLs
	p.touch()
}

// SetStock sets the tracked stock count; nil disables stock tracking
func (p *Product) SetStock(stock *int) {
	p.Stock = stock
	p.touch()
}

// Activate makes the product visible and orderable again
func (p *Product) Activate() {
	p.IsActive = true
	p.touch()
}

// Deactivate is the storefront's delete: the row stays so historical order
// items keep a valid product reference.
func (p *Product) Deactivate() {
	p.IsActive = false
	p.touch()
}

// IsOrderable reports whether the product can be placed in a new order
func (p *Product) IsOrderable() bool {
	if !p.IsActive {
		return false
	}
	if p.Stock != nil && *p.Stock <= 0 {
		return false
	}
	return true
}

// UnitPrice returns the price as a Money value in the store currency
func (p *Product) UnitPrice() valueobject.Money {
	return valueobject.NewMoneyILS(p.Price)
}

// LocalizedName returns the product name for the given language tag,
// falling back to the default name when no translation exists.
func (p *Product) LocalizedName(lang string) string {
	switch lang {
	case "ru":
		if p.NameRu != "" {
			return p.NameRu
		}
	case "he":
		if p.NameHe != "" {
			return p.NameHe
		}
	}
	return p.Name
}

// LocalizedDescription returns the description for the given language tag
func (p *Product) LocalizedDescription(lang string) string {
	switch lang {
	case "ru":
		if p.DescriptionRu != "" {
			return p.DescriptionRu
		}
	case "he":
		if p.DescriptionHe != "" {
			return p.DescriptionHe
		}
	}
	return p.Description
}

func (p *Product) touch() {
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

func validateProductName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name is required")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}

func validateProductDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return shared.NewDomainError("INVALID_PRODUCT_DESCRIPTION", "Product description is required")
	}
	return nil
}

func validateProductPrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return shared.NewDomainError("INVALID_PRICE", "Product price must be positive")
	}
	return nil
}
