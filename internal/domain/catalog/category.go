package catalog

import (
	"regexp"
	"strings"
	"time"

	"github.com/storefront/backend/internal/domain/shared"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Category represents a product category in the storefront catalog.
// Categories are never physically deleted; historical orders may reference
// products that point at them.
type Category struct {
	shared.BaseAggregateRoot
	Name        string `gorm:"type:varchar(100);not null"`
	NameRu      string `gorm:"type:varchar(100)"`
	NameHe      string `gorm:"type:varchar(100)"`
	Slug        string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// NewCategory creates a new category
func NewCategory(name, slug string) (*Category, error) {
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}
	if err := validateSlug(slug); err != nil {
		return nil, err
	}

	return &Category{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Slug:              strings.ToLower(slug),
	}, nil
}

// Update updates the category's basic information
func (c *Category) Update(name, slug, description string) error {
	if err := validateCategoryName(name); err != nil {
		return err
	}
	if err := validateSlug(slug); err != nil {
		return err
	}

	c.Name = name
	c.Slug = strings.ToLower(slug)
	c.Description = description
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetTranslations sets the localized name variants
func (c *Category) SetTranslations(nameRu, nameHe string) {
	c.NameRu = nameRu
	c.NameHe = nameHe
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// LocalizedName returns the category name for the given language tag,
// falling back to the default name when no translation exists.
func (c *Category) LocalizedName(lang string) string {
	switch lang {
	case "ru":
		if c.NameRu != "" {
			return c.NameRu
		}
	case "he":
		if c.NameHe != "" {
			return c.NameHe
		}
	}
	return c.Name
}

func validateCategoryName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_CATEGORY_NAME", "Category name is required")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_CATEGORY_NAME", "Category name cannot exceed 100 characters")
	}
	return nil
}

func validateSlug(slug string) error {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return shared.NewDomainError("INVALID_SLUG", "Category slug is required")
	}
	if len(slug) > 100 {
		return shared.NewDomainError("INVALID_SLUG", "Category slug cannot exceed 100 characters")
	}
	if !slugPattern.MatchString(slug) {
		return shared.NewDomainError("INVALID_SLUG", "Category slug must contain only lowercase letters, digits and hyphens")
	}
	return nil
}
