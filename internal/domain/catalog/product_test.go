package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
)

func TestNewProduct(t *testing.T) {
	price := valueobject.NewMoneyILS(decimal.NewFromFloat(129.90))

	t.Run("creates product with valid inputs", func(t *testing.T) {
		product, err := NewProduct("Wireless Headphones", "Over-ear, 30h battery", price)
		require.NoError(t, err)
		require.NotNil(t, product)

		assert.Equal(t, "Wireless Headphones", product.Name)
		assert.Equal(t, "Over-ear, 30h battery", product.Description)
		assert.True(t, product.Price.Equal(decimal.NewFromFloat(129.90)))
		assert.True(t, product.IsActive)
		assert.Nil(t, product.CategoryID)
		assert.Nil(t, product.Stock)
		assert.NotEmpty(t, product.ID)
		assert.Equal(t, 1, product.GetVersion())
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewProduct("", "desc", price)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name is required")
	})

	t.Run("fails with empty description", func(t *testing.T) {
		_, err := NewProduct("Name", "   ", price)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "description is required")
	})

	t.Run("fails with zero price", func(t *testing.T) {
		_, err := NewProduct("Name", "desc", valueobject.ZeroILS())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "price must be positive")
	})

	t.Run("fails with negative price", func(t *testing.T) {
		_, err := NewProduct("Name", "desc", valueobject.NewMoneyILS(decimal.NewFromInt(-5)))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "price must be positive")
	})
}

func TestProductUpdate(t *testing.T) {
	product := mustProduct(t)

	t.Run("updates name and description", func(t *testing.T) {
		err := product.Update("New Name", "New description")
		require.NoError(t, err)
		assert.Equal(t, "New Name", product.Name)
		assert.Equal(t, "New description", product.Description)
		assert.Equal(t, 2, product.GetVersion())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		err := product.Update("", "desc")
		require.Error(t, err)
	})
}

func TestProductSetPrice(t *testing.T) {
	product := mustProduct(t)

	err := product.SetPrice(valueobject.NewMoneyILS(decimal.NewFromInt(99)))
	require.NoError(t, err)
	assert.True(t, product.Price.Equal(decimal.NewFromInt(99)))

	err = product.SetPrice(valueobject.ZeroILS())
	require.Error(t, err)
}

func TestProductDeactivate(t *testing.T) {
	product := mustProduct(t)
	require.True(t, product.IsActive)

	product.Deactivate()
	assert.False(t, product.IsActive)

	// deactivation is idempotent: it stands in for deletion
	product.Deactivate()
	assert.False(t, product.IsActive)

	product.Activate()
	assert.True(t, product.IsActive)
}

func TestProductIsOrderable(t *testing.T) {
	t.Run("active product without stock tracking is orderable", func(t *testing.T) {
		product := mustProduct(t)
		assert.True(t, product.IsOrderable())
	})

	t.Run("inactive product is not orderable", func(t *testing.T) {
		product := mustProduct(t)
		product.Deactivate()
		assert.False(t, product.IsOrderable())
	})

	t.Run("zero stock blocks ordering but not viewing", func(t *testing.T) {
		product := mustProduct(t)
		zero := 0
		product.SetStock(&zero)
		assert.False(t, product.IsOrderable())
		assert.True(t, product.IsActive)
	})

	t.Run("positive stock is orderable", func(t *testing.T) {
		product := mustProduct(t)
		ten := 10
		product.SetStock(&ten)
		assert.True(t, product.IsOrderable())
	})
}

func TestProductLocalizedName(t *testing.T) {
	product := mustProduct(t)
	product.SetTranslations("Наушники", "אוזניות", "", "")

	assert.Equal(t, "Наушники", product.LocalizedName("ru"))
	assert.Equal(t, "אוזניות", product.LocalizedName("he"))
	assert.Equal(t, product.Name, product.LocalizedName("en"))

	// missing translation falls back to the default
	assert.Equal(t, product.Description, product.LocalizedDescription("ru"))
}

func TestProductSetCategory(t *testing.T) {
	product := mustProduct(t)
	categoryID := uuid.New()

	product.SetCategory(&categoryID)
	require.NotNil(t, product.CategoryID)
	assert.Equal(t, categoryID, *product.CategoryID)

	product.SetCategory(nil)
	assert.Nil(t, product.CategoryID)
}

func mustProduct(t *testing.T) *Product {
	t.Helper()
	product, err := NewProduct("Wireless Headphones", "Over-ear, 30h battery", valueobject.NewMoneyILS(decimal.NewFromFloat(129.90)))
	require.NoError(t, err)
	return product
}
