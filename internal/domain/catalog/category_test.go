package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory(t *testing.T) {
	t.Run("creates category with valid inputs", func(t *testing.T) {
		category, err := NewCategory("Smartphones", "smartphones")
		require.NoError(t, err)
		require.NotNil(t, category)

		assert.Equal(t, "Smartphones", category.Name)
		assert.Equal(t, "smartphones", category.Slug)
		assert.NotEmpty(t, category.ID)
	})

	t.Run("lowercases the slug", func(t *testing.T) {
		category, err := NewCategory("Smartphones", "Smart-Phones")
		require.NoError(t, err)
		assert.Equal(t, "smart-phones", category.Slug)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewCategory("", "smartphones")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name is required")
	})

	t.Run("fails with empty slug", func(t *testing.T) {
		_, err := NewCategory("Smartphones", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "slug is required")
	})

	t.Run("fails with invalid slug characters", func(t *testing.T) {
		_, err := NewCategory("Smartphones", "smart phones!")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "lowercase letters")
	})

	t.Run("fails with name too long", func(t *testing.T) {
		_, err := NewCategory(strings.Repeat("a", 101), "slug")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot exceed 100 characters")
	})
}

func TestCategoryUpdate(t *testing.T) {
	category, err := NewCategory("Smartphones", "smartphones")
	require.NoError(t, err)

	err = category.Update("Phones & Tablets", "phones-tablets", "Mobile devices")
	require.NoError(t, err)
	assert.Equal(t, "Phones & Tablets", category.Name)
	assert.Equal(t, "phones-tablets", category.Slug)
	assert.Equal(t, "Mobile devices", category.Description)
	assert.Equal(t, 2, category.GetVersion())

	err = category.Update("", "slug", "")
	require.Error(t, err)
}

func TestCategoryLocalizedName(t *testing.T) {
	category, err := NewCategory("Smartphones", "smartphones")
	require.NoError(t, err)
	category.SetTranslations("Смартфоны", "סמארטפונים")

	assert.Equal(t, "Смартфоны", category.LocalizedName("ru"))
	assert.Equal(t, "סמארטפונים", category.LocalizedName("he"))
	assert.Equal(t, "Smartphones", category.LocalizedName("en"))
	assert.Equal(t, "Smartphones", category.LocalizedName(""))
}
