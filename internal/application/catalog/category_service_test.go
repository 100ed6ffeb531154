package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
)

func buildCategory(t *testing.T, name, slug string) *catalog.Category {
	t.Helper()
	c, err := catalog.NewCategory(name, slug)
	require.NoError(t, err)
	return c
}

func TestCategoryService_List(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	service := NewCategoryService(categoryRepo)

	categories := []catalog.Category{
		*buildCategory(t, "Home", "home"),
		*buildCategory(t, "Kitchen", "kitchen"),
	}
	categoryRepo.On("FindAll", mock.Anything).Return(categories, nil)

	result, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "home", result[0].Slug)
}

func TestCategoryService_GetBySlug(t *testing.T) {
	t.Run("returns category", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		service := NewCategoryService(categoryRepo)

		category := buildCategory(t, "Home", "home")
		categoryRepo.On("FindBySlug", mock.Anything, "home").Return(category, nil)

		result, err := service.GetBySlug(context.Background(), "home")
		require.NoError(t, err)
		assert.Equal(t, "Home", result.Name)
	})

	t.Run("propagates not found", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		service := NewCategoryService(categoryRepo)

		categoryRepo.On("FindBySlug", mock.Anything, "missing").Return(nil, shared.ErrNotFound)

		_, err := service.GetBySlug(context.Background(), "missing")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestCategoryService_Create(t *testing.T) {
	t.Run("creates category with normalized slug", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		service := NewCategoryService(categoryRepo)

		categoryRepo.On("ExistsBySlug", mock.Anything, "home-decor").Return(false, nil)
		categoryRepo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Category")).Return(nil)

		result, err := service.Create(context.Background(), CreateCategoryRequest{
			Name:        "Home Decor",
			NameRu:      "Декор",
			Slug:        "  Home-Decor  ",
			Description: "Things for the home",
		})
		require.NoError(t, err)
		assert.Equal(t, "home-decor", result.Slug)
		assert.Equal(t, "Декор", result.NameRu)
		assert.Equal(t, "Things for the home", result.Description)

		categoryRepo.AssertExpectations(t)
	})

	t.Run("rejects duplicate slug", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		service := NewCategoryService(categoryRepo)

		categoryRepo.On("ExistsBySlug", mock.Anything, "home").Return(true, nil)

		_, err := service.Create(context.Background(), CreateCategoryRequest{
			Name: "Home",
			Slug: "home",
		})
		require.ErrorIs(t, err, shared.ErrAlreadyExists)
		categoryRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects invalid slug format", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		service := NewCategoryService(categoryRepo)

		categoryRepo.On("ExistsBySlug", mock.Anything, "home decor!").Return(false, nil)

		_, err := service.Create(context.Background(), CreateCategoryRequest{
			Name: "Home",
			Slug: "home decor!",
		})
		assert.Error(t, err)
	})
}

func TestCategoryService_Update(t *testing.T) {
	t.Run("changes slug after uniqueness check", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		service := NewCategoryService(categoryRepo)

		existing := buildCategory(t, "Home", "home")
		categoryRepo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)
		categoryRepo.On("ExistsBySlug", mock.Anything, "household").Return(false, nil)
		categoryRepo.On("Save", mock.Anything, existing).Return(nil)

		slug := "household"
		result, err := service.Update(context.Background(), existing.ID, UpdateCategoryRequest{Slug: &slug})
		require.NoError(t, err)
		assert.Equal(t, "household", result.Slug)
		assert.Equal(t, "Home", result.Name)
	})

	t.Run("keeping the same slug skips uniqueness check", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		service := NewCategoryService(categoryRepo)

		existing := buildCategory(t, "Home", "home")
		categoryRepo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)
		categoryRepo.On("Save", mock.Anything, existing).Return(nil)

		name := "Home & Living"
		_, err := service.Update(context.Background(), existing.ID, UpdateCategoryRequest{Name: &name})
		require.NoError(t, err)

		categoryRepo.AssertNotCalled(t, "ExistsBySlug", mock.Anything, mock.Anything)
	})

	t.Run("rejects slug taken by another category", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		service := NewCategoryService(categoryRepo)

		existing := buildCategory(t, "Home", "home")
		categoryRepo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)
		categoryRepo.On("ExistsBySlug", mock.Anything, "kitchen").Return(true, nil)

		slug := "kitchen"
		_, err := service.Update(context.Background(), existing.ID, UpdateCategoryRequest{Slug: &slug})
		require.ErrorIs(t, err, shared.ErrAlreadyExists)
	})
}
