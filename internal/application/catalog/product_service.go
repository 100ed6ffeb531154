package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
)

// ProductService handles product business operations for both the public
// storefront and the admin panel
type ProductService struct {
	productRepo  catalog.ProductRepository
	categoryRepo catalog.CategoryRepository
	cache        ProductCache
}

// NewProductService creates a new ProductService
func NewProductService(
	productRepo catalog.ProductRepository,
	categoryRepo catalog.CategoryRepository,
	cache ProductCache,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		cache:        cache,
	}
}

// ListActive returns active products matching the storefront filter,
// newest first
func (s *ProductService) ListActive(ctx context.Context, filter ProductListFilter) ([]ProductResponse, error) {
	domainFilter := catalog.ProductFilter{
		CategoryID: filter.CategoryID,
		Search:     filter.Search,
		Limit:      filter.Limit,
		Offset:     filter.Offset,
	}

	key := listCacheKey(domainFilter)
	if products, ok := s.cache.GetList(ctx, key); ok {
		return ToProductResponses(products), nil
	}

	products, err := s.productRepo.FindActive(ctx, domainFilter)
	if err != nil {
		return nil, err
	}
	s.cache.SetList(ctx, key, products)

	return ToProductResponses(products), nil
}

// Featured returns the newest active products for the storefront front
// page. A non-positive limit falls back to the repository default.
func (s *ProductService) Featured(ctx context.Context, limit int) ([]ProductResponse, error) {
	key := featuredCacheKey(limit)
	if products, ok := s.cache.GetList(ctx, key); ok {
		return ToProductResponses(products), nil
	}

	products, err := s.productRepo.FindFeatured(ctx, limit)
	if err != nil {
		return nil, err
	}
	s.cache.SetList(ctx, key, products)

	return ToProductResponses(products), nil
}

// ListAll returns products regardless of the active flag, newest first.
// The admin panel needs deactivated products visible so they can be
// re-activated.
func (s *ProductService) ListAll(ctx context.Context, limit, offset int) ([]ProductResponse, error) {
	products, err := s.productRepo.FindAll(ctx, shared.Filter{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return ToProductResponses(products), nil
}

// GetByID returns a product by ID. Inactive products stay retrievable so
// direct links and the admin panel keep working.
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// Create creates a new active product
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	if err := s.validateCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	product, err := catalog.NewProduct(req.Name, req.Description, valueobject.NewMoneyILS(req.Price))
	if err != nil {
		return nil, err
	}

	product.SetTranslations(req.NameRu, req.NameHe, req.DescriptionRu, req.DescriptionHe)
	product.SetCategory(req.CategoryID)
	product.SetBrand(req.Brand)
	product.SetImages(req.ImageURL, req.ImageURLs)
	product.SetStock(req.Stock)

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)

	response := ToProductResponse(product)
	return &response, nil
}

// Update applies a partial update to an existing product
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := product.Name
	if req.Name != nil {
		name = *req.Name
	}
	description := product.Description
	if req.Description != nil {
		description = *req.Description
	}
	if err := product.Update(name, description); err != nil {
		return nil, err
	}

	if req.Price != nil {
		if err := product.SetPrice(valueobject.NewMoneyILS(*req.Price)); err != nil {
			return nil, err
		}
	}

	if req.CategoryID != nil {
		if err := s.validateCategory(ctx, req.CategoryID); err != nil {
			return nil, err
		}
		product.SetCategory(req.CategoryID)
	}

	nameRu := product.NameRu
	if req.NameRu != nil {
		nameRu = *req.NameRu
	}
	nameHe := product.NameHe
	if req.NameHe != nil {
		nameHe = *req.NameHe
	}
	descriptionRu := product.DescriptionRu
	if req.DescriptionRu != nil {
		descriptionRu = *req.DescriptionRu
	}
	descriptionHe := product.DescriptionHe
	if req.DescriptionHe != nil {
		descriptionHe = *req.DescriptionHe
	}
	product.SetTranslations(nameRu, nameHe, descriptionRu, descriptionHe)

	if req.Brand != nil {
		product.SetBrand(*req.Brand)
	}

	imageURL := product.ImageURL
	if req.ImageURL != nil {
		imageURL = *req.ImageURL
	}
	imageURLs := product.ImageURLs
	if req.ImageURLs != nil {
		imageURLs = req.ImageURLs
	}
	product.SetImages(imageURL, imageURLs)

	if req.Stock != nil {
		product.SetStock(req.Stock)
	}

	if req.IsActive != nil {
		if *req.IsActive {
			product.Activate()
		} else {
			product.Deactivate()
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)

	response := ToProductResponse(product)
	return &response, nil
}

// Delete deactivates a product. Products are never physically removed
// because order items reference them; deactivating twice is not an error.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	product.Deactivate()

	if err := s.productRepo.Save(ctx, product); err != nil {
		return err
	}
	s.cache.Invalidate(ctx)

	return nil
}

// CountActive counts the active products for the admin dashboard
func (s *ProductService) CountActive(ctx context.Context) (int64, error) {
	return s.productRepo.CountActive(ctx)
}

func (s *ProductService) validateCategory(ctx context.Context, categoryID *uuid.UUID) error {
	if categoryID == nil {
		return nil
	}
	if _, err := s.categoryRepo.FindByID(ctx, *categoryID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("INVALID_CATEGORY", "Category not found")
		}
		return err
	}
	return nil
}
