package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/tezcart/tezcart/internal/domain/errors"
	"github.com/tezcart/tezcart/internal/domain/model"
	"github.com/tezcart/tezcart/internal/domain/repository"
)

// CatalogUseCase manages products and categories.
type CatalogUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository, categories repository.CategoryRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products, categories: categories}
}

// Products returns catalog products matching the filter.
func (u *CatalogUseCase) Products(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
	return u.products.List(ctx, filter)
}

// ProductBySlug fetches a single product for a storefront page.
func (u *CatalogUseCase) ProductBySlug(ctx context.Context, slug string) (*model.Product, error) {
	return u.products.GetBySlug(ctx, slug)
}

// CreateProduct validates and persists a new product. An empty slug is
// derived from the name.
func (u *CatalogUseCase) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	return u.products.Create(ctx, product)
}

// UpdateProduct validates and persists changes to an existing product.
func (u *CatalogUseCase) UpdateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	return u.products.Update(ctx, product)
}

// DeleteProduct removes a product from the catalog.
func (u *CatalogUseCase) DeleteProduct(ctx context.Context, id int64) error {
	return u.products.Delete(ctx, id)
}

func validateProduct(p *model.Product) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return domainErrors.ValidationError{Field: "name", Reason: "required"}
	}
	if p.Slug == "" {
		p.Slug = Slugify(p.Name)
	}
	if p.Price < 0 {
		return domainErrors.ValidationError{Field: "price", Reason: "must be non-negative"}
	}
	if p.Stock < 0 {
		return domainErrors.ValidationError{Field: "stock", Reason: "must be non-negative"}
	}
	if p.CategoryID == 0 {
		return domainErrors.ValidationError{Field: "category", Reason: "required"}
	}
	return nil
}

// Categories returns all categories.
func (u *CatalogUseCase) Categories(ctx context.Context) ([]model.Category, error) {
	return u.categories.List(ctx)
}

// CategoryBySlug fetches a single category.
func (u *CatalogUseCase) CategoryBySlug(ctx context.Context, slug string) (*model.Category, error) {
	return u.categories.GetBySlug(ctx, slug)
}

// CreateCategory validates and persists a new category.
func (u *CatalogUseCase) CreateCategory(ctx context.Context, category *model.Category) (*model.Category, error) {
	if err := validateCategory(category); err != nil {
		return nil, err
	}
	return u.categories.Create(ctx, category)
}

// UpdateCategory validates and persists changes to a category.
func (u *CatalogUseCase) UpdateCategory(ctx context.Context, category *model.Category) (*model.Category, error) {
	if err := validateCategory(category); err != nil {
		return nil, err
	}
	return u.categories.Update(ctx, category)
}

// DeleteCategory removes a category.
func (u *CatalogUseCase) DeleteCategory(ctx context.Context, id int64) error {
	return u.categories.Delete(ctx, id)
}

func validateCategory(c *model.Category) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return domainErrors.ValidationError{Field: "name", Reason: "required"}
	}
	if c.Slug == "" {
		c.Slug = Slugify(c.Name)
	}
	return nil
}
