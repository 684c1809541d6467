package repository

import (
	"context"

	"github.com/tezcart/tezcart/internal/domain/model"
)

// ProductFilter narrows product listings.
type ProductFilter struct {
	CategorySlug string
	Featured     *bool
}

// ProductRepository describes persistence operations for catalog products.
// Stock is decremented only through the order repository's conditional
// update, never through Update.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	GetBySlug(ctx context.Context, slug string) (*model.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]model.Product, error)
	Update(ctx context.Context, product *model.Product) (*model.Product, error)
	Delete(ctx context.Context, id int64) error
}
