package repository

import (
	"context"

	"github.com/tezcart/tezcart/internal/domain/model"
)

// OrderRepository describes persistence operations for orders.
type OrderRepository interface {
	// Create persists the order and reserves stock for every line item in a
	// single atomic unit: each product's stock is decremented only if it
	// still covers the requested quantity, and any failure rolls back the
	// whole order with no partial stock mutation.
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)
	// UpdateStatus sets the new status after checking the transition is
	// allowed from the currently stored status.
	UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error)
}
