package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	domainErrors "github.com/tezcart/tezcart/internal/domain/errors"
	"github.com/tezcart/tezcart/internal/domain/model"
	"github.com/tezcart/tezcart/internal/domain/repository"
)

// CheckoutUseCase turns a cart into an immutable order. Placement runs in
// two phases: a read-only snapshot pass that prices the cart and surfaces
// missing products or short stock early, then a single storage transaction
// that conditionally decrements every product's stock and persists the
// order. A failure in either phase leaves stock untouched, and two
// concurrent placements cannot jointly oversell a product because the
// decrement itself re-checks availability.
type CheckoutUseCase struct {
	products repository.ProductRepository
	coupons  repository.CouponRepository
	orders   repository.OrderRepository
}

// NewCheckoutUseCase constructs CheckoutUseCase.
func NewCheckoutUseCase(products repository.ProductRepository, coupons repository.CouponRepository, orders repository.OrderRepository) *CheckoutUseCase {
	return &CheckoutUseCase{products: products, coupons: coupons, orders: orders}
}

// PlaceOrder validates the cart, prices it, applies an optional coupon, and
// persists the order with status pending.
//
// An unknown, inactive, or expired coupon code is silently ignored and the
// discount stays zero; the submitted code is still recorded on the order.
// The discount is capped at the subtotal so the total never goes negative.
func (u *CheckoutUseCase) PlaceOrder(ctx context.Context, userID int64, lines []model.CartLine, couponCode string, shipping model.Address) (*model.Order, error) {
	if len(lines) == 0 {
		return nil, domainErrors.ValidationError{Field: "items", Reason: "cart is empty"}
	}
	for _, line := range lines {
		if line.Quantity < 1 {
			return nil, domainErrors.ValidationError{Field: "items.quantity", Reason: "must be at least 1"}
		}
	}
	if err := ValidateAddress(shipping); err != nil {
		return nil, err
	}

	var subtotal float64
	items := make([]model.LineItem, 0, len(lines))
	for _, line := range lines {
		product, err := u.products.GetByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				return nil, domainErrors.ProductNotFoundError{ProductID: line.ProductID}
			}
			return nil, err
		}
		if product.Stock < line.Quantity {
			return nil, domainErrors.InsufficientStockError{
				ProductID: product.ID,
				Name:      product.Name,
				Requested: line.Quantity,
				Available: product.Stock,
			}
		}
		subtotal += product.Price * float64(line.Quantity)
		items = append(items, model.LineItem{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  line.Quantity,
		})
	}

	couponCode = strings.ToUpper(strings.TrimSpace(couponCode))
	var discount float64
	if couponCode != "" {
		coupon, err := u.coupons.FindActiveByCode(ctx, couponCode)
		switch {
		case err == nil:
			discount = coupon.Discount(subtotal)
		case errors.Is(err, domainErrors.ErrNotFound):
			// Invalid codes do not fail checkout.
		default:
			return nil, err
		}
	}

	order := &model.Order{
		Number:     uuid.NewString(),
		UserID:     userID,
		Items:      items,
		Status:     model.OrderStatusPending,
		Subtotal:   subtotal,
		Discount:   discount,
		Total:      subtotal - discount,
		CouponCode: couponCode,
		Shipping:   shipping,
	}

	return u.orders.Create(ctx, order)
}

// OrdersByUser returns the user's orders, newest first.
func (u *CheckoutUseCase) OrdersByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// AllOrders returns every order for the admin console.
func (u *CheckoutUseCase) AllOrders(ctx context.Context) ([]model.Order, error) {
	return u.orders.ListAll(ctx)
}

// OrderByID fetches a single order with its line items.
func (u *CheckoutUseCase) OrderByID(ctx context.Context, id int64) (*model.Order, error) {
	return u.orders.GetByID(ctx, id)
}

// UpdateStatus advances an order through its fulfillment lifecycle. Illegal
// transitions are rejected; re-applying the current status is a no-op.
func (u *CheckoutUseCase) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	if !model.ValidOrderStatus(status) {
		return nil, domainErrors.ValidationError{Field: "status", Reason: "unknown status"}
	}
	return u.orders.UpdateStatus(ctx, id, status)
}
