package model

import "time"

// OrderStatus describes the fulfillment stage of a placed order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is a known status value.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether an order may move from its current status to
// next. Statuses advance forward only; cancellation is allowed from any
// non-terminal state. Re-applying the current status is a permitted no-op,
// so cancelling an already cancelled order is not an error.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case OrderStatusPending:
		return next == OrderStatusPaid || next == OrderStatusCancelled
	case OrderStatusPaid:
		return next == OrderStatusShipped || next == OrderStatusCancelled
	case OrderStatusShipped:
		return next == OrderStatusCompleted || next == OrderStatusCancelled
	}
	return false
}

// CartLine is one requested purchase: a product reference and a quantity.
type CartLine struct {
	ProductID int64
	Quantity  int
}

// LineItem is an immutable snapshot of one purchased product taken at order
// time, deliberately decoupled from the live product record so historical
// orders stay accurate when prices change.
type LineItem struct {
	ProductID int64
	Name      string
	UnitPrice float64
	Quantity  int
}

// Address is the shipping destination captured at checkout.
type Address struct {
	Name    string
	Email   string
	Address string
	City    string
	Zip     string
	Country string
}

// Order is an immutable purchase record. Only Status changes after creation,
// and only through the transition rules above.
//
// Invariants: Subtotal = sum of UnitPrice*Quantity over Items,
// Total = Subtotal - Discount, Discount in [0, Subtotal].
type Order struct {
	ID         int64
	Number     string
	UserID     int64
	Items      []LineItem
	Status     OrderStatus
	Subtotal   float64
	Discount   float64
	Total      float64
	CouponCode string
	Shipping   Address
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
