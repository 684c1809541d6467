package model

import "time"

// CouponType selects how a coupon's value is applied to the subtotal.
type CouponType string

const (
	CouponTypePercentage CouponType = "percentage"
	CouponTypeFixed      CouponType = "fixed"
)

// Coupon is a named discount rule. Codes are stored uppercase and matched
// case-insensitively.
type Coupon struct {
	ID        int64
	Code      string
	Type      CouponType
	Value     float64
	Active    bool
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Usable reports whether the coupon may discount an order placed at now.
func (c *Coupon) Usable(now time.Time) bool {
	return c.Active && c.ExpiresAt.After(now)
}

// Discount computes the amount subtracted from the given subtotal. The
// result is capped at the subtotal so an order total can never go negative.
func (c *Coupon) Discount(subtotal float64) float64 {
	var d float64
	switch c.Type {
	case CouponTypePercentage:
		d = subtotal * c.Value / 100
	case CouponTypeFixed:
		d = c.Value
	}
	if d < 0 {
		return 0
	}
	if d > subtotal {
		return subtotal
	}
	return d
}
