package repository

import (
	"context"

	"github.com/tezcart/tezcart/internal/domain/model"
)

// CouponRepository describes persistence operations for coupons.
type CouponRepository interface {
	Create(ctx context.Context, coupon *model.Coupon) (*model.Coupon, error)
	// FindActiveByCode returns the coupon matching the (uppercase) code only
	// while it is active and not yet expired; ErrNotFound otherwise.
	FindActiveByCode(ctx context.Context, code string) (*model.Coupon, error)
	List(ctx context.Context) ([]model.Coupon, error)
	Update(ctx context.Context, coupon *model.Coupon) (*model.Coupon, error)
	Delete(ctx context.Context, id int64) error
	// DeactivateExpired clears the active flag on coupons past expiry and
	// returns how many rows changed.
	DeactivateExpired(ctx context.Context) (int64, error)
}
