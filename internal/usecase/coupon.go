package usecase

import (
	"context"
	"strings"
	"time"

	domainErrors "github.com/tezcart/tezcart/internal/domain/errors"
	"github.com/tezcart/tezcart/internal/domain/model"
	"github.com/tezcart/tezcart/internal/domain/repository"
)

// CouponUseCase manages discount coupons.
type CouponUseCase struct {
	coupons repository.CouponRepository
	now     func() time.Time
}

// NewCouponUseCase constructs CouponUseCase.
func NewCouponUseCase(coupons repository.CouponRepository) *CouponUseCase {
	return &CouponUseCase{coupons: coupons, now: time.Now}
}

// List returns all coupons for the admin console.
func (u *CouponUseCase) List(ctx context.Context) ([]model.Coupon, error) {
	return u.coupons.List(ctx)
}

// Validate resolves a code to a usable coupon. Unknown, inactive, and
// expired codes all surface as ErrNotFound, mirroring the lookup used during
// checkout.
func (u *CouponUseCase) Validate(ctx context.Context, code string) (*model.Coupon, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, domainErrors.ErrNotFound
	}
	return u.coupons.FindActiveByCode(ctx, code)
}

// Create validates and persists a new coupon. Codes are uppercased.
func (u *CouponUseCase) Create(ctx context.Context, coupon *model.Coupon) (*model.Coupon, error) {
	if err := u.validateCoupon(coupon); err != nil {
		return nil, err
	}
	return u.coupons.Create(ctx, coupon)
}

// Update validates and persists changes to a coupon.
func (u *CouponUseCase) Update(ctx context.Context, coupon *model.Coupon) (*model.Coupon, error) {
	if err := u.validateCoupon(coupon); err != nil {
		return nil, err
	}
	return u.coupons.Update(ctx, coupon)
}

// Delete removes a coupon.
func (u *CouponUseCase) Delete(ctx context.Context, id int64) error {
	return u.coupons.Delete(ctx, id)
}

// DeactivateExpired clears the active flag on coupons past expiry.
func (u *CouponUseCase) DeactivateExpired(ctx context.Context) (int64, error) {
	return u.coupons.DeactivateExpired(ctx)
}

func (u *CouponUseCase) validateCoupon(c *model.Coupon) error {
	c.Code = strings.ToUpper(strings.TrimSpace(c.Code))
	if c.Code == "" {
		return domainErrors.ValidationError{Field: "code", Reason: "required"}
	}
	if c.Type != model.CouponTypePercentage && c.Type != model.CouponTypeFixed {
		return domainErrors.ValidationError{Field: "type", Reason: "must be percentage or fixed"}
	}
	if c.Value < 0 {
		return domainErrors.ValidationError{Field: "value", Reason: "must be non-negative"}
	}
	if c.ExpiresAt.IsZero() {
		return domainErrors.ValidationError{Field: "expiresAt", Reason: "required"}
	}
	return nil
}
