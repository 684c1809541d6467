package errors

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyExists         = errors.New("already exists")
	ErrNotFound              = errors.New("not found")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrAccountBanned         = errors.New("account banned")
	ErrForbidden             = errors.New("forbidden")
	ErrInsufficientStock     = errors.New("insufficient stock")
	ErrValidation            = errors.New("validation failed")
	ErrInvalidStatusChange   = errors.New("invalid status change")
	ErrCouponExpiredInactive = errors.New("coupon expired or inactive")
)

// ProductNotFoundError names the cart line whose product does not exist.
// errors.Is(err, ErrNotFound) matches it.
type ProductNotFoundError struct {
	ProductID int64
}

func (e ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %d not found", e.ProductID)
}

func (e ProductNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// InsufficientStockError names the product whose stock cannot cover the
// requested quantity. errors.Is(err, ErrInsufficientStock) matches it.
type InsufficientStockError struct {
	ProductID int64
	Name      string
	Requested int
	Available int
}

func (e InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: requested %d, available %d", e.Name, e.Requested, e.Available)
}

func (e InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// ValidationError names the request field that failed validation.
// errors.Is(err, ErrValidation) matches it.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e ValidationError) Is(target error) bool {
	return target == ErrValidation
}
