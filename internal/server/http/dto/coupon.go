package dto

import "time"

// CouponRequest describes a coupon create/update payload.
type CouponRequest struct {
	Code      string    `json:"code"`
	Type      string    `json:"type"`
	Value     float64   `json:"value"`
	Active    *bool     `json:"active"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// CouponResponse describes a coupon.
type CouponResponse struct {
	ID        int64     `json:"id"`
	Code      string    `json:"code"`
	Type      string    `json:"type"`
	Value     float64   `json:"value"`
	Active    bool      `json:"active"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}
