package model

import "time"

// Category groups products for storefront navigation.
type Category struct {
	ID          int64
	Name        string
	Slug        string
	Description string
	CreatedAt   time.Time
}
