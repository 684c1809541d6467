package model

import "time"

// Product is a sellable catalog item. Stock is the available-to-sell count
// and never goes negative: it is only decremented through a conditional
// update during order placement.
type Product struct {
	ID          int64
	Name        string
	Slug        string
	Description string
	Price       float64
	Images      []string
	CategoryID  int64
	Stock       int
	Featured    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
