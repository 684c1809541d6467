package dto

import "time"

// OrderItemRequest is one cart line in a checkout payload.
type OrderItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// AddressPayload carries the shipping destination.
type AddressPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

// CreateOrderRequest describes the checkout payload.
type CreateOrderRequest struct {
	Items           []OrderItemRequest `json:"items"`
	CouponCode      string             `json:"couponCode"`
	ShippingAddress AddressPayload     `json:"shippingAddress"`
}

// OrderItemResponse is a line-item snapshot in an order response.
type OrderItemResponse struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// OrderResponse describes a placed order.
type OrderResponse struct {
	ID         int64               `json:"id"`
	Number     string              `json:"number"`
	UserID     int64               `json:"userId"`
	Items      []OrderItemResponse `json:"items"`
	Status     string              `json:"status"`
	Subtotal   float64             `json:"subtotal"`
	Discount   float64             `json:"discount"`
	Total      float64             `json:"total"`
	CouponCode string              `json:"couponCode,omitempty"`
	Shipping   AddressPayload      `json:"shippingAddress"`
	CreatedAt  time.Time           `json:"createdAt"`
}

// UpdateStatusRequest describes an order status change payload.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}
