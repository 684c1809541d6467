package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tezcart/tezcart/internal/domain/model"
	"github.com/tezcart/tezcart/internal/server/http/dto"
)

// OrderHandler manages checkout and order endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

func toOrderResponse(o model.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}
	return dto.OrderResponse{
		ID:         o.ID,
		Number:     o.Number,
		UserID:     o.UserID,
		Items:      items,
		Status:     string(o.Status),
		Subtotal:   o.Subtotal,
		Discount:   o.Discount,
		Total:      o.Total,
		CouponCode: o.CouponCode,
		Shipping: dto.AddressPayload{
			Name:    o.Shipping.Name,
			Email:   o.Shipping.Email,
			Address: o.Shipping.Address,
			City:    o.Shipping.City,
			Zip:     o.Shipping.Zip,
			Country: o.Shipping.Country,
		},
		CreatedAt: o.CreatedAt,
	}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	lines := make([]model.CartLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, model.CartLine{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	shipping := model.Address{
		Name:    req.ShippingAddress.Name,
		Email:   req.ShippingAddress.Email,
		Address: req.ShippingAddress.Address,
		City:    req.ShippingAddress.City,
		Zip:     req.ShippingAddress.Zip,
		Country: req.ShippingAddress.Country,
	}

	order, err := h.facade.PlaceOrder(c.Request.Context(), CurrentUserID(c), lines, req.CouponCode, shipping)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

// MyOrders handles GET /api/orders/my-orders.
func (h *OrderHandler) MyOrders(c *gin.Context) {
	orders, err := h.facade.OrdersByUser(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, response)
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.AllOrders(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/orders/:id. Customers may only read their own
// orders; staff roles may read any.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	order, err := h.facade.OrderByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	userID := CurrentUserID(c)
	if order.UserID != userID {
		usr, err := h.facade.CurrentUser(c.Request.Context(), userID)
		if err != nil {
			writeError(c, err)
			return
		}
		if !usr.Role.IsStaff() {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
	}

	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// UpdateStatus handles PUT /api/orders/:id/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	order, err := h.facade.UpdateOrderStatus(c.Request.Context(), id, model.OrderStatus(req.Status))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}
