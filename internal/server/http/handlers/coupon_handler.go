package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tezcart/tezcart/internal/domain/model"
	"github.com/tezcart/tezcart/internal/server/http/dto"
)

// CouponHandler manages coupon endpoints.
type CouponHandler struct {
	facade CouponFacade
}

// NewCouponHandler constructs CouponHandler.
func NewCouponHandler(facade CouponFacade) *CouponHandler {
	return &CouponHandler{facade: facade}
}

func toCouponResponse(c model.Coupon) dto.CouponResponse {
	return dto.CouponResponse{
		ID:        c.ID,
		Code:      c.Code,
		Type:      string(c.Type),
		Value:     c.Value,
		Active:    c.Active,
		ExpiresAt: c.ExpiresAt,
		CreatedAt: c.CreatedAt,
	}
}

func couponFromRequest(req dto.CouponRequest) *model.Coupon {
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	return &model.Coupon{
		Code:      req.Code,
		Type:      model.CouponType(req.Type),
		Value:     req.Value,
		Active:    active,
		ExpiresAt: req.ExpiresAt,
	}
}

// List handles GET /api/coupons.
func (h *CouponHandler) List(c *gin.Context) {
	coupons, err := h.facade.Coupons(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	response := make([]dto.CouponResponse, 0, len(coupons))
	for _, coupon := range coupons {
		response = append(response, toCouponResponse(coupon))
	}
	c.JSON(http.StatusOK, response)
}

// Validate handles GET /api/coupons/validate/:code. Unknown, inactive, and
// expired codes all come back 404.
func (h *CouponHandler) Validate(c *gin.Context) {
	coupon, err := h.facade.ValidateCoupon(c.Request.Context(), c.Param("code"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCouponResponse(*coupon))
}

// Create handles POST /api/coupons.
func (h *CouponHandler) Create(c *gin.Context) {
	var req dto.CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	coupon, err := h.facade.CreateCoupon(c.Request.Context(), couponFromRequest(req))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toCouponResponse(*coupon))
}

// Update handles PUT /api/coupons/:id.
func (h *CouponHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	coupon := couponFromRequest(req)
	coupon.ID = id
	updated, err := h.facade.UpdateCoupon(c.Request.Context(), coupon)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCouponResponse(*updated))
}

// Delete handles DELETE /api/coupons/:id.
func (h *CouponHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.facade.DeleteCoupon(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "coupon deleted"})
}
