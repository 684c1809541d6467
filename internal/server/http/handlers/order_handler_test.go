package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/tezcart/tezcart/internal/domain/errors"
	"github.com/tezcart/tezcart/internal/domain/model"
	"github.com/tezcart/tezcart/internal/server/http/middleware"
	"github.com/tezcart/tezcart/internal/test"
)

func newOrderEngine(facade OrderFacade, userID int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(func(c *gin.Context) {
		c.Set(middleware.UserIDContextKey, userID)
	})
	handler := NewOrderHandler(facade)
	engine.POST("/api/orders", handler.Create)
	engine.GET("/api/orders", handler.List)
	engine.GET("/api/orders/my-orders", handler.MyOrders)
	engine.GET("/api/orders/:id", handler.Get)
	engine.PUT("/api/orders/:id/status", handler.UpdateStatus)
	return engine
}

const checkoutPayload = `{
	"items": [{"productId": 1, "quantity": 2}, {"productId": 2, "quantity": 1}],
	"couponCode": "save10",
	"shippingAddress": {"name":"Jo","email":"jo@example.com","address":"1 Main St","city":"Springfield","zip":"12345","country":"US"}
}`

func TestCreateOrderReturnsCreatedOrder(t *testing.T) {
	var captured struct {
		userID int64
		lines  []model.CartLine
		coupon string
	}
	facade := test.OrderFacadeStub{
		PlaceOrderFn: func(ctx context.Context, userID int64, lines []model.CartLine, couponCode string, shipping model.Address) (*model.Order, error) {
			captured.userID = userID
			captured.lines = lines
			captured.coupon = couponCode
			return &model.Order{
				ID:       10,
				Number:   "n-10",
				UserID:   userID,
				Status:   model.OrderStatusPending,
				Subtotal: 25.00,
				Discount: 2.50,
				Total:    22.50,
				Items: []model.LineItem{
					{ProductID: 1, Name: "Alpha", UnitPrice: 10.00, Quantity: 2},
					{ProductID: 2, Name: "Beta", UnitPrice: 5.00, Quantity: 1},
				},
				CouponCode: "SAVE10",
				Shipping:   shipping,
			}, nil
		},
	}
	engine := newOrderEngine(test.CommerceFacadeStub{OrderFacadeStub: facade}, 7)

	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(checkoutPayload))
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if captured.userID != 7 {
		t.Fatalf("expected user 7, got %d", captured.userID)
	}
	if len(captured.lines) != 2 || captured.lines[0].ProductID != 1 || captured.lines[0].Quantity != 2 {
		t.Fatalf("unexpected cart lines: %+v", captured.lines)
	}
	if captured.coupon != "save10" {
		t.Fatalf("unexpected coupon: %s", captured.coupon)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if body["total"] != 22.50 || body["status"] != "pending" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestCreateOrderInsufficientStock(t *testing.T) {
	facade := test.OrderFacadeStub{
		PlaceOrderFn: func(context.Context, int64, []model.CartLine, string, model.Address) (*model.Order, error) {
			return nil, domainErrors.InsufficientStockError{ProductID: 2, Name: "Beta", Requested: 3, Available: 1}
		},
	}
	engine := newOrderEngine(test.CommerceFacadeStub{OrderFacadeStub: facade}, 7)

	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(checkoutPayload))
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Beta") {
		t.Fatalf("expected product name in error, got %s", rec.Body.String())
	}
}

func TestCreateOrderMissingProduct(t *testing.T) {
	facade := test.OrderFacadeStub{
		PlaceOrderFn: func(context.Context, int64, []model.CartLine, string, model.Address) (*model.Order, error) {
			return nil, domainErrors.ProductNotFoundError{ProductID: 99}
		},
	}
	engine := newOrderEngine(test.CommerceFacadeStub{OrderFacadeStub: facade}, 7)

	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(checkoutPayload))
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestGetOrderOwnOrder(t *testing.T) {
	facade := test.OrderFacadeStub{
		OrderByIDFn: func(ctx context.Context, id int64) (*model.Order, error) {
			return &model.Order{ID: id, UserID: 7, Status: model.OrderStatusPending}, nil
		},
	}
	engine := newOrderEngine(test.CommerceFacadeStub{OrderFacadeStub: facade}, 7)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/5", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestGetOrderHidesForeignOrderFromCustomer(t *testing.T) {
	stub := test.CommerceFacadeStub{}
	stub.OrderByIDFn = func(ctx context.Context, id int64) (*model.Order, error) {
		return &model.Order{ID: id, UserID: 99}, nil
	}
	stub.CurrentUserFn = func(context.Context, int64) (*model.User, error) {
		return &model.User{ID: 7, Role: model.RoleUser}, nil
	}
	engine := newOrderEngine(stub, 7)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/5", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestGetOrderVisibleToStaff(t *testing.T) {
	stub := test.CommerceFacadeStub{}
	stub.OrderByIDFn = func(ctx context.Context, id int64) (*model.Order, error) {
		return &model.Order{ID: id, UserID: 99}, nil
	}
	stub.CurrentUserFn = func(context.Context, int64) (*model.User, error) {
		return &model.User{ID: 7, Role: model.RoleStaff}, nil
	}
	engine := newOrderEngine(stub, 7)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/5", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestGetOrderRejectsBadID(t *testing.T) {
	engine := newOrderEngine(test.CommerceFacadeStub{}, 7)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/abc", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUpdateStatusConflictOnIllegalTransition(t *testing.T) {
	facade := test.OrderFacadeStub{
		UpdateStatusFn: func(context.Context, int64, model.OrderStatus) (*model.Order, error) {
			return nil, domainErrors.ErrInvalidStatusChange
		},
	}
	engine := newOrderEngine(test.CommerceFacadeStub{OrderFacadeStub: facade}, 7)

	req := httptest.NewRequest(http.MethodPut, "/api/orders/5/status", strings.NewReader(`{"status":"completed"}`))
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestMyOrdersReturnsList(t *testing.T) {
	facade := test.OrderFacadeStub{
		OrdersByUserFn: func(ctx context.Context, userID int64) ([]model.Order, error) {
			return []model.Order{{ID: 1, UserID: userID}, {ID: 2, UserID: userID}}, nil
		},
	}
	engine := newOrderEngine(test.CommerceFacadeStub{OrderFacadeStub: facade}, 7)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/my-orders", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var orders []json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &orders); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
}
