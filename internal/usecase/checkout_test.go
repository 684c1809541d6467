package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	domainErrors "github.com/tezcart/tezcart/internal/domain/errors"
	"github.com/tezcart/tezcart/internal/domain/model"
	"github.com/tezcart/tezcart/internal/test"
)

func validAddress() model.Address {
	return model.Address{
		Name:    "Jo Buyer",
		Email:   "jo@example.com",
		Address: "1 Main St",
		City:    "Springfield",
		Zip:     "12345",
		Country: "US",
	}
}

func checkoutFixture(t *testing.T) (*CheckoutUseCase, *test.ProductRepositoryStub, *test.CouponRepositoryStub, *test.OrderRepositoryStub) {
	t.Helper()
	products := test.NewProductRepositoryStub()
	products.Add(&model.Product{ID: 1, Name: "Alpha", Slug: "alpha", Price: 10.00, Stock: 5, CategoryID: 1})
	products.Add(&model.Product{ID: 2, Name: "Beta", Slug: "beta", Price: 5.00, Stock: 1, CategoryID: 1})

	coupons := test.NewCouponRepositoryStub()
	orders := &test.OrderRepositoryStub{}
	return NewCheckoutUseCase(products, coupons, orders), products, coupons, orders
}

func TestPlaceOrderPricesCart(t *testing.T) {
	uc, _, _, orders := checkoutFixture(t)

	order, err := uc.PlaceOrder(context.Background(), 7, []model.CartLine{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 1},
	}, "", validAddress())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if order.Subtotal != 25.00 {
		t.Fatalf("expected subtotal 25.00, got %v", order.Subtotal)
	}
	if order.Discount != 0 {
		t.Fatalf("expected no discount, got %v", order.Discount)
	}
	if order.Total != 25.00 {
		t.Fatalf("expected total 25.00, got %v", order.Total)
	}
	if order.Status != model.OrderStatusPending {
		t.Fatalf("expected pending status, got %s", order.Status)
	}
	if order.Number == "" {
		t.Fatal("expected order number to be assigned")
	}
	if order.UserID != 7 {
		t.Fatalf("expected user 7, got %d", order.UserID)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(order.Items))
	}
	if order.Items[0].Name != "Alpha" || order.Items[0].UnitPrice != 10.00 || order.Items[0].Quantity != 2 {
		t.Fatalf("unexpected first line item: %+v", order.Items[0])
	}
	if len(orders.Created) != 1 {
		t.Fatalf("expected one persisted order, got %d", len(orders.Created))
	}
}

func TestPlaceOrderAppliesPercentageCoupon(t *testing.T) {
	uc, _, coupons, _ := checkoutFixture(t)
	coupons.Add(&model.Coupon{
		Code:      "SAVE10",
		Type:      model.CouponTypePercentage,
		Value:     10,
		Active:    true,
		ExpiresAt: time.Now().Add(time.Hour),
	})

	order, err := uc.PlaceOrder(context.Background(), 7, []model.CartLine{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 1},
	}, "save10", validAddress())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if order.Discount != 2.50 {
		t.Fatalf("expected discount 2.50, got %v", order.Discount)
	}
	if order.Total != 22.50 {
		t.Fatalf("expected total 22.50, got %v", order.Total)
	}
	if order.CouponCode != "SAVE10" {
		t.Fatalf("expected uppercased coupon code, got %s", order.CouponCode)
	}
}

func TestPlaceOrderClampsFixedCoupon(t *testing.T) {
	uc, _, coupons, _ := checkoutFixture(t)
	coupons.Add(&model.Coupon{
		Code:      "BIGOFF",
		Type:      model.CouponTypeFixed,
		Value:     500,
		Active:    true,
		ExpiresAt: time.Now().Add(time.Hour),
	})

	order, err := uc.PlaceOrder(context.Background(), 7, []model.CartLine{{ProductID: 2, Quantity: 1}}, "BIGOFF", validAddress())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Discount != 5.00 {
		t.Fatalf("expected discount clamped to subtotal, got %v", order.Discount)
	}
	if order.Total != 0 {
		t.Fatalf("expected zero total, got %v", order.Total)
	}
}

func TestPlaceOrderIgnoresUnknownCoupon(t *testing.T) {
	uc, _, _, orders := checkoutFixture(t)

	order, err := uc.PlaceOrder(context.Background(), 7, []model.CartLine{{ProductID: 1, Quantity: 1}}, "NOPE", validAddress())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Discount != 0 {
		t.Fatalf("expected no discount, got %v", order.Discount)
	}
	if order.Total != 10.00 {
		t.Fatalf("expected full total, got %v", order.Total)
	}
	if order.CouponCode != "NOPE" {
		t.Fatalf("expected submitted code to be recorded, got %s", order.CouponCode)
	}
	if len(orders.Created) != 1 {
		t.Fatal("expected order to be created despite unknown coupon")
	}
}

func TestPlaceOrderIgnoresExpiredCoupon(t *testing.T) {
	uc, _, coupons, orders := checkoutFixture(t)
	coupons.Add(&model.Coupon{
		Code:      "OLD",
		Type:      model.CouponTypePercentage,
		Value:     10,
		Active:    true,
		ExpiresAt: time.Now().Add(-time.Hour),
	})

	order, err := uc.PlaceOrder(context.Background(), 7, []model.CartLine{{ProductID: 1, Quantity: 1}}, "OLD", validAddress())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Discount != 0 {
		t.Fatalf("expected no discount, got %v", order.Discount)
	}
	if len(orders.Created) != 1 {
		t.Fatal("expected order to be created")
	}
}

func TestPlaceOrderPropagatesCouponLookupFailure(t *testing.T) {
	uc, _, coupons, orders := checkoutFixture(t)
	storeErr := errors.New("connection reset")
	coupons.FindActiveFn = func(context.Context, string) (*model.Coupon, error) {
		return nil, storeErr
	}

	if _, err := uc.PlaceOrder(context.Background(), 7, []model.CartLine{{ProductID: 1, Quantity: 1}}, "SAVE10", validAddress()); !errors.Is(err, storeErr) {
		t.Fatalf("expected storage error, got %v", err)
	}
	if len(orders.Created) != 0 {
		t.Fatal("expected no order on coupon lookup failure")
	}
}

func TestPlaceOrderRejectsInsufficientStock(t *testing.T) {
	uc, _, _, orders := checkoutFixture(t)

	_, err := uc.PlaceOrder(context.Background(), 7, []model.CartLine{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 3},
	}, "", validAddress())

	var stockErr domainErrors.InsufficientStockError
	if !errors.As(err, &stockErr) {
		t.Fatalf("expected InsufficientStockError, got %v", err)
	}
	if stockErr.ProductID != 2 || stockErr.Requested != 3 || stockErr.Available != 1 {
		t.Fatalf("unexpected error details: %+v", stockErr)
	}
	if !errors.Is(err, domainErrors.ErrInsufficientStock) {
		t.Fatal("expected error to match ErrInsufficientStock")
	}
	if len(orders.Created) != 0 {
		t.Fatal("expected no order to be created")
	}
}

func TestPlaceOrderRejectsMissingProduct(t *testing.T) {
	uc, _, _, orders := checkoutFixture(t)

	_, err := uc.PlaceOrder(context.Background(), 7, []model.CartLine{{ProductID: 99, Quantity: 1}}, "", validAddress())

	var notFound domainErrors.ProductNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected ProductNotFoundError, got %v", err)
	}
	if notFound.ProductID != 99 {
		t.Fatalf("unexpected product id: %d", notFound.ProductID)
	}
	if len(orders.Created) != 0 {
		t.Fatal("expected no order to be created")
	}
}

func TestPlaceOrderRejectsEmptyCart(t *testing.T) {
	uc, _, _, _ := checkoutFixture(t)

	if _, err := uc.PlaceOrder(context.Background(), 7, nil, "", validAddress()); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestPlaceOrderRejectsZeroQuantity(t *testing.T) {
	uc, _, _, _ := checkoutFixture(t)

	if _, err := uc.PlaceOrder(context.Background(), 7, []model.CartLine{{ProductID: 1, Quantity: 0}}, "", validAddress()); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestPlaceOrderRejectsIncompleteAddress(t *testing.T) {
	uc, _, _, _ := checkoutFixture(t)

	addr := validAddress()
	addr.Zip = " "
	_, err := uc.PlaceOrder(context.Background(), 7, []model.CartLine{{ProductID: 1, Quantity: 1}}, "", addr)

	var vErr domainErrors.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if vErr.Field != "shippingAddress.zip" {
		t.Fatalf("unexpected field: %s", vErr.Field)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	uc, _, _, _ := checkoutFixture(t)

	if _, err := uc.UpdateStatus(context.Background(), 1, "processing"); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateStatusCancelTwiceIsIdempotent(t *testing.T) {
	products := test.NewProductRepositoryStub()
	coupons := test.NewCouponRepositoryStub()
	orders := &test.OrderRepositoryStub{Orders: []model.Order{{ID: 1, UserID: 7, Status: model.OrderStatusPending}}}
	uc := NewCheckoutUseCase(products, coupons, orders)

	first, err := uc.UpdateStatus(context.Background(), 1, model.OrderStatusCancelled)
	if err != nil {
		t.Fatalf("unexpected error on first cancel: %v", err)
	}
	if first.Status != model.OrderStatusCancelled {
		t.Fatalf("expected cancelled, got %s", first.Status)
	}

	second, err := uc.UpdateStatus(context.Background(), 1, model.OrderStatusCancelled)
	if err != nil {
		t.Fatalf("unexpected error on second cancel: %v", err)
	}
	if second.Status != model.OrderStatusCancelled {
		t.Fatalf("expected cancelled, got %s", second.Status)
	}
}

func TestUpdateStatusRejectsIllegalTransition(t *testing.T) {
	products := test.NewProductRepositoryStub()
	coupons := test.NewCouponRepositoryStub()
	orders := &test.OrderRepositoryStub{Orders: []model.Order{{ID: 1, Status: model.OrderStatusCompleted}}}
	uc := NewCheckoutUseCase(products, coupons, orders)

	if _, err := uc.UpdateStatus(context.Background(), 1, model.OrderStatusCancelled); !errors.Is(err, domainErrors.ErrInvalidStatusChange) {
		t.Fatalf("expected invalid status change, got %v", err)
	}
}
