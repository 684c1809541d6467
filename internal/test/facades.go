package test

import (
	"context"
	"sync"

	"github.com/tezcart/tezcart/internal/domain/model"
	"github.com/tezcart/tezcart/internal/domain/repository"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn       func(context.Context, string, string, string) (*model.User, string, error)
	AuthenticateFn   func(context.Context, string, string) (*model.User, string, error)
	ParseFn          func(string) (int64, error)
	CurrentUserFn    func(context.Context, int64) (*model.User, error)
	UpdateEmailFn    func(context.Context, int64, string) (*model.User, error)
	UpdatePasswordFn func(context.Context, int64, string, string) error
	UpdateThemeFn    func(context.Context, int64, model.Theme) (*model.User, error)
	User             *model.User
}

func (s AuthFacadeStub) currentUser() *model.User {
	if s.User != nil {
		return s.User
	}
	return &model.User{ID: 1, Name: "Tester", Email: "tester@example.com", Role: model.RoleUser, Theme: model.ThemeLight}
}

// Register returns user and token for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, name, email, password string) (*model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, name, email, password)
	}
	return s.currentUser(), "token", nil
}

// Authenticate returns user and token for successful login scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return s.currentUser(), "token", nil
}

// ParseToken returns stored identifier for authenticated user.
func (s AuthFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

// CurrentUser returns the configured account.
func (s AuthFacadeStub) CurrentUser(ctx context.Context, userID int64) (*model.User, error) {
	if s.CurrentUserFn != nil {
		return s.CurrentUserFn(ctx, userID)
	}
	return s.currentUser(), nil
}

// UpdateEmail delegates to override or echoes the change.
func (s AuthFacadeStub) UpdateEmail(ctx context.Context, userID int64, email string) (*model.User, error) {
	if s.UpdateEmailFn != nil {
		return s.UpdateEmailFn(ctx, userID, email)
	}
	usr := *s.currentUser()
	usr.Email = email
	return &usr, nil
}

// UpdatePassword delegates to override when provided.
func (s AuthFacadeStub) UpdatePassword(ctx context.Context, userID int64, current, next string) error {
	if s.UpdatePasswordFn != nil {
		return s.UpdatePasswordFn(ctx, userID, current, next)
	}
	return nil
}

// UpdateTheme delegates to override or echoes the change.
func (s AuthFacadeStub) UpdateTheme(ctx context.Context, userID int64, theme model.Theme) (*model.User, error) {
	if s.UpdateThemeFn != nil {
		return s.UpdateThemeFn(ctx, userID, theme)
	}
	usr := *s.currentUser()
	usr.Theme = theme
	return &usr, nil
}

// CatalogFacadeStub simulates product and category operations.
type CatalogFacadeStub struct {
	ProductsFn       func(context.Context, repository.ProductFilter) ([]model.Product, error)
	ProductBySlugFn  func(context.Context, string) (*model.Product, error)
	CreateProductFn  func(context.Context, *model.Product) (*model.Product, error)
	UpdateProductFn  func(context.Context, *model.Product) (*model.Product, error)
	DeleteProductFn  func(context.Context, int64) error
	CategoriesFn     func(context.Context) ([]model.Category, error)
	CategoryBySlugFn func(context.Context, string) (*model.Category, error)
	CreateCategoryFn func(context.Context, *model.Category) (*model.Category, error)
	UpdateCategoryFn func(context.Context, *model.Category) (*model.Category, error)
	DeleteCategoryFn func(context.Context, int64) error
}

// Products returns configured products.
func (s CatalogFacadeStub) Products(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx, filter)
	}
	return []model.Product{{ID: 1, Name: "Widget", Slug: "widget", Price: 9.99, Stock: 3}}, nil
}

// ProductBySlug returns a configured product.
func (s CatalogFacadeStub) ProductBySlug(ctx context.Context, slug string) (*model.Product, error) {
	if s.ProductBySlugFn != nil {
		return s.ProductBySlugFn(ctx, slug)
	}
	return &model.Product{ID: 1, Name: "Widget", Slug: slug, Price: 9.99, Stock: 3}, nil
}

// CreateProduct echoes the product with an identifier.
func (s CatalogFacadeStub) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.CreateProductFn != nil {
		return s.CreateProductFn(ctx, product)
	}
	stored := *product
	stored.ID = 1
	return &stored, nil
}

// UpdateProduct echoes the product back.
func (s CatalogFacadeStub) UpdateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.UpdateProductFn != nil {
		return s.UpdateProductFn(ctx, product)
	}
	return product, nil
}

// DeleteProduct delegates to override when provided.
func (s CatalogFacadeStub) DeleteProduct(ctx context.Context, id int64) error {
	if s.DeleteProductFn != nil {
		return s.DeleteProductFn(ctx, id)
	}
	return nil
}

// Categories returns configured categories.
func (s CatalogFacadeStub) Categories(ctx context.Context) ([]model.Category, error) {
	if s.CategoriesFn != nil {
		return s.CategoriesFn(ctx)
	}
	return []model.Category{{ID: 1, Name: "General", Slug: "general"}}, nil
}

// CategoryBySlug returns a configured category.
func (s CatalogFacadeStub) CategoryBySlug(ctx context.Context, slug string) (*model.Category, error) {
	if s.CategoryBySlugFn != nil {
		return s.CategoryBySlugFn(ctx, slug)
	}
	return &model.Category{ID: 1, Name: "General", Slug: slug}, nil
}

// CreateCategory echoes the category with an identifier.
func (s CatalogFacadeStub) CreateCategory(ctx context.Context, category *model.Category) (*model.Category, error) {
	if s.CreateCategoryFn != nil {
		return s.CreateCategoryFn(ctx, category)
	}
	stored := *category
	stored.ID = 1
	return &stored, nil
}

// UpdateCategory echoes the category back.
func (s CatalogFacadeStub) UpdateCategory(ctx context.Context, category *model.Category) (*model.Category, error) {
	if s.UpdateCategoryFn != nil {
		return s.UpdateCategoryFn(ctx, category)
	}
	return category, nil
}

// DeleteCategory delegates to override when provided.
func (s CatalogFacadeStub) DeleteCategory(ctx context.Context, id int64) error {
	if s.DeleteCategoryFn != nil {
		return s.DeleteCategoryFn(ctx, id)
	}
	return nil
}

// CouponFacadeStub simulates coupon operations.
type CouponFacadeStub struct {
	CouponsFn        func(context.Context) ([]model.Coupon, error)
	ValidateCouponFn func(context.Context, string) (*model.Coupon, error)
	CreateCouponFn   func(context.Context, *model.Coupon) (*model.Coupon, error)
	UpdateCouponFn   func(context.Context, *model.Coupon) (*model.Coupon, error)
	DeleteCouponFn   func(context.Context, int64) error
}

// Coupons returns configured coupons.
func (s CouponFacadeStub) Coupons(ctx context.Context) ([]model.Coupon, error) {
	if s.CouponsFn != nil {
		return s.CouponsFn(ctx)
	}
	return []model.Coupon{{ID: 1, Code: "SAVE10", Type: model.CouponTypePercentage, Value: 10, Active: true}}, nil
}

// ValidateCoupon returns a configured coupon.
func (s CouponFacadeStub) ValidateCoupon(ctx context.Context, code string) (*model.Coupon, error) {
	if s.ValidateCouponFn != nil {
		return s.ValidateCouponFn(ctx, code)
	}
	return &model.Coupon{ID: 1, Code: code, Type: model.CouponTypePercentage, Value: 10, Active: true}, nil
}

// CreateCoupon echoes the coupon with an identifier.
func (s CouponFacadeStub) CreateCoupon(ctx context.Context, coupon *model.Coupon) (*model.Coupon, error) {
	if s.CreateCouponFn != nil {
		return s.CreateCouponFn(ctx, coupon)
	}
	stored := *coupon
	stored.ID = 1
	return &stored, nil
}

// UpdateCoupon echoes the coupon back.
func (s CouponFacadeStub) UpdateCoupon(ctx context.Context, coupon *model.Coupon) (*model.Coupon, error) {
	if s.UpdateCouponFn != nil {
		return s.UpdateCouponFn(ctx, coupon)
	}
	return coupon, nil
}

// DeleteCoupon delegates to override when provided.
func (s CouponFacadeStub) DeleteCoupon(ctx context.Context, id int64) error {
	if s.DeleteCouponFn != nil {
		return s.DeleteCouponFn(ctx, id)
	}
	return nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	PlaceOrderFn   func(context.Context, int64, []model.CartLine, string, model.Address) (*model.Order, error)
	OrdersByUserFn func(context.Context, int64) ([]model.Order, error)
	AllOrdersFn    func(context.Context) ([]model.Order, error)
	OrderByIDFn    func(context.Context, int64) (*model.Order, error)
	UpdateStatusFn func(context.Context, int64, model.OrderStatus) (*model.Order, error)
}

// PlaceOrder delegates to override or returns a pending order.
func (s OrderFacadeStub) PlaceOrder(ctx context.Context, userID int64, lines []model.CartLine, couponCode string, shipping model.Address) (*model.Order, error) {
	if s.PlaceOrderFn != nil {
		return s.PlaceOrderFn(ctx, userID, lines, couponCode, shipping)
	}
	return &model.Order{ID: 1, Number: "n-1", UserID: userID, Status: model.OrderStatusPending, Shipping: shipping}, nil
}

// OrdersByUser returns predefined orders for given user.
func (s OrderFacadeStub) OrdersByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.OrdersByUserFn != nil {
		return s.OrdersByUserFn(ctx, userID)
	}
	return []model.Order{{ID: 1, UserID: userID, Status: model.OrderStatusPending}}, nil
}

// AllOrders returns predefined orders.
func (s OrderFacadeStub) AllOrders(ctx context.Context) ([]model.Order, error) {
	if s.AllOrdersFn != nil {
		return s.AllOrdersFn(ctx)
	}
	return []model.Order{{ID: 1, UserID: 1, Status: model.OrderStatusPending}}, nil
}

// OrderByID returns a predefined order.
func (s OrderFacadeStub) OrderByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.OrderByIDFn != nil {
		return s.OrderByIDFn(ctx, id)
	}
	return &model.Order{ID: id, UserID: 1, Status: model.OrderStatusPending}, nil
}

// UpdateOrderStatus delegates to override or echoes the change.
func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, status)
	}
	return &model.Order{ID: id, UserID: 1, Status: status}, nil
}

// UserAdminFacadeStub simulates admin-console user management.
type UserAdminFacadeStub struct {
	UsersFn     func(context.Context) ([]model.User, error)
	ToggleBanFn func(context.Context, int64) (*model.User, error)
	StatsFn     func(context.Context) (*model.UserStats, error)
}

// Users returns configured accounts.
func (s UserAdminFacadeStub) Users(ctx context.Context) ([]model.User, error) {
	if s.UsersFn != nil {
		return s.UsersFn(ctx)
	}
	return []model.User{{ID: 1, Name: "Tester", Email: "tester@example.com", Role: model.RoleUser}}, nil
}

// ToggleBan delegates to override or flips a default account.
func (s UserAdminFacadeStub) ToggleBan(ctx context.Context, userID int64) (*model.User, error) {
	if s.ToggleBanFn != nil {
		return s.ToggleBanFn(ctx, userID)
	}
	return &model.User{ID: userID, Banned: true}, nil
}

// UserStats returns configured counters.
func (s UserAdminFacadeStub) UserStats(ctx context.Context) (*model.UserStats, error) {
	if s.StatsFn != nil {
		return s.StatsFn(ctx)
	}
	return &model.UserStats{Total: 2, Banned: 1, Active: 1}, nil
}

// CommerceFacadeStub aggregates facade dependencies for HTTP layer tests.
type CommerceFacadeStub struct {
	AuthFacadeStub
	CatalogFacadeStub
	CouponFacadeStub
	OrderFacadeStub
	UserAdminFacadeStub
}

// CouponExpirerStub records sweep invocations for worker tests.
type CouponExpirerStub struct {
	ExpireFn func(context.Context) (int64, error)
	Count    int64
	Err      error

	mu    sync.Mutex
	calls int
}

// ExpireCoupons returns configured result and tracks invocations.
func (s *CouponExpirerStub) ExpireCoupons(ctx context.Context) (int64, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.ExpireFn != nil {
		return s.ExpireFn(ctx)
	}
	if s.Err != nil {
		return 0, s.Err
	}
	return s.Count, nil
}

// Calls reports how many sweeps ran.
func (s *CouponExpirerStub) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
