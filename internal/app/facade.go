package app

import (
	"context"

	"github.com/tezcart/tezcart/internal/domain/model"
	"github.com/tezcart/tezcart/internal/domain/repository"
	"github.com/tezcart/tezcart/internal/usecase"
)

// CommerceFacade aggregates the application's use cases behind a single
// surface consumed by the HTTP layer and the background sweeper.
type CommerceFacade struct {
	auth     *usecase.AuthUseCase
	admin    *usecase.UserAdminUseCase
	catalog  *usecase.CatalogUseCase
	coupons  *usecase.CouponUseCase
	checkout *usecase.CheckoutUseCase
}

// NewCommerceFacade constructs CommerceFacade.
func NewCommerceFacade(
	auth *usecase.AuthUseCase,
	admin *usecase.UserAdminUseCase,
	catalog *usecase.CatalogUseCase,
	coupons *usecase.CouponUseCase,
	checkout *usecase.CheckoutUseCase,
) *CommerceFacade {
	return &CommerceFacade{auth: auth, admin: admin, catalog: catalog, coupons: coupons, checkout: checkout}
}

// --- authentication ---

func (f *CommerceFacade) Register(ctx context.Context, name, email, password string) (*model.User, string, error) {
	return f.auth.Register(ctx, name, email, password)
}

func (f *CommerceFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *CommerceFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *CommerceFacade) CurrentUser(ctx context.Context, userID int64) (*model.User, error) {
	return f.auth.GetByID(ctx, userID)
}

func (f *CommerceFacade) UpdateEmail(ctx context.Context, userID int64, email string) (*model.User, error) {
	return f.auth.UpdateEmail(ctx, userID, email)
}

func (f *CommerceFacade) UpdatePassword(ctx context.Context, userID int64, current, next string) error {
	return f.auth.UpdatePassword(ctx, userID, current, next)
}

func (f *CommerceFacade) UpdateTheme(ctx context.Context, userID int64, theme model.Theme) (*model.User, error) {
	return f.auth.UpdateTheme(ctx, userID, theme)
}

// --- user administration ---

func (f *CommerceFacade) Users(ctx context.Context) ([]model.User, error) {
	return f.admin.List(ctx)
}

func (f *CommerceFacade) ToggleBan(ctx context.Context, userID int64) (*model.User, error) {
	return f.admin.ToggleBan(ctx, userID)
}

func (f *CommerceFacade) UserStats(ctx context.Context) (*model.UserStats, error) {
	return f.admin.Stats(ctx)
}

// --- catalog ---

func (f *CommerceFacade) Products(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
	return f.catalog.Products(ctx, filter)
}

func (f *CommerceFacade) ProductBySlug(ctx context.Context, slug string) (*model.Product, error) {
	return f.catalog.ProductBySlug(ctx, slug)
}

func (f *CommerceFacade) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	return f.catalog.CreateProduct(ctx, product)
}

func (f *CommerceFacade) UpdateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	return f.catalog.UpdateProduct(ctx, product)
}

func (f *CommerceFacade) DeleteProduct(ctx context.Context, id int64) error {
	return f.catalog.DeleteProduct(ctx, id)
}

func (f *CommerceFacade) Categories(ctx context.Context) ([]model.Category, error) {
	return f.catalog.Categories(ctx)
}

func (f *CommerceFacade) CategoryBySlug(ctx context.Context, slug string) (*model.Category, error) {
	return f.catalog.CategoryBySlug(ctx, slug)
}

func (f *CommerceFacade) CreateCategory(ctx context.Context, category *model.Category) (*model.Category, error) {
	return f.catalog.CreateCategory(ctx, category)
}

func (f *CommerceFacade) UpdateCategory(ctx context.Context, category *model.Category) (*model.Category, error) {
	return f.catalog.UpdateCategory(ctx, category)
}

func (f *CommerceFacade) DeleteCategory(ctx context.Context, id int64) error {
	return f.catalog.DeleteCategory(ctx, id)
}

// --- coupons ---

func (f *CommerceFacade) Coupons(ctx context.Context) ([]model.Coupon, error) {
	return f.coupons.List(ctx)
}

func (f *CommerceFacade) ValidateCoupon(ctx context.Context, code string) (*model.Coupon, error) {
	return f.coupons.Validate(ctx, code)
}

func (f *CommerceFacade) CreateCoupon(ctx context.Context, coupon *model.Coupon) (*model.Coupon, error) {
	return f.coupons.Create(ctx, coupon)
}

func (f *CommerceFacade) UpdateCoupon(ctx context.Context, coupon *model.Coupon) (*model.Coupon, error) {
	return f.coupons.Update(ctx, coupon)
}

func (f *CommerceFacade) DeleteCoupon(ctx context.Context, id int64) error {
	return f.coupons.Delete(ctx, id)
}

func (f *CommerceFacade) ExpireCoupons(ctx context.Context) (int64, error) {
	return f.coupons.DeactivateExpired(ctx)
}

// --- orders ---

func (f *CommerceFacade) PlaceOrder(ctx context.Context, userID int64, lines []model.CartLine, couponCode string, shipping model.Address) (*model.Order, error) {
	return f.checkout.PlaceOrder(ctx, userID, lines, couponCode, shipping)
}

func (f *CommerceFacade) OrdersByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.checkout.OrdersByUser(ctx, userID)
}

func (f *CommerceFacade) AllOrders(ctx context.Context) ([]model.Order, error) {
	return f.checkout.AllOrders(ctx)
}

func (f *CommerceFacade) OrderByID(ctx context.Context, id int64) (*model.Order, error) {
	return f.checkout.OrderByID(ctx, id)
}

func (f *CommerceFacade) UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	return f.checkout.UpdateStatus(ctx, id, status)
}
