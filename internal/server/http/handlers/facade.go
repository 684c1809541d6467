package handlers

import (
	"context"

	"github.com/tezcart/tezcart/internal/domain/model"
	"github.com/tezcart/tezcart/internal/domain/repository"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, name, email, password string) (*model.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (int64, error)
	CurrentUser(ctx context.Context, userID int64) (*model.User, error)
	UpdateEmail(ctx context.Context, userID int64, email string) (*model.User, error)
	UpdatePassword(ctx context.Context, userID int64, current, next string) error
	UpdateTheme(ctx context.Context, userID int64, theme model.Theme) (*model.User, error)
}

// CatalogFacade exposes product and category operations.
type CatalogFacade interface {
	Products(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error)
	ProductBySlug(ctx context.Context, slug string) (*model.Product, error)
	CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	UpdateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	Categories(ctx context.Context) ([]model.Category, error)
	CategoryBySlug(ctx context.Context, slug string) (*model.Category, error)
	CreateCategory(ctx context.Context, category *model.Category) (*model.Category, error)
	UpdateCategory(ctx context.Context, category *model.Category) (*model.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

// CouponFacade exposes coupon operations.
type CouponFacade interface {
	Coupons(ctx context.Context) ([]model.Coupon, error)
	ValidateCoupon(ctx context.Context, code string) (*model.Coupon, error)
	CreateCoupon(ctx context.Context, coupon *model.Coupon) (*model.Coupon, error)
	UpdateCoupon(ctx context.Context, coupon *model.Coupon) (*model.Coupon, error)
	DeleteCoupon(ctx context.Context, id int64) error
}

// OrderFacade exposes checkout and order management operations.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, userID int64, lines []model.CartLine, couponCode string, shipping model.Address) (*model.Order, error)
	OrdersByUser(ctx context.Context, userID int64) ([]model.Order, error)
	AllOrders(ctx context.Context) ([]model.Order, error)
	OrderByID(ctx context.Context, id int64) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error)
	CurrentUser(ctx context.Context, userID int64) (*model.User, error)
}

// UserAdminFacade exposes admin-console user management.
type UserAdminFacade interface {
	Users(ctx context.Context) ([]model.User, error)
	ToggleBan(ctx context.Context, userID int64) (*model.User, error)
	UserStats(ctx context.Context) (*model.UserStats, error)
}

// CommerceFacade aggregates the full set of operations used across handlers.
type CommerceFacade interface {
	AuthFacade
	CatalogFacade
	CouponFacade
	OrderFacade
	UserAdminFacade
}
