package test

import (
	"context"
	"strings"
	"time"

	domainErrors "github.com/tezcart/tezcart/internal/domain/errors"
	"github.com/tezcart/tezcart/internal/domain/model"
	"github.com/tezcart/tezcart/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	ByEmail map[string]*model.User
	ByID    map[int64]*model.User
	Next    int64
	Err     error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		ByEmail: make(map[string]*model.User),
		ByID:    make(map[int64]*model.User),
		Next:    1,
	}
}

// Add inserts a prepared user directly, assigning the next identifier when
// the user has none.
func (s *UserRepositoryStub) Add(user *model.User) *model.User {
	if user.ID == 0 {
		user.ID = s.Next
		s.Next++
	} else if user.ID >= s.Next {
		s.Next = user.ID + 1
	}
	s.ByEmail[user.Email] = user
	s.ByID[user.ID] = user
	return user
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, name, email, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.ByEmail[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	user := &model.User{
		ID:           s.Next,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         model.RoleUser,
		Theme:        model.ThemeLight,
	}
	s.Next++
	s.ByEmail[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByEmail[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns every stored user.
func (s *UserRepositoryStub) List(ctx context.Context) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	users := make([]model.User, 0, len(s.ByID))
	for _, u := range s.ByID {
		users = append(users, *u)
	}
	return users, nil
}

// UpdateEmail swaps the stored email, enforcing uniqueness.
func (s *UserRepositoryStub) UpdateEmail(ctx context.Context, id int64, email string) (*model.User, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if other, exists := s.ByEmail[email]; exists && other.ID != id {
		return nil, domainErrors.ErrAlreadyExists
	}
	delete(s.ByEmail, user.Email)
	user.Email = email
	s.ByEmail[email] = user
	return user, nil
}

// UpdatePassword replaces the stored hash.
func (s *UserRepositoryStub) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	user.PasswordHash = passwordHash
	return nil
}

// UpdateTheme stores the UI preference.
func (s *UserRepositoryStub) UpdateTheme(ctx context.Context, id int64, theme model.Theme) (*model.User, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Theme = theme
	return user, nil
}

// SetBanned flips the banned flag.
func (s *UserRepositoryStub) SetBanned(ctx context.Context, id int64, banned bool) (*model.User, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Banned = banned
	return user, nil
}

// Stats counts stored users.
func (s *UserRepositoryStub) Stats(ctx context.Context) (int64, int64, error) {
	if s.Err != nil {
		return 0, 0, s.Err
	}
	var total, banned int64
	for _, u := range s.ByID {
		total++
		if u.Banned {
			banned++
		}
	}
	return total, banned, nil
}

// CategoryRepositoryStub stores categories in-memory for tests.
type CategoryRepositoryStub struct {
	Items map[int64]*model.Category
	Next  int64
	Err   error
}

// NewCategoryRepositoryStub constructs stub repository with initialized map.
func NewCategoryRepositoryStub() *CategoryRepositoryStub {
	return &CategoryRepositoryStub{Items: make(map[int64]*model.Category), Next: 1}
}

// Create stores category enforcing slug uniqueness.
func (s *CategoryRepositoryStub) Create(ctx context.Context, category *model.Category) (*model.Category, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, c := range s.Items {
		if c.Slug == category.Slug {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	stored := *category
	stored.ID = s.Next
	s.Next++
	s.Items[stored.ID] = &stored
	return &stored, nil
}

// GetBySlug fetches category by slug or returns not found.
func (s *CategoryRepositoryStub) GetBySlug(ctx context.Context, slug string) (*model.Category, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, c := range s.Items {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns every stored category.
func (s *CategoryRepositoryStub) List(ctx context.Context) ([]model.Category, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	categories := make([]model.Category, 0, len(s.Items))
	for _, c := range s.Items {
		categories = append(categories, *c)
	}
	return categories, nil
}

// Update replaces the stored category.
func (s *CategoryRepositoryStub) Update(ctx context.Context, category *model.Category) (*model.Category, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, ok := s.Items[category.ID]; !ok {
		return nil, domainErrors.ErrNotFound
	}
	stored := *category
	s.Items[category.ID] = &stored
	return &stored, nil
}

// Delete removes the category.
func (s *CategoryRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Items[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Items, id)
	return nil
}

// ProductRepositoryStub stores products in-memory for tests.
type ProductRepositoryStub struct {
	Items map[int64]*model.Product
	Next  int64
	Err   error
}

// NewProductRepositoryStub constructs stub repository with initialized map.
func NewProductRepositoryStub() *ProductRepositoryStub {
	return &ProductRepositoryStub{Items: make(map[int64]*model.Product), Next: 1}
}

// Add inserts a prepared product directly.
func (s *ProductRepositoryStub) Add(product *model.Product) *model.Product {
	if product.ID == 0 {
		product.ID = s.Next
		s.Next++
	} else if product.ID >= s.Next {
		s.Next = product.ID + 1
	}
	s.Items[product.ID] = product
	return product
}

// Create stores product enforcing slug uniqueness.
func (s *ProductRepositoryStub) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, p := range s.Items {
		if p.Slug == product.Slug {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	stored := *product
	stored.ID = s.Next
	s.Next++
	s.Items[stored.ID] = &stored
	return &stored, nil
}

// GetByID fetches product by identifier or returns not found.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if p, ok := s.Items[id]; ok {
		return p, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetBySlug fetches product by slug or returns not found.
func (s *ProductRepositoryStub) GetBySlug(ctx context.Context, slug string) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, p := range s.Items {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns stored products honoring the featured filter.
func (s *ProductRepositoryStub) List(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	products := make([]model.Product, 0, len(s.Items))
	for _, p := range s.Items {
		if filter.Featured != nil && p.Featured != *filter.Featured {
			continue
		}
		products = append(products, *p)
	}
	return products, nil
}

// Update replaces the stored product.
func (s *ProductRepositoryStub) Update(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, ok := s.Items[product.ID]; !ok {
		return nil, domainErrors.ErrNotFound
	}
	stored := *product
	s.Items[product.ID] = &stored
	return &stored, nil
}

// Delete removes the product.
func (s *ProductRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Items[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Items, id)
	return nil
}

// CouponRepositoryStub stores coupons in-memory for tests.
type CouponRepositoryStub struct {
	Items             map[int64]*model.Coupon
	Next              int64
	Err               error
	FindActiveFn      func(context.Context, string) (*model.Coupon, error)
	DeactivateCount   int64
	DeactivateErr     error
	DeactivateInvoked int
}

// NewCouponRepositoryStub constructs stub repository with initialized map.
func NewCouponRepositoryStub() *CouponRepositoryStub {
	return &CouponRepositoryStub{Items: make(map[int64]*model.Coupon), Next: 1}
}

// Add inserts a prepared coupon directly.
func (s *CouponRepositoryStub) Add(coupon *model.Coupon) *model.Coupon {
	if coupon.ID == 0 {
		coupon.ID = s.Next
		s.Next++
	} else if coupon.ID >= s.Next {
		s.Next = coupon.ID + 1
	}
	s.Items[coupon.ID] = coupon
	return coupon
}

// Create stores coupon enforcing code uniqueness.
func (s *CouponRepositoryStub) Create(ctx context.Context, coupon *model.Coupon) (*model.Coupon, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, c := range s.Items {
		if c.Code == coupon.Code {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	stored := *coupon
	stored.ID = s.Next
	s.Next++
	s.Items[stored.ID] = &stored
	return &stored, nil
}

// FindActiveByCode matches stored active, unexpired coupons
// case-insensitively.
func (s *CouponRepositoryStub) FindActiveByCode(ctx context.Context, code string) (*model.Coupon, error) {
	if s.FindActiveFn != nil {
		return s.FindActiveFn(ctx, code)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	for _, c := range s.Items {
		if strings.EqualFold(c.Code, code) && c.Active && c.ExpiresAt.After(time.Now()) {
			return c, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns every stored coupon.
func (s *CouponRepositoryStub) List(ctx context.Context) ([]model.Coupon, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	coupons := make([]model.Coupon, 0, len(s.Items))
	for _, c := range s.Items {
		coupons = append(coupons, *c)
	}
	return coupons, nil
}

// Update replaces the stored coupon.
func (s *CouponRepositoryStub) Update(ctx context.Context, coupon *model.Coupon) (*model.Coupon, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, ok := s.Items[coupon.ID]; !ok {
		return nil, domainErrors.ErrNotFound
	}
	stored := *coupon
	s.Items[coupon.ID] = &stored
	return &stored, nil
}

// Delete removes the coupon.
func (s *CouponRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Items[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Items, id)
	return nil
}

// DeactivateExpired returns the configured count and tracks invocations.
func (s *CouponRepositoryStub) DeactivateExpired(ctx context.Context) (int64, error) {
	s.DeactivateInvoked++
	if s.DeactivateErr != nil {
		return 0, s.DeactivateErr
	}
	return s.DeactivateCount, nil
}

// OrderRepositoryStub allows tests to customize order persistence behaviour.
type OrderRepositoryStub struct {
	CreateFn       func(context.Context, *model.Order) (*model.Order, error)
	GetByIDFn      func(context.Context, int64) (*model.Order, error)
	ListByUserFn   func(context.Context, int64) ([]model.Order, error)
	ListAllFn      func(context.Context) ([]model.Order, error)
	UpdateStatusFn func(context.Context, int64, model.OrderStatus) (*model.Order, error)

	Created []model.Order
	Orders  []model.Order
}

// Create tracks invocations and returns the order with an identifier.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	stored := *order
	stored.ID = int64(len(s.Created) + 1)
	s.Created = append(s.Created, stored)
	return &stored, nil
}

// GetByID returns matched order either via override or stored slice.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, o := range s.Orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByUser returns orders from configured slice filtered by user.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	orders := make([]model.Order, 0, len(s.Orders))
	for _, o := range s.Orders {
		if o.UserID == userID {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

// ListAll returns the full configured slice.
func (s *OrderRepositoryStub) ListAll(ctx context.Context) ([]model.Order, error) {
	if s.ListAllFn != nil {
		return s.ListAllFn(ctx)
	}
	return s.Orders, nil
}

// UpdateStatus applies the transition rules against the stored slice.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, status)
	}
	for i, o := range s.Orders {
		if o.ID != id {
			continue
		}
		if !o.Status.CanTransition(status) {
			return nil, domainErrors.ErrInvalidStatusChange
		}
		s.Orders[i].Status = status
		order := s.Orders[i]
		return &order, nil
	}
	return nil, domainErrors.ErrNotFound
}
