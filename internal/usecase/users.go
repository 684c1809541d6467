package usecase

import (
	"context"

	domainErrors "github.com/tezcart/tezcart/internal/domain/errors"
	"github.com/tezcart/tezcart/internal/domain/model"
	"github.com/tezcart/tezcart/internal/domain/repository"
)

// UserAdminUseCase covers admin-console user management.
type UserAdminUseCase struct {
	users repository.UserRepository
}

// NewUserAdminUseCase constructs UserAdminUseCase.
func NewUserAdminUseCase(users repository.UserRepository) *UserAdminUseCase {
	return &UserAdminUseCase{users: users}
}

// List returns all accounts, newest first.
func (u *UserAdminUseCase) List(ctx context.Context) ([]model.User, error) {
	return u.users.List(ctx)
}

// ToggleBan flips the ban flag on an account. Owner accounts cannot be
// banned.
func (u *UserAdminUseCase) ToggleBan(ctx context.Context, id int64) (*model.User, error) {
	usr, err := u.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if usr.Role == model.RoleOwner {
		return nil, domainErrors.ErrForbidden
	}
	return u.users.SetBanned(ctx, id, !usr.Banned)
}

// Stats returns total, banned, and active account counts.
func (u *UserAdminUseCase) Stats(ctx context.Context) (*model.UserStats, error) {
	total, banned, err := u.users.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return &model.UserStats{Total: total, Banned: banned, Active: total - banned}, nil
}
