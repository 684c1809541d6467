package repository

import (
	"context"

	"github.com/tezcart/tezcart/internal/domain/model"
)

// UserRepository describes persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, name, email, passwordHash string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	UpdateEmail(ctx context.Context, id int64, email string) (*model.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	UpdateTheme(ctx context.Context, id int64, theme model.Theme) (*model.User, error)
	SetBanned(ctx context.Context, id int64, banned bool) (*model.User, error)
	Stats(ctx context.Context) (total, banned int64, err error)
}
