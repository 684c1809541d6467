package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/tezcart/tezcart/internal/domain/errors"
	"github.com/tezcart/tezcart/internal/domain/model"
	"github.com/tezcart/tezcart/internal/domain/repository"
	pkgAuth "github.com/tezcart/tezcart/internal/pkg/auth"
)

// AuthUseCase handles account lifecycle, credentials, and session tokens.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// Register creates a new user account and returns it with a session token.
func (u *AuthUseCase) Register(ctx context.Context, name, email, password string) (*model.User, string, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)
	if name == "" {
		return nil, "", domainErrors.ValidationError{Field: "name", Reason: "required"}
	}
	if email == "" {
		return nil, "", domainErrors.ValidationError{Field: "email", Reason: "required"}
	}
	if password == "" {
		return nil, "", domainErrors.ValidationError{Field: "password", Reason: "required"}
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	usr, err := u.users.Create(ctx, name, email, hash)
	if err != nil {
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// Authenticate validates credentials and returns the user with a session
// token. Banned accounts are rejected after the user lookup, before the
// password check, matching the storefront behavior.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if usr.Banned {
		return nil, "", domainErrors.ErrAccountBanned
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseToken extracts user ID from provided token.
func (u *AuthUseCase) ParseToken(token string) (int64, error) {
	if token == "" {
		return 0, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches user by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

// UpdateEmail changes the account email after normalization.
func (u *AuthUseCase) UpdateEmail(ctx context.Context, userID int64, email string) (*model.User, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, domainErrors.ValidationError{Field: "email", Reason: "required"}
	}
	return u.users.UpdateEmail(ctx, userID, email)
}

// UpdatePassword verifies the current password before storing a new hash.
func (u *AuthUseCase) UpdatePassword(ctx context.Context, userID int64, current, next string) error {
	if next == "" {
		return domainErrors.ValidationError{Field: "newPassword", Reason: "required"}
	}

	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := u.hasher.Compare(usr.PasswordHash, current); err != nil {
		return domainErrors.ErrInvalidCredentials
	}

	hash, err := u.hasher.Hash(next)
	if err != nil {
		return err
	}
	return u.users.UpdatePassword(ctx, userID, hash)
}

// UpdateTheme stores the UI theme preference.
func (u *AuthUseCase) UpdateTheme(ctx context.Context, userID int64, theme model.Theme) (*model.User, error) {
	if theme != model.ThemeLight && theme != model.ThemeDark {
		return nil, domainErrors.ValidationError{Field: "theme", Reason: "must be light or dark"}
	}
	return u.users.UpdateTheme(ctx, userID, theme)
}
