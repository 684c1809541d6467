package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/tezcart/tezcart/internal/domain/errors"
	"github.com/tezcart/tezcart/internal/domain/model"
	"github.com/tezcart/tezcart/internal/test"
)

func TestToggleBanFlipsFlag(t *testing.T) {
	users := test.NewUserRepositoryStub()
	usr := users.Add(&model.User{Email: "jo@example.com", Role: model.RoleUser})
	uc := NewUserAdminUseCase(users)

	banned, err := uc.ToggleBan(context.Background(), usr.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !banned.Banned {
		t.Fatal("expected user to be banned")
	}

	unbanned, err := uc.ToggleBan(context.Background(), usr.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if unbanned.Banned {
		t.Fatal("expected user to be unbanned")
	}
}

func TestToggleBanRefusesOwner(t *testing.T) {
	users := test.NewUserRepositoryStub()
	owner := users.Add(&model.User{Email: "owner@example.com", Role: model.RoleOwner})
	uc := NewUserAdminUseCase(users)

	if _, err := uc.ToggleBan(context.Background(), owner.ID); !errors.Is(err, domainErrors.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestToggleBanUnknownUser(t *testing.T) {
	uc := NewUserAdminUseCase(test.NewUserRepositoryStub())

	if _, err := uc.ToggleBan(context.Background(), 42); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestStatsDerivesActiveCount(t *testing.T) {
	users := test.NewUserRepositoryStub()
	users.Add(&model.User{Email: "a@example.com"})
	users.Add(&model.User{Email: "b@example.com", Banned: true})
	users.Add(&model.User{Email: "c@example.com"})
	uc := NewUserAdminUseCase(users)

	stats, err := uc.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Total != 3 || stats.Banned != 1 || stats.Active != 2 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
