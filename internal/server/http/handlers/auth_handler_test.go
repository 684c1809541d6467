package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/tezcart/tezcart/internal/domain/errors"
	"github.com/tezcart/tezcart/internal/domain/model"
	"github.com/tezcart/tezcart/internal/test"
)

func newAuthEngine(facade AuthFacade) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	handler := NewAuthHandler(facade, time.Hour)
	engine.POST("/api/auth/register", handler.Register)
	engine.POST("/api/auth/login", handler.Login)
	engine.POST("/api/auth/logout", handler.Logout)
	engine.GET("/api/auth/me", handler.Me)
	engine.PUT("/api/auth/password", handler.UpdatePassword)
	engine.PUT("/api/auth/theme", handler.UpdateTheme)
	return engine
}

func decodeUserEnvelope(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var payload struct {
		User map[string]any `json:"user"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	return payload.User
}

func TestRegisterSetsSessionCookie(t *testing.T) {
	engine := newAuthEngine(test.AuthFacadeStub{
		User: &model.User{ID: 3, Name: "Jo", Email: "jo@example.com", Role: model.RoleUser, Theme: model.ThemeLight},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{"name":"Jo","email":"jo@example.com","password":"secret"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	user := decodeUserEnvelope(t, rec.Body.Bytes())
	if user["email"] != "jo@example.com" {
		t.Fatalf("unexpected user payload: %v", user)
	}
	if _, hasHash := user["passwordHash"]; hasHash {
		t.Fatal("password hash must not be exposed")
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != "tezcart_token" || cookies[0].Value != "token" {
		t.Fatalf("expected session cookie, got %v", cookies)
	}
	if !cookies[0].HttpOnly {
		t.Fatal("expected http-only cookie")
	}
}

func TestRegisterConflict(t *testing.T) {
	engine := newAuthEngine(test.AuthFacadeStub{
		RegisterFn: func(context.Context, string, string, string) (*model.User, string, error) {
			return nil, "", domainErrors.ErrAlreadyExists
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{"name":"Jo","email":"jo@example.com","password":"secret"}`))
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestRegisterRejectsMalformedJSON(t *testing.T) {
	engine := newAuthEngine(test.AuthFacadeStub{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{"name":`))
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	engine := newAuthEngine(test.AuthFacadeStub{
		AuthenticateFn: func(context.Context, string, string) (*model.User, string, error) {
			return nil, "", domainErrors.ErrInvalidCredentials
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"jo@example.com","password":"bad"}`))
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestLoginPassesCredentialsThrough(t *testing.T) {
	email := test.RandomASCIIString(7, 14) + "@example.com"
	password := test.RandomASCIIString(16, 32)

	var gotEmail, gotPassword string
	engine := newAuthEngine(test.AuthFacadeStub{
		AuthenticateFn: func(_ context.Context, e, p string) (*model.User, string, error) {
			gotEmail, gotPassword = e, p
			return &model.User{ID: 1, Email: e}, "token", nil
		},
	})

	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		t.Fatalf("unexpected marshal error: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(string(body)))
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotEmail != email || gotPassword != password {
		t.Fatalf("credentials not passed through: %q %q", gotEmail, gotPassword)
	}
}

func TestLoginBannedAccount(t *testing.T) {
	engine := newAuthEngine(test.AuthFacadeStub{
		AuthenticateFn: func(context.Context, string, string) (*model.User, string, error) {
			return nil, "", domainErrors.ErrAccountBanned
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"jo@example.com","password":"secret"}`))
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	engine := newAuthEngine(test.AuthFacadeStub{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge != -1 {
		t.Fatalf("expected expired cookie, got %v", cookies)
	}
}

func TestUpdatePasswordWrongCurrent(t *testing.T) {
	engine := newAuthEngine(test.AuthFacadeStub{
		UpdatePasswordFn: func(context.Context, int64, string, string) error {
			return domainErrors.ErrInvalidCredentials
		},
	})

	req := httptest.NewRequest(http.MethodPut, "/api/auth/password", strings.NewReader(`{"currentPassword":"bad","newPassword":"new"}`))
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestUpdateThemeReturnsUser(t *testing.T) {
	engine := newAuthEngine(test.AuthFacadeStub{})

	req := httptest.NewRequest(http.MethodPut, "/api/auth/theme", strings.NewReader(`{"theme":"dark"}`))
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	user := decodeUserEnvelope(t, rec.Body.Bytes())
	if user["theme"] != "dark" {
		t.Fatalf("unexpected theme: %v", user["theme"])
	}
}
