package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mikens/recetas-api/internal/core/domain"
	"github.com/mikens/recetas-api/internal/core/service"
)

const adminEmail = "admin@mikens.com"

func issueToken(t *testing.T, email string) string {
	t.Helper()
	tokens := service.NewTokenService("secret", time.Hour)
	signed, err := tokens.Issue(&domain.User{ID: "user-1", Nombre: "Ana", Email: email})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return signed
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, "ana@x.com"))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth(service.NewTokenService("secret", time.Hour), adminEmail)
	handler := mw(func(c echo.Context) error {
		called = true
		if c.Get("user_id") != "user-1" {
			t.Fatalf("user_id not set")
		}
		if c.Get("email") != "ana@x.com" {
			t.Fatalf("email not set")
		}
		if c.Get("nombre") != "Ana" {
			t.Fatalf("nombre not set")
		}
		if c.Get("role") != "member" {
			t.Fatalf("expected member role, got %v", c.Get("role"))
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_AdminEmailGetsAdminRole(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, adminEmail))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(service.NewTokenService("secret", time.Hour), adminEmail)
	handler := mw(func(c echo.Context) error {
		if c.Get("role") != "admin" {
			t.Fatalf("expected admin role, got %v", c.Get("role"))
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(service.NewTokenService("secret", time.Hour), adminEmail)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidHeaderFormat(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(service.NewTokenService("secret", time.Hour), adminEmail)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_WrongKey(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, "ana@x.com"))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(service.NewTokenService("another-secret", time.Hour), adminEmail)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(service.NewTokenService("secret", time.Hour), adminEmail)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
