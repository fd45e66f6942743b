package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ulysse/cms-api/internal/core/domain"
	"github.com/ulysse/cms-api/internal/infrastructure/db/memory"
	"github.com/ulysse/cms-api/internal/infrastructure/security"
)

type stubUserStore struct {
	findFn func(ctx context.Context, email string) (*domain.User, error)
}

func (s *stubUserStore) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.findFn(ctx, email)
}

func (s *stubUserStore) Create(context.Context, *domain.User) (*domain.User, error) {
	return nil, errors.New("not implemented")
}

func newGateFixture(t *testing.T) (*security.TokenIssuer, *memory.UserStore) {
	t.Helper()
	users := memory.NewUserStore()
	if _, err := users.Create(context.Background(), &domain.User{Email: "alice@example.com", Role: domain.RoleAdmin}); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return security.NewTokenIssuer([]byte("secret"), time.Minute), users
}

func sign(t *testing.T, tokens *security.TokenIssuer, email, role string) string {
	t.Helper()
	token, err := tokens.Issue(domain.Identity{Email: email, Role: role})
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokens, users := newGateFixture(t)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TokenHeader, sign(t, tokens, "alice@example.com", domain.RoleAdmin))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(tokens, users)(func(c echo.Context) error {
		called = true
		user, ok := CurrentUser(c)
		if !ok {
			t.Fatalf("current user not set")
		}
		if user.Email != "alice@example.com" || user.Role != domain.RoleAdmin {
			t.Fatalf("unexpected user: %+v", user)
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

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	tokens, users := newGateFixture(t)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+sign(t, tokens, "alice@example.com", domain.RoleAdmin))
	c := e.NewContext(req, httptest.NewRecorder())

	handler := Auth(tokens, users)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tokens, users := newGateFixture(t)
	other := security.NewTokenIssuer([]byte("other-secret"), time.Minute)

	for name, token := range map[string]string{
		"garbage":      "not-a-token",
		"wrong secret": sign(t, other, "alice@example.com", domain.RoleAdmin),
	} {
		t.Run(name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(TokenHeader, token)
			c := e.NewContext(req, httptest.NewRecorder())

			handler := Auth(tokens, users)(func(c echo.Context) error {
				t.Fatalf("should not reach next")
				return nil
			})
			if err := handler(c); !errors.Is(err, domain.ErrInvalidToken) {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	_, users := newGateFixture(t)
	issued := time.Now().Add(-time.Hour)
	stale := security.NewTokenIssuer([]byte("secret"), 30*time.Minute).WithClock(func() time.Time { return issued })
	verifier := security.NewTokenIssuer([]byte("secret"), 30*time.Minute)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TokenHeader, sign(t, stale, "alice@example.com", domain.RoleAdmin))
	c := e.NewContext(req, httptest.NewRecorder())

	handler := Auth(verifier, users)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})
	if err := handler(c); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthMiddleware_UnknownUserForwardsWithoutIdentity(t *testing.T) {
	tokens, users := newGateFixture(t)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TokenHeader, sign(t, tokens, "gone@example.com", domain.RoleClient))
	c := e.NewContext(req, httptest.NewRecorder())

	called := false
	handler := Auth(tokens, users)(func(c echo.Context) error {
		called = true
		if _, ok := CurrentUser(c); ok {
			t.Fatalf("expected no current user")
		}
		return nil
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthMiddleware_StoreErrorIsInvalidToken(t *testing.T) {
	tokens, _ := newGateFixture(t)
	users := &stubUserStore{findFn: func(context.Context, string) (*domain.User, error) {
		return nil, errors.New("connection refused")
	}}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TokenHeader, sign(t, tokens, "alice@example.com", domain.RoleAdmin))
	c := e.NewContext(req, httptest.NewRecorder())

	handler := Auth(tokens, users)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})
	if err := handler(c); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthMiddleware_RoleComesFromStoreNotToken(t *testing.T) {
	tokens, users := newGateFixture(t)
	if _, err := users.Create(context.Background(), &domain.User{Email: "bob@example.com", Role: domain.RoleClient}); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TokenHeader, sign(t, tokens, "bob@example.com", domain.RoleAdmin))
	c := e.NewContext(req, httptest.NewRecorder())

	handler := Auth(tokens, users)(RequireAdmin()(func(c echo.Context) error {
		t.Fatalf("client should not pass the admin check")
		return nil
	}))
	if err := handler(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
