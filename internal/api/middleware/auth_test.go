package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/adboard/listings-api/internal/core/domain"
	"github.com/adboard/listings-api/internal/core/ports"
)

type stubUserStore struct {
	users map[int64]*domain.User
}

func (s *stubUserStore) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (s *stubUserStore) Create(context.Context, *domain.User) (*domain.User, error) {
	panic("not used")
}
func (s *stubUserStore) FindByUsername(context.Context, string) (*domain.User, error) {
	panic("not used")
}
func (s *stubUserStore) List(context.Context, int, int) ([]domain.User, error) {
	panic("not used")
}
func (s *stubUserStore) Update(context.Context, int64, ports.UserPatch) (*domain.User, error) {
	panic("not used")
}
func (s *stubUserStore) Delete(context.Context, int64) error {
	panic("not used")
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func validClaims(userID string) jwt.MapClaims {
	now := time.Now().UTC()
	return jwt.MapClaims{
		"sub":      userID,
		"username": "alice",
		"group":    domain.GroupUser,
		"iat":      now.Unix(),
		"exp":      now.Add(time.Hour).Unix(),
	}
}

func aliceStore() *stubUserStore {
	return &stubUserStore{users: map[int64]*domain.User{
		1: {ID: 1, Username: "alice", Group: domain.GroupUser},
	}}
}

func TestAuth_ValidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "secret", validClaims("1")))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth("secret", aliceStore())(func(c echo.Context) error {
		called = true
		caller, ok := c.Get(CallerKey).(*domain.User)
		if !ok || caller == nil {
			t.Fatalf("caller not set")
		}
		if caller.ID != 1 || caller.Username != "alice" {
			t.Fatalf("unexpected caller: %+v", caller)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth("secret", aliceStore())(func(c echo.Context) error {
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

func TestAuth_RejectsBadTokens(t *testing.T) {
	expired := validClaims("1")
	expired["exp"] = time.Now().UTC().Add(-time.Hour).Unix()

	cases := []struct {
		name   string
		header string
	}{
		{"wrong scheme", "Token abc"},
		{"garbage token", "Bearer not-a-token"},
		{"wrong secret", "Bearer " + signToken(t, "other", validClaims("1"))},
		{"expired", "Bearer " + signToken(t, "secret", expired)},
		{"non-numeric subject", "Bearer " + signToken(t, "secret", validClaims("abc"))},
		{"deleted user", "Bearer " + signToken(t, "secret", validClaims("42"))},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", tc.header)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := Auth("secret", aliceStore())(func(c echo.Context) error {
				t.Fatalf("should not reach next")
				return nil
			})
			if err := handler(c); err != nil {
				e.HTTPErrorHandler(err, c)
			}
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}

func TestOptionalAuth_AnonymousPassesThrough(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := OptionalAuth("secret", aliceStore())(func(c echo.Context) error {
		called = true
		if c.Get(CallerKey) != nil {
			t.Fatalf("expected no caller for anonymous request")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestOptionalAuth_InvalidTokenStillRejected(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := OptionalAuth("secret", aliceStore())(func(c echo.Context) error {
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

func TestOptionalAuth_ValidTokenSetsCaller(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "secret", validClaims("1")))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := OptionalAuth("secret", aliceStore())(func(c echo.Context) error {
		caller, _ := c.Get(CallerKey).(*domain.User)
		if caller == nil || caller.ID != 1 {
			t.Fatalf("expected caller alice, got %+v", caller)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}
