package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/adboard/listings-api/internal/core/domain"
	"github.com/adboard/listings-api/internal/core/ports"
)

// CallerKey is the echo context key under which the authenticated
// *domain.User is stored. Absent or nil means anonymous.
const CallerKey = "caller"

// All token decode failures collapse to this one message so nothing leaks
// about which check failed.
const invalidTokenMsg = "invalid or expired token"

// Auth validates the bearer token, resolves the caller from the store and
// injects it into the context. Requests without an Authorization header are
// rejected with 401.
func Auth(jwtSecret string, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller, err := resolveCaller(c, jwtSecret, users)
			if err != nil {
				return err
			}
			if caller == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
			}
			c.Set(CallerKey, caller)
			return next(c)
		}
	}
}

// OptionalAuth is Auth for endpoints that accept anonymous callers: a
// missing Authorization header passes through with no caller set, but a
// present, invalid token is still rejected with 401.
func OptionalAuth(jwtSecret string, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller, err := resolveCaller(c, jwtSecret, users)
			if err != nil {
				return err
			}
			if caller != nil {
				c.Set(CallerKey, caller)
			}
			return next(c)
		}
	}
}

// resolveCaller parses the bearer token and loads the matching user.
// Returns (nil, nil) when no Authorization header is present.
func resolveCaller(c echo.Context, jwtSecret string, users ports.UserRepository) (*domain.User, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, nil
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, invalidTokenMsg)
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, invalidTokenMsg)
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, invalidTokenMsg)
	}
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, invalidTokenMsg)
	}

	// The claims only prove who the token was issued to; the account itself
	// is the source of truth for role and existence.
	caller, err := users.FindByID(c.Request().Context(), userID)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, invalidTokenMsg)
	}
	return caller, nil
}
