package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/adboard/listings-api/internal/api/middleware"
	"github.com/adboard/listings-api/internal/core/domain"
)

// callerFrom extracts the authenticated caller injected by the Auth
// middleware. Returns nil for anonymous requests behind OptionalAuth.
func callerFrom(c echo.Context) *domain.User {
	caller, _ := c.Get(middleware.CallerKey).(*domain.User)
	return caller
}

// requireCaller is callerFrom for routes where the middleware guarantees a
// caller; a missing one means the route is wired without Auth.
func requireCaller(c echo.Context) (*domain.User, error) {
	caller := callerFrom(c)
	if caller == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return caller, nil
}

// pathID parses the numeric id path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

// queryInt parses an optional integer query parameter, falling back to def.
func queryInt(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return v, nil
}
