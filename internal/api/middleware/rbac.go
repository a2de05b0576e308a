package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adboard/listings-api/internal/core/domain"
)

// RequireGroup rejects callers whose group is not in the allow-list. It
// belongs after Auth; the services re-check access against the live target,
// this gate just fails obvious mismatches before any work is done.
func RequireGroup(allowedGroups ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedGroups))
	for _, g := range allowedGroups {
		allowed[g] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller, _ := c.Get(CallerKey).(*domain.User)
			if caller == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
			}
			if _, ok := allowed[caller.Group]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
