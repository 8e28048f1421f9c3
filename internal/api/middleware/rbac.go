package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freshsupply/marketplace-api/internal/api/metrics"
	"github.com/freshsupply/marketplace-api/internal/pkg/token"
)

// RequireRole rejects requests whose verified claims carry a different role.
// Must run after Authenticate.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, _ := c.Get(ClaimsKey).(*token.Claims)
			if claims == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if _, ok := allowed[claims.Role]; !ok {
				metrics.AuthRejectionsTotal.WithLabelValues("wrong_role").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
			}
			return next(c)
		}
	}
}
