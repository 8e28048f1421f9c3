package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/freshsupply/marketplace-api/internal/api/metrics"
	"github.com/freshsupply/marketplace-api/internal/core/ports"
	"github.com/freshsupply/marketplace-api/internal/pkg/token"
)

// Context keys set by Authenticate.
const (
	ClaimsKey    = "auth_claims"    // *token.Claims
	PrincipalKey = "auth_principal" // domain.Principal, password hash stripped
)

// Verifier decodes a bearer token into claims.
type Verifier interface {
	Verify(raw string) (*token.Claims, error)
}

// Authenticate validates the bearer token and re-resolves its subject against
// the store, so deactivating an account revokes a still-valid token on the
// next request. The decoded claims and the fresh principal are injected into
// the request context.
func Authenticate(verifier Verifier, directory ports.PrincipalDirectory) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := verifier.Verify(parts[1])
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			principal, err := directory.Lookup(c.Request().Context(), claims.Role, claims.Subject)
			if err != nil || !principal.Identity().IsActive {
				metrics.AuthRejectionsTotal.WithLabelValues("stale_principal").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "account not found or inactive")
			}

			principal.Identity().PasswordHash = ""
			c.Set(ClaimsKey, claims)
			c.Set(PrincipalKey, principal)

			return next(c)
		}
	}
}
