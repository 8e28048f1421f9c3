package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freshsupply/marketplace-api/internal/api/middleware"
	"github.com/freshsupply/marketplace-api/internal/core/domain"
	"github.com/freshsupply/marketplace-api/internal/pkg/token"
)

// ctxClaims extracts the verified claims injected by the Authenticate
// middleware. Their presence proves the middleware ran.
func ctxClaims(c echo.Context) (*token.Claims, error) {
	claims, _ := c.Get(middleware.ClaimsKey).(*token.Claims)
	if claims == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}

// ctxPrincipal extracts the freshly resolved principal record.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	principal, _ := c.Get(middleware.PrincipalKey).(domain.Principal)
	if principal == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return principal, nil
}
