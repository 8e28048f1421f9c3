package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/freshsupply/marketplace-api/internal/core/domain"
	"github.com/freshsupply/marketplace-api/internal/pkg/token"
)

type stubVerifier struct {
	claims *token.Claims
	err    error
}

func (v stubVerifier) Verify(string) (*token.Claims, error) { return v.claims, v.err }

type stubDirectory struct {
	principal domain.Principal
	err       error
}

func (d stubDirectory) Lookup(context.Context, string, string) (domain.Principal, error) {
	return d.principal, d.err
}

func buyerClaims() *token.Claims {
	return &token.Claims{
		Email: "amina@shop.com",
		Role:  domain.RoleBuyer,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: "buyer-1",
		},
	}
}

func activeBuyer() *domain.Buyer {
	return &domain.Buyer{
		Account: domain.Account{
			ID:           "buyer-1",
			Email:        "amina@shop.com",
			PasswordHash: "hash",
			Role:         domain.RoleBuyer,
			IsActive:     true,
		},
		ShopOwnerName: "Amina",
	}
}

func invokeAuth(t *testing.T, mw echo.MiddlewareFunc, header string) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/buyers/profile", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	c := e.NewContext(req, httptest.NewRecorder())
	err := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c)
	return c, err
}

func assertHTTPStatus(t *testing.T, err error, want int) {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if he.Code != want {
		t.Fatalf("expected status %d, got %d (%v)", want, he.Code, he.Message)
	}
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	mw := Authenticate(stubVerifier{claims: buyerClaims()}, stubDirectory{principal: activeBuyer()})
	_, err := invokeAuth(t, mw, "")
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	mw := Authenticate(stubVerifier{claims: buyerClaims()}, stubDirectory{principal: activeBuyer()})
	for _, header := range []string{"token-without-scheme", "Basic abc"} {
		_, err := invokeAuth(t, mw, header)
		assertHTTPStatus(t, err, http.StatusUnauthorized)
	}
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	mw := Authenticate(stubVerifier{err: domain.ErrInvalidToken}, stubDirectory{principal: activeBuyer()})
	_, err := invokeAuth(t, mw, "Bearer bad-token")
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestAuthenticate_UnknownSubject(t *testing.T) {
	mw := Authenticate(stubVerifier{claims: buyerClaims()}, stubDirectory{err: domain.ErrPrincipalNotFound})
	_, err := invokeAuth(t, mw, "Bearer good-token")
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestAuthenticate_DeactivatedPrincipal(t *testing.T) {
	buyer := activeBuyer()
	buyer.IsActive = false
	mw := Authenticate(stubVerifier{claims: buyerClaims()}, stubDirectory{principal: buyer})
	_, err := invokeAuth(t, mw, "Bearer good-token")
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestAuthenticate_Success(t *testing.T) {
	buyer := activeBuyer()
	mw := Authenticate(stubVerifier{claims: buyerClaims()}, stubDirectory{principal: buyer})

	c, err := invokeAuth(t, mw, "Bearer good-token")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	claims, ok := c.Get(ClaimsKey).(*token.Claims)
	if !ok || claims.Subject != "buyer-1" {
		t.Fatalf("claims not injected into context")
	}
	principal, ok := c.Get(PrincipalKey).(domain.Principal)
	if !ok {
		t.Fatalf("principal not injected into context")
	}
	if principal.Identity().PasswordHash != "" {
		t.Fatalf("password hash leaked into request context")
	}
}
