package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/freshsupply/marketplace-api/internal/api/handler"
	"github.com/freshsupply/marketplace-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (*httptest.ResponseRecorder, errorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/buyers/login", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", rec.Body.String(), err)
	}
	return rec, body
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"missing credentials", domain.ErrMissingCredentials, http.StatusBadRequest, "email and password are required"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid email or password"},
		{"inactive account", domain.ErrAccountInactive, http.StatusForbidden, "account is inactive"},
		{"duplicate email", domain.ErrDuplicateEmail, http.StatusConflict, "account with this email already exists"},
		{"invalid token", domain.ErrInvalidToken, http.StatusUnauthorized, "invalid token"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
		{"too many attempts", domain.ErrTooManyAttempts, http.StatusTooManyRequests, "too many login attempts"},
		{"product not found", domain.ErrProductNotFound, http.StatusNotFound, "product not found"},
		{"principal not found", domain.ErrPrincipalNotFound, http.StatusNotFound, "account not found"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, body := renderError(t, tc.err)
			if rec.Code != tc.code {
				t.Fatalf("expected status %d, got %d", tc.code, rec.Code)
			}
			if body.Error != tc.msg {
				t.Fatalf("expected message %q, got %q", tc.msg, body.Error)
			}
		})
	}
}

func TestHTTPErrorHandler_ValidationError(t *testing.T) {
	rec, body := renderError(t, &handler.ValidationError{Details: []string{"email is required", "password is required"}})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body.Error != "validation failed" {
		t.Fatalf("unexpected message: %q", body.Error)
	}
	if len(body.Details) != 2 {
		t.Fatalf("expected 2 details, got %v", body.Details)
	}
}

func TestHTTPErrorHandler_EchoError(t *testing.T) {
	rec, body := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header"))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if body.Error != "missing authorization header" {
		t.Fatalf("unexpected message: %q", body.Error)
	}
}

func TestHTTPErrorHandler_UnexpectedError(t *testing.T) {
	rec, body := renderError(t, errors.New("mongo: connection reset"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body.Error != "internal server error" {
		t.Fatalf("internal details leaked: %q", body.Error)
	}
}
