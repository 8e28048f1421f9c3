package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/freshsupply/marketplace-api/internal/api/middleware"
	"github.com/freshsupply/marketplace-api/internal/core/domain"
	"github.com/freshsupply/marketplace-api/internal/core/ports"
	"github.com/freshsupply/marketplace-api/internal/pkg/token"
)

type stubRegistration struct {
	buyer    *domain.Buyer
	supplier *domain.Supplier
	err      error
}

func (s stubRegistration) RegisterBuyer(context.Context, ports.RegisterBuyerInput) (*domain.Buyer, error) {
	return s.buyer, s.err
}

func (s stubRegistration) RegisterSupplier(context.Context, ports.RegisterSupplierInput) (*domain.Supplier, error) {
	return s.supplier, s.err
}

type stubAuth struct {
	token    string
	buyer    *domain.Buyer
	supplier *domain.Supplier
	err      error
}

func (s stubAuth) LoginBuyer(context.Context, string, string) (string, *domain.Buyer, error) {
	return s.token, s.buyer, s.err
}

func (s stubAuth) LoginSupplier(context.Context, string, string) (string, *domain.Supplier, error) {
	return s.token, s.supplier, s.err
}

func sampleBuyer() *domain.Buyer {
	return &domain.Buyer{
		Account: domain.Account{
			ID:           "buyer-1",
			Email:        "amina@shop.com",
			PasswordHash: "$2a$12$secret-hash",
			Role:         domain.RoleBuyer,
			IsActive:     true,
		},
		ShopName:      "Green Basket",
		ShopOwnerName: "Amina",
		ShopLocation:  "Market Road 3",
		ContactNumber: "0123456789",
	}
}

func jsonRequest(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRegisterBuyer_Created(t *testing.T) {
	h := NewAuthHandler(stubRegistration{buyer: sampleBuyer()}, stubAuth{})
	c, rec := jsonRequest(t, http.MethodPost, "/buyers/register", `{
		"shop_name": "Green Basket",
		"shop_owner_name": "Amina",
		"shop_location": "Market Road 3",
		"contact_number": "0123456789",
		"email": "amina@shop.com",
		"password": "secret1"
	}`)

	if err := h.RegisterBuyer(c); err != nil {
		t.Fatalf("RegisterBuyer returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "secret-hash") {
		t.Fatalf("response leaked the password hash: %s", rec.Body.String())
	}

	var resp struct {
		Buyer map[string]any `json:"buyer"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if _, ok := resp.Buyer["password"]; ok {
		t.Fatalf("response contains a password field")
	}
	if resp.Buyer["email"] != "amina@shop.com" {
		t.Fatalf("unexpected email in response: %v", resp.Buyer["email"])
	}
}

func TestRegisterBuyer_ValidationErrors(t *testing.T) {
	h := NewAuthHandler(stubRegistration{buyer: sampleBuyer()}, stubAuth{})
	c, _ := jsonRequest(t, http.MethodPost, "/buyers/register", `{
		"shop_name": "Green Basket",
		"contact_number": "12345",
		"email": "not-an-email",
		"password": "short"
	}`)

	err := h.RegisterBuyer(c)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	// Missing owner name and location, bad contact, bad email, short password.
	if len(ve.Details) != 5 {
		t.Fatalf("expected 5 violations, got %d: %v", len(ve.Details), ve.Details)
	}
	joined := strings.Join(ve.Details, "; ")
	for _, want := range []string{
		"shop_owner_name is required",
		"shop_location is required",
		"contact_number must be between 10 and 15 digits",
		"email must be a valid email address",
		"password must be at least 6 characters",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("missing violation %q in %q", want, joined)
		}
	}
}

func TestRegisterBuyer_Duplicate(t *testing.T) {
	h := NewAuthHandler(stubRegistration{err: domain.ErrDuplicateEmail}, stubAuth{})
	c, _ := jsonRequest(t, http.MethodPost, "/buyers/register", `{
		"shop_name": "Green Basket",
		"shop_owner_name": "Amina",
		"shop_location": "Market Road 3",
		"contact_number": "0123456789",
		"email": "amina@shop.com",
		"password": "secret1"
	}`)

	if err := h.RegisterBuyer(c); !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestLoginBuyer_OK(t *testing.T) {
	h := NewAuthHandler(stubRegistration{}, stubAuth{token: "signed-token", buyer: sampleBuyer()})
	c, rec := jsonRequest(t, http.MethodPost, "/buyers/login", `{"email":"amina@shop.com","password":"secret1"}`)

	if err := h.LoginBuyer(c); err != nil {
		t.Fatalf("LoginBuyer returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Token string         `json:"token"`
		Buyer map[string]any `json:"buyer"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Token != "signed-token" {
		t.Fatalf("unexpected token: %q", resp.Token)
	}
	if _, ok := resp.Buyer["password"]; ok {
		t.Fatalf("response contains a password field")
	}
}

func TestLoginBuyer_Failures(t *testing.T) {
	for _, tc := range []struct {
		name string
		err  error
	}{
		{"invalid credentials", domain.ErrInvalidCredentials},
		{"missing credentials", domain.ErrMissingCredentials},
		{"inactive account", domain.ErrAccountInactive},
		{"rate limited", domain.ErrTooManyAttempts},
	} {
		t.Run(tc.name, func(t *testing.T) {
			h := NewAuthHandler(stubRegistration{}, stubAuth{err: tc.err})
			c, _ := jsonRequest(t, http.MethodPost, "/buyers/login", `{"email":"a@b.com","password":"x"}`)
			if err := h.LoginBuyer(c); !errors.Is(err, tc.err) {
				t.Fatalf("expected %v, got %v", tc.err, err)
			}
		})
	}
}

func TestRegisterSupplier_Created(t *testing.T) {
	supplier := &domain.Supplier{
		Account: domain.Account{
			ID:       "supplier-1",
			Email:    "ravi@farm.com",
			Role:     domain.RoleSupplier,
			IsActive: true,
		},
		FullName:      "Ravi Kumar",
		ContactNumber: "0987654321",
	}
	h := NewAuthHandler(stubRegistration{supplier: supplier}, stubAuth{})
	c, rec := jsonRequest(t, http.MethodPost, "/suppliers/register", `{
		"full_name": "Ravi Kumar",
		"contact_number": "0987654321",
		"email": "ravi@farm.com",
		"password": "secret1"
	}`)

	if err := h.RegisterSupplier(c); err != nil {
		t.Fatalf("RegisterSupplier returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestBuyerProfile(t *testing.T) {
	h := NewAuthHandler(stubRegistration{}, stubAuth{})

	t.Run("no principal", func(t *testing.T) {
		c, _ := jsonRequest(t, http.MethodGet, "/buyers/profile", "")
		err := h.BuyerProfile(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %v", err)
		}
	})

	t.Run("buyer principal", func(t *testing.T) {
		c, rec := jsonRequest(t, http.MethodGet, "/buyers/profile", "")
		c.Set(middleware.PrincipalKey, domain.Principal(sampleBuyer()))
		c.Set(middleware.ClaimsKey, &token.Claims{
			Role:             domain.RoleBuyer,
			RegisteredClaims: jwt.RegisteredClaims{Subject: "buyer-1"},
		})
		if err := h.BuyerProfile(c); err != nil {
			t.Fatalf("BuyerProfile returned error: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("supplier principal rejected", func(t *testing.T) {
		c, _ := jsonRequest(t, http.MethodGet, "/buyers/profile", "")
		c.Set(middleware.PrincipalKey, domain.Principal(&domain.Supplier{
			Account: domain.Account{ID: "supplier-1", Role: domain.RoleSupplier, IsActive: true},
		}))
		err := h.BuyerProfile(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %v", err)
		}
	})
}
