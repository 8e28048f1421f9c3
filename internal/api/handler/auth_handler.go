package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freshsupply/marketplace-api/internal/api/metrics"
	"github.com/freshsupply/marketplace-api/internal/core/domain"
	"github.com/freshsupply/marketplace-api/internal/core/ports"
)

// AuthHandler exposes registration, login, and profile endpoints for both
// principal variants.
type AuthHandler struct {
	registration ports.RegistrationService
	auth         ports.AuthService
}

func NewAuthHandler(registration ports.RegistrationService, auth ports.AuthService) *AuthHandler {
	return &AuthHandler{registration: registration, auth: auth}
}

// RegisterBuyer creates a buyer account.
//
// @Summary      Register a buyer shop
// @Tags         buyers
// @Accept       json
// @Produce      json
// @Param        body  body      registerBuyerRequest  true  "Buyer registration details"
// @Success      201   {object}  buyerResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /buyers/register [post]
func (h *AuthHandler) RegisterBuyer(c echo.Context) error {
	var req registerBuyerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	buyer, err := h.registration.RegisterBuyer(c.Request().Context(), ports.RegisterBuyerInput{
		ShopName:      req.ShopName,
		ShopOwnerName: req.ShopOwnerName,
		ShopLocation:  req.ShopLocation,
		ContactNumber: req.ContactNumber,
		Email:         req.Email,
		Password:      req.Password,
	})
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues(domain.RoleBuyer, registerResult(err)).Inc()
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(domain.RoleBuyer, "created").Inc()
	return c.JSON(http.StatusCreated, buyerResponse{Buyer: buyer})
}

// LoginBuyer authenticates a buyer and returns a session token.
//
// @Summary      Buyer login
// @Tags         buyers
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  buyerLoginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /buyers/login [post]
func (h *AuthHandler) LoginBuyer(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token, buyer, err := h.auth.LoginBuyer(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(domain.RoleBuyer, loginResult(err)).Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues(domain.RoleBuyer, "success").Inc()
	return c.JSON(http.StatusOK, buyerLoginResponse{Token: token, Buyer: buyer})
}

// BuyerProfile returns the authenticated buyer's public record.
//
// @Summary      Buyer profile
// @Tags         buyers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  buyerResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /buyers/profile [get]
func (h *AuthHandler) BuyerProfile(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	buyer, ok := principal.(*domain.Buyer)
	if !ok {
		return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
	}
	return c.JSON(http.StatusOK, buyerResponse{Buyer: buyer})
}

// RegisterSupplier creates a supplier account.
//
// @Summary      Register a supplier
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        body  body      registerSupplierRequest  true  "Supplier registration details"
// @Success      201   {object}  supplierResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /suppliers/register [post]
func (h *AuthHandler) RegisterSupplier(c echo.Context) error {
	var req registerSupplierRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	supplier, err := h.registration.RegisterSupplier(c.Request().Context(), ports.RegisterSupplierInput{
		FullName:      req.FullName,
		ContactNumber: req.ContactNumber,
		Email:         req.Email,
		Password:      req.Password,
	})
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues(domain.RoleSupplier, registerResult(err)).Inc()
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(domain.RoleSupplier, "created").Inc()
	return c.JSON(http.StatusCreated, supplierResponse{Supplier: supplier})
}

// LoginSupplier authenticates a supplier and returns a session token.
//
// @Summary      Supplier login
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  supplierLoginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /suppliers/login [post]
func (h *AuthHandler) LoginSupplier(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token, supplier, err := h.auth.LoginSupplier(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(domain.RoleSupplier, loginResult(err)).Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues(domain.RoleSupplier, "success").Inc()
	return c.JSON(http.StatusOK, supplierLoginResponse{Token: token, Supplier: supplier})
}

// SupplierProfile returns the authenticated supplier's public record.
//
// @Summary      Supplier profile
// @Tags         suppliers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  supplierResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /suppliers/profile [get]
func (h *AuthHandler) SupplierProfile(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	supplier, ok := principal.(*domain.Supplier)
	if !ok {
		return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
	}
	return c.JSON(http.StatusOK, supplierResponse{Supplier: supplier})
}

func registerResult(err error) string {
	if errors.Is(err, domain.ErrDuplicateEmail) {
		return "duplicate"
	}
	return "error"
}

func loginResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrMissingCredentials):
		return "invalid"
	case errors.Is(err, domain.ErrAccountInactive):
		return "inactive"
	case errors.Is(err, domain.ErrTooManyAttempts):
		return "rate_limited"
	default:
		return "error"
	}
}
