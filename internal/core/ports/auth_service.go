package ports

import (
	"context"

	"github.com/freshsupply/marketplace-api/internal/core/domain"
)

// RegisterBuyerInput carries the fields submitted on buyer registration.
// Field-shape validation happens at the transport layer; the service only
// normalizes the email and enforces uniqueness.
type RegisterBuyerInput struct {
	ShopName      string
	ShopOwnerName string
	ShopLocation  string
	ContactNumber string
	Email         string
	Password      string
}

// RegisterSupplierInput carries the fields submitted on supplier registration.
type RegisterSupplierInput struct {
	FullName      string
	ContactNumber string
	Email         string
	Password      string
}

// RegistrationService creates new principal accounts.
type RegistrationService interface {
	RegisterBuyer(ctx context.Context, in RegisterBuyerInput) (*domain.Buyer, error)
	RegisterSupplier(ctx context.Context, in RegisterSupplierInput) (*domain.Supplier, error)
}

// AuthService verifies credentials and issues session tokens.
type AuthService interface {
	LoginBuyer(ctx context.Context, email, password string) (string, *domain.Buyer, error)
	LoginSupplier(ctx context.Context, email, password string) (string, *domain.Supplier, error)
}
