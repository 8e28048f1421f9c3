package ports

import (
	"context"
	"time"

	"github.com/freshsupply/marketplace-api/internal/core/domain"
)

// BuyerRepository defines persistence for buyer accounts. Email uniqueness is
// enforced by the store; Create must surface a lost duplicate race as
// domain.ErrDuplicateEmail.
type BuyerRepository interface {
	Create(ctx context.Context, buyer *domain.Buyer) (*domain.Buyer, error)
	FindByEmail(ctx context.Context, email string) (*domain.Buyer, error)
	FindByID(ctx context.Context, id string) (*domain.Buyer, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
}

// SupplierRepository defines persistence for supplier accounts.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *domain.Supplier) (*domain.Supplier, error)
	FindByEmail(ctx context.Context, email string) (*domain.Supplier, error)
	FindByID(ctx context.Context, id string) (*domain.Supplier, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
}

// PrincipalDirectory resolves a principal by role and id. The authorization
// middleware uses it to confirm a token's subject still exists.
type PrincipalDirectory interface {
	Lookup(ctx context.Context, role, id string) (domain.Principal, error)
}
