package service

import (
	"context"

	"github.com/freshsupply/marketplace-api/internal/core/domain"
	"github.com/freshsupply/marketplace-api/internal/core/ports"
)

// Directory resolves token subjects back to live principal records, one
// repository per variant.
type Directory struct {
	buyers    ports.BuyerRepository
	suppliers ports.SupplierRepository
}

func NewDirectory(buyers ports.BuyerRepository, suppliers ports.SupplierRepository) *Directory {
	return &Directory{buyers: buyers, suppliers: suppliers}
}

func (d *Directory) Lookup(ctx context.Context, role, id string) (domain.Principal, error) {
	switch role {
	case domain.RoleBuyer:
		return d.buyers.FindByID(ctx, id)
	case domain.RoleSupplier:
		return d.suppliers.FindByID(ctx, id)
	default:
		return nil, domain.ErrPrincipalNotFound
	}
}
