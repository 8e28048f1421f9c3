package ports

import (
	"context"

	"github.com/freshsupply/marketplace-api/internal/core/domain"
)

// ProductPatch holds the mutable product fields for an update. Nil fields are
// left untouched.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	Image       *string
}

// ProductRepository defines persistence for catalog items. Update and Delete
// filter by owner as well as id; a non-matching owner yields
// domain.ErrProductNotFound.
type ProductRepository interface {
	Insert(ctx context.Context, p *domain.Product) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Product, error)
	Update(ctx context.Context, id, ownerID string, patch ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id, ownerID string) error
}
