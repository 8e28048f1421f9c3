package ports

import (
	"context"

	"github.com/freshsupply/marketplace-api/internal/core/domain"
)

// CreateProductInput carries the fields for a new catalog item. OwnerID always
// comes from the verified session claims, never from the request body.
type CreateProductInput struct {
	OwnerID     string
	Name        string
	Description string
	Price       float64
	Category    string
	Image       string
}

// ProductService defines the catalog use cases.
type ProductService interface {
	Create(ctx context.Context, in CreateProductInput) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Product, error)
	Update(ctx context.Context, id, ownerID string, patch ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id, ownerID string) error
}
