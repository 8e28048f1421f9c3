package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/freshsupply/marketplace-api/internal/core/domain"
	"github.com/freshsupply/marketplace-api/internal/core/ports"
)

// ProductService implements the catalog use cases. Ownership is an equality
// filter pushed down to the repository.
type ProductService struct {
	repo ports.ProductRepository
	log  zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, log: log}
}

func (s *ProductService) Create(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	category := in.Category
	if category == "" {
		category = domain.CategoryDefault
	}

	now := time.Now().UTC()
	product := &domain.Product{
		OwnerID:     in.OwnerID,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    category,
		Image:       in.Image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Insert(ctx, product)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("product_id", created.ID).Str("owner_id", created.OwnerID).Msg("product created")
	return created, nil
}

func (s *ProductService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *ProductService) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Product, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *ProductService) Update(ctx context.Context, id, ownerID string, patch ports.ProductPatch) (*domain.Product, error) {
	updated, err := s.repo.Update(ctx, id, ownerID, patch)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("product_id", id).Msg("product updated")
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id, ownerID string) error {
	if err := s.repo.Delete(ctx, id, ownerID); err != nil {
		return err
	}
	s.log.Info().Str("product_id", id).Msg("product deleted")
	return nil
}
