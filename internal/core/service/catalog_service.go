package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/konveksi/order-system/internal/core/domain"
	"github.com/konveksi/order-system/internal/core/ports"
)

// CatalogService implements product catalog CRUD.
type CatalogService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewCatalogService(repo ports.ProductRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, logger: logger}
}

// ListProducts returns the full catalog, unpaginated.
func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.FindAll(ctx)
}

// CreateProduct persists whatever fields the caller supplied.
func (s *CatalogService) CreateProduct(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	product := &domain.Product{
		Name:        input.Name,
		Price:       input.Price,
		Image:       input.Image,
		Description: input.Description,
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create product")
		return nil, err
	}

	s.logger.Info().Str("product_id", created.ID).Str("name", created.Name).Msg("product created")
	return created, nil
}

// UpdateProduct applies the submitted fields to the product with the given id.
// An unknown id is a successful no-op; only hard store errors are reported.
func (s *CatalogService) UpdateProduct(ctx context.Context, id string, fields map[string]any) error {
	if err := s.repo.UpdateByID(ctx, id, fields); err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to update product")
		return err
	}
	return nil
}

// DeleteProduct removes the product with the given id, with the same
// idempotent semantics as UpdateProduct.
func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to delete product")
		return err
	}
	return nil
}
