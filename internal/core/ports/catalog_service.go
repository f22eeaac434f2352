package ports

import (
	"context"

	"github.com/konveksi/order-system/internal/core/domain"
)

// CreateProductInput carries the catalog fields accepted at creation.
// Nothing is required; absent fields persist as zero values.
type CreateProductInput struct {
	Name        string
	Price       float64
	Image       string
	Description string
}

// CatalogService defines use-case operations over the product catalog.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, fields map[string]any) error
	DeleteProduct(ctx context.Context, id string) error
}
