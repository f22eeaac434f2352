package ports

import (
	"context"

	"github.com/konveksi/order-system/internal/core/domain"
)

// ProductRepository defines persistence operations for catalog products.
// UpdateByID and DeleteByID are no-ops when the id does not exist; only hard
// store failures surface as errors.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	UpdateByID(ctx context.Context, id string, fields map[string]any) error
	DeleteByID(ctx context.Context, id string) error
}
