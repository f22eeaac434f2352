package ports

import (
	"context"

	"github.com/konveksi/order-system/internal/core/domain"
)

// OrderRepository defines persistence operations for orders. Both finders
// return records newest first (created_at descending, sorted by the store).
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) (*domain.Order, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
	FindByUsername(ctx context.Context, username string) ([]domain.Order, error)
	UpdateByID(ctx context.Context, id string, fields map[string]any) error
	DeleteByID(ctx context.Context, id string) error
}
