package ports

import (
	"context"
	"time"

	"github.com/konveksi/order-system/internal/core/domain"
)

// CreateOrderInput is the checkout payload, persisted verbatim: the submitted
// total is trusted and items are stored exactly as sent. Status,
// PaymentMethod and CreatedAt receive defaults when left zero.
type CreateOrderInput struct {
	Username      string
	Items         []domain.OrderItem
	Total         float64
	Status        string
	PaymentMethod string
	CreatedAt     time.Time
}

// OrderService defines use-case operations for orders.
type OrderService interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	ListOrdersForUser(ctx context.Context, username string) ([]domain.Order, error)
	UpdateOrder(ctx context.Context, id string, fields map[string]any) error
	DeleteOrder(ctx context.Context, id string) error
}
