package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/konveksi/order-system/internal/core/domain"
	"github.com/konveksi/order-system/internal/core/ports"
)

// OrderService implements checkout and order management.
type OrderService struct {
	repo   ports.OrderRepository
	logger zerolog.Logger
}

func NewOrderService(repo ports.OrderRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, logger: logger}
}

// CreateOrder persists the submitted order verbatim. The caller-supplied
// total is trusted and items are stored as sent. Omitted status, payment
// method and timestamp fall back to the checkout defaults.
func (s *OrderService) CreateOrder(ctx context.Context, input ports.CreateOrderInput) (*domain.Order, error) {
	order := &domain.Order{
		Username:      input.Username,
		Items:         input.Items,
		Total:         input.Total,
		Status:        input.Status,
		PaymentMethod: input.PaymentMethod,
		CreatedAt:     input.CreatedAt,
	}
	if order.Status == "" {
		order.Status = domain.DefaultOrderStatus
	}
	if order.PaymentMethod == "" {
		order.PaymentMethod = domain.DefaultPaymentMethod
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}

	created, err := s.repo.Create(ctx, order)
	if err != nil {
		s.logger.Error().Err(err).Str("username", input.Username).Msg("failed to create order")
		return nil, err
	}

	s.logger.Info().
		Str("order_id", created.ID).
		Str("username", created.Username).
		Float64("total", created.Total).
		Msg("order created")
	return created, nil
}

// ListOrders returns all orders, newest first.
func (s *OrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.repo.FindAll(ctx)
}

// ListOrdersForUser returns orders whose username matches exactly, newest
// first. No case folding, no partial match.
func (s *OrderService) ListOrdersForUser(ctx context.Context, username string) ([]domain.Order, error) {
	return s.repo.FindByUsername(ctx, username)
}

// UpdateOrder merges the submitted fields into the order, commonly status or
// items. Any status string is accepted; there is no closed set of states and
// no transition check. An unknown id is a successful no-op.
func (s *OrderService) UpdateOrder(ctx context.Context, id string, fields map[string]any) error {
	if err := s.repo.UpdateByID(ctx, id, fields); err != nil {
		s.logger.Error().Err(err).Str("order_id", id).Msg("failed to update order")
		return err
	}
	return nil
}

// DeleteOrder removes the order with the given id.
func (s *OrderService) DeleteOrder(ctx context.Context, id string) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("order_id", id).Msg("failed to delete order")
		return err
	}
	return nil
}
