package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/konveksi/order-system/internal/api/metrics"
	"github.com/konveksi/order-system/internal/core/domain"
	"github.com/konveksi/order-system/internal/core/ports"
)

// OrderHandler handles HTTP requests for checkout and order management.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

type createOrderRequest struct {
	Username      string             `json:"username"`
	Items         []domain.OrderItem `json:"items"`
	Total         float64            `json:"total"`
	Status        string             `json:"status"`
	PaymentMethod string             `json:"paymentMethod"`
	CreatedAt     time.Time          `json:"createdAt"`
}

// Create handles POST /api/orders — checkout. The body is persisted verbatim;
// the submitted total is trusted and items are stored as sent.
//
// @Summary      Place an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      createOrderRequest  true  "Order fields"
// @Success      200   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}

	// Store failures propagate unhandled to the global error handler.
	created, err := h.service.CreateOrder(c.Request().Context(), ports.CreateOrderInput{
		Username:      req.Username,
		Items:         req.Items,
		Total:         req.Total,
		Status:        req.Status,
		PaymentMethod: req.PaymentMethod,
		CreatedAt:     req.CreatedAt,
	})
	if err != nil {
		return err
	}

	metrics.OrdersCreatedTotal.WithLabelValues(created.PaymentMethod).Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "order received"})
}

// List handles GET /api/orders — all orders, newest first.
//
// @Summary      List all orders
// @Tags         orders
// @Produce      json
// @Success      200  {array}   domain.Order
// @Failure      500  {object}  messageResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.service.ListOrders(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: err.Error()})
	}
	return c.JSON(http.StatusOK, orders)
}

// ListForUser handles GET /api/orders/user/:username — one user's orders,
// newest first, matched exactly on username.
//
// @Summary      List orders for a user
// @Tags         orders
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200       {array}   domain.Order
// @Failure      500       {object}  messageResponse
// @Router       /api/orders/user/{username} [get]
func (h *OrderHandler) ListForUser(c echo.Context) error {
	orders, err := h.service.ListOrdersForUser(c.Request().Context(), c.Param("username"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: err.Error()})
	}
	return c.JSON(http.StatusOK, orders)
}

// Update handles PUT /api/orders/:id — merges whatever fields the caller
// sent, commonly status or items. Any status string is accepted.
//
// @Summary      Update an order by id
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Order id"
// @Param        body  body      createOrderRequest  true  "Partial order fields"
// @Success      200   {object}  statusResponse
// @Failure      500   {object}  messageResponse
// @Router       /api/orders/{id} [put]
func (h *OrderHandler) Update(c echo.Context) error {
	fields := map[string]any{}
	if err := c.Bind(&fields); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}

	if err := h.service.UpdateOrder(c.Request().Context(), c.Param("id"), fields); err != nil {
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: err.Error()})
	}

	metrics.OrderUpdatesTotal.Inc()
	return c.JSON(http.StatusOK, statusResponse{Success: true, Message: "order updated"})
}

// Delete handles DELETE /api/orders/:id.
//
// @Summary      Delete an order by id
// @Tags         orders
// @Produce      json
// @Param        id  path      string  true  "Order id"
// @Success      200  {object}  statusResponse
// @Failure      500  {object}  messageResponse
// @Router       /api/orders/{id} [delete]
func (h *OrderHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteOrder(c.Request().Context(), c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: err.Error()})
	}
	return c.JSON(http.StatusOK, statusResponse{Success: true, Message: "order deleted"})
}
