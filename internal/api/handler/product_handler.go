package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/konveksi/order-system/internal/api/metrics"
	"github.com/konveksi/order-system/internal/core/ports"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service ports.CatalogService
}

func NewProductHandler(service ports.CatalogService) *ProductHandler {
	return &ProductHandler{service: service}
}

type productRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

// List handles GET /api/products — the full catalog, unpaginated.
//
// @Summary      List all products
// @Tags         products
// @Produce      json
// @Success      200  {array}   domain.Product
// @Failure      500  {object}  messageResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Create handles POST /api/products. On store failure the raw error text is
// echoed to the caller alongside the message.
//
// @Summary      Add a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      productRequest  true  "Product fields"
// @Success      200   {object}  statusResponse
// @Failure      500   {object}  statusResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}

	_, err := h.service.CreateProduct(c.Request().Context(), ports.CreateProductInput{
		Name:        req.Name,
		Price:       req.Price,
		Image:       req.Image,
		Description: req.Description,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, statusResponse{
			Success: false,
			Message: "failed to add product",
			Error:   err.Error(),
		})
	}

	metrics.ProductsCreatedTotal.Inc()
	return c.JSON(http.StatusOK, statusResponse{Success: true, Message: "product added"})
}

// Update handles PUT /api/products/:id. An unknown id still reports success;
// the store treats it as a no-op.
//
// @Summary      Update a product by id
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "Product id"
// @Param        body  body      productRequest  true  "Partial product fields"
// @Success      200   {object}  statusResponse
// @Failure      500   {object}  statusResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	fields := map[string]any{}
	if err := c.Bind(&fields); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}

	if err := h.service.UpdateProduct(c.Request().Context(), c.Param("id"), fields); err != nil {
		return c.JSON(http.StatusInternalServerError, statusResponse{Success: false, Message: err.Error()})
	}
	return c.JSON(http.StatusOK, statusResponse{Success: true, Message: "product updated"})
}

// Delete handles DELETE /api/products/:id, with the same idempotent-style
// semantics as Update.
//
// @Summary      Delete a product by id
// @Tags         products
// @Produce      json
// @Param        id  path      string  true  "Product id"
// @Success      200  {object}  statusResponse
// @Failure      500  {object}  statusResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, statusResponse{Success: false, Message: err.Error()})
	}
	return c.JSON(http.StatusOK, statusResponse{Success: true, Message: "product deleted"})
}
