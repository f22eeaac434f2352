package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/konveksi/order-system/internal/core/domain"
	"github.com/konveksi/order-system/internal/core/ports"
)

type stubCatalogService struct {
	listFn   func(ctx context.Context) ([]domain.Product, error)
	createFn func(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error)
	updateFn func(ctx context.Context, id string, fields map[string]any) error
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubCatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.listFn(ctx)
}

func (s *stubCatalogService) CreateProduct(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	return s.createFn(ctx, input)
}

func (s *stubCatalogService) UpdateProduct(ctx context.Context, id string, fields map[string]any) error {
	return s.updateFn(ctx, id, fields)
}

func (s *stubCatalogService) DeleteProduct(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func TestProductHandler_List(t *testing.T) {
	e := echo.New()
	stub := &stubCatalogService{
		listFn: func(ctx context.Context) ([]domain.Product, error) {
			return []domain.Product{
				{ID: "p1", Name: "Baju", Price: 50000},
				{ID: "p2", Name: "Celana", Price: 75000},
			}, nil
		},
	}
	handler := NewProductHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 || resp[0]["name"] != "Baju" || resp[0]["id"] != "p1" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestProductHandler_Create_Success(t *testing.T) {
	e := echo.New()
	stub := &stubCatalogService{
		createFn: func(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
			if input.Name != "Baju" || input.Price != 50000 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Product{ID: "p1", Name: input.Name, Price: input.Price}, nil
		},
	}
	handler := NewProductHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(`{"name":"Baju","price":50000}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["success"] != true {
		t.Fatalf("expected success:true, got %+v", resp)
	}
}

// A store failure reports 500 with the raw error text echoed in the envelope.
func TestProductHandler_Create_StoreError(t *testing.T) {
	e := echo.New()
	stub := &stubCatalogService{
		createFn: func(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
			return nil, errors.New("insert product: connection reset")
		},
	}
	handler := NewProductHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(`{"name":"Baju"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["success"] != false {
		t.Fatalf("expected success:false, got %+v", resp)
	}
	if resp["error"] != "insert product: connection reset" {
		t.Fatalf("expected raw store error echoed, got %+v", resp)
	}
}

func TestProductHandler_Update_UnknownIDStillSucceeds(t *testing.T) {
	e := echo.New()
	stub := &stubCatalogService{
		updateFn: func(ctx context.Context, id string, fields map[string]any) error {
			if id != "missing" {
				t.Fatalf("unexpected id: %s", id)
			}
			return nil // store update-by-id is a no-op for unknown ids
		},
	}
	handler := NewProductHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/api/products/missing", strings.NewReader(`{"price":60000}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProductHandler_Update_StoreError(t *testing.T) {
	e := echo.New()
	stub := &stubCatalogService{
		updateFn: func(ctx context.Context, id string, fields map[string]any) error {
			return errors.New("update product: server selection timeout")
		},
	}
	handler := NewProductHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/api/products/p1", strings.NewReader(`{"price":60000}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("p1")

	_ = handler.Update(c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["message"] != "update product: server selection timeout" {
		t.Fatalf("expected raw message, got %+v", resp)
	}
}

func TestProductHandler_Delete(t *testing.T) {
	e := echo.New()
	called := false
	stub := &stubCatalogService{
		deleteFn: func(ctx context.Context, id string) error {
			called = true
			if id != "p1" {
				t.Fatalf("unexpected id: %s", id)
			}
			return nil
		},
	}
	handler := NewProductHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/api/products/p1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("p1")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("service not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
