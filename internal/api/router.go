package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/konveksi/order-system/docs"
	"github.com/konveksi/order-system/internal/api/handler"
	"github.com/konveksi/order-system/internal/core/service"
	mongorepo "github.com/konveksi/order-system/internal/infrastructure/db/mongo"
	"github.com/konveksi/order-system/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("store"))

	// --- Dependencies ---
	authRepo := mongorepo.NewAuthRepository(db)
	productRepo := mongorepo.NewProductRepository(db)
	orderRepo := mongorepo.NewOrderRepository(db)

	authService := service.NewAuthService(authRepo, log)
	catalogService := service.NewCatalogService(productRepo, log)
	orderService := service.NewOrderService(orderRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(catalogService)
	orderHandler := handler.NewOrderHandler(orderService)

	// --- Auth routes ---
	e.POST("/api/register", authHandler.Register)
	e.POST("/api/login", authHandler.Login)

	// --- Catalog routes ---
	e.GET("/api/products", productHandler.List)
	e.POST("/api/products", productHandler.Create)
	e.PUT("/api/products/:id", productHandler.Update)
	e.DELETE("/api/products/:id", productHandler.Delete)

	// --- Order routes ---
	e.POST("/api/orders", orderHandler.Create)
	e.GET("/api/orders", orderHandler.List)
	e.GET("/api/orders/user/:username", orderHandler.ListForUser)
	e.PUT("/api/orders/:id", orderHandler.Update)
	e.DELETE("/api/orders/:id", orderHandler.Delete)

	// --- Health probes ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – is the store up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
