package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/freshsupply/marketplace-api/internal/api/handler"
	"github.com/freshsupply/marketplace-api/internal/api/middleware"
	"github.com/freshsupply/marketplace-api/internal/core/domain"
	"github.com/freshsupply/marketplace-api/internal/core/ports"
	"github.com/freshsupply/marketplace-api/internal/pkg/token"
)

// Deps bundles everything the router needs. All dependencies are constructed
// once in main and passed down; nothing reads configuration ambiently.
type Deps struct {
	Mongo        *mongo.Database
	Redis        *redis.Client
	Issuer       *token.Issuer
	Directory    ports.PrincipalDirectory
	Registration ports.RegistrationService
	Auth         ports.AuthService
	Products     ports.ProductService
	Origins      []string
	Log          zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: deps.Origins,
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(echoprometheus.NewMiddleware("marketplace"))

	authenticate := middleware.Authenticate(deps.Issuer, deps.Directory)
	buyersOnly := middleware.RequireRole(domain.RoleBuyer)
	suppliersOnly := middleware.RequireRole(domain.RoleSupplier)

	// --- Identity & access ---
	authHandler := handler.NewAuthHandler(deps.Registration, deps.Auth)
	e.POST("/buyers/register", authHandler.RegisterBuyer)
	e.POST("/buyers/login", authHandler.LoginBuyer)
	e.GET("/buyers/profile", authHandler.BuyerProfile, authenticate, buyersOnly)
	e.POST("/suppliers/register", authHandler.RegisterSupplier)
	e.POST("/suppliers/login", authHandler.LoginSupplier)
	e.GET("/suppliers/profile", authHandler.SupplierProfile, authenticate, suppliersOnly)

	// --- Catalog ---
	productHandler := handler.NewProductHandler(deps.Products)
	e.GET("/products", productHandler.List)
	e.GET("/products/owner/:id", productHandler.ListByOwner)
	e.POST("/products", productHandler.Create, authenticate, buyersOnly)
	e.PUT("/products/:id", productHandler.Update, authenticate, buyersOnly)
	e.DELETE("/products/:id", productHandler.Delete, authenticate, buyersOnly)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	return e
}
