package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	_ "github.com/freshsupply/marketplace-api/docs"
	"github.com/freshsupply/marketplace-api/internal/api"
	"github.com/freshsupply/marketplace-api/internal/core/service"
	"github.com/freshsupply/marketplace-api/internal/infrastructure/config"
	mongodb "github.com/freshsupply/marketplace-api/internal/infrastructure/db/mongo"
	redisdb "github.com/freshsupply/marketplace-api/internal/infrastructure/db/redis"
	"github.com/freshsupply/marketplace-api/internal/infrastructure/queue"
	"github.com/freshsupply/marketplace-api/internal/pkg/password"
	"github.com/freshsupply/marketplace-api/internal/pkg/token"
	"github.com/freshsupply/marketplace-api/pkg/logger"
)

// @title        Fresh Supply Marketplace API
// @version      1.0
// @description  Identity, access, and catalog API for the fresh food supply-chain marketplace.
// @BasePath     /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logg := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.Development()})

	if err := cfg.Validate(); err != nil {
		logg.Fatal().Err(err).Msg("invalid configuration")
	}

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		logg.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		logg.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer func() { _ = rdb.Close() }()

	// --- Repositories ---
	buyerRepo := mongodb.NewBuyerRepository(db)
	supplierRepo := mongodb.NewSupplierRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	auditRepo := mongodb.NewAuditRepository(db)

	for _, ensure := range []func(context.Context) error{
		buyerRepo.EnsureIndexes,
		supplierRepo.EnsureIndexes,
		productRepo.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			logg.Fatal().Err(err).Msg("failed to create indexes")
		}
	}

	// --- Audit pipeline ---
	audit := queue.NewAuditDispatcher(cfg.AuditWorkers, auditRepo, logg)
	audit.Start(ctx)

	// --- Core services ---
	hasher := password.NewBcryptHasher(cfg.BcryptCost)
	issuer := token.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)
	limiter := redisdb.NewLoginLimiter(rdb, cfg.LoginMaxFailures, cfg.LoginWindow)

	registration := service.NewRegistrationService(buyerRepo, supplierRepo, hasher, audit, logg)
	auth := service.NewAuthService(buyerRepo, supplierRepo, hasher, issuer, limiter, audit, logg)
	products := service.NewProductService(productRepo, logg)
	directory := service.NewDirectory(buyerRepo, supplierRepo)

	e := api.NewRouter(api.Deps{
		Mongo:        db,
		Redis:        rdb,
		Issuer:       issuer,
		Directory:    directory,
		Registration: registration,
		Auth:         auth,
		Products:     products,
		Origins:      cfg.AllowedOrigins,
		Log:          logg,
	})

	go func() {
		logg.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil {
			logg.Info().Err(err).Msg("server stopped")
		}
	}()

	waitForShutdown(e, logg)
	cancel()
}

func waitForShutdown(e *echo.Echo, logg zerolog.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logg.Info().Str("signal", sig.String()).Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logg.Error().Err(err).Msg("shutdown error")
	}
}
