package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/jdclothing/storefront-backend/api/controllers"
	"github.com/jdclothing/storefront-backend/api/middleware"
	"github.com/jdclothing/storefront-backend/api/routes"
	cartsvc "github.com/jdclothing/storefront-backend/internal/cart"
	"github.com/jdclothing/storefront-backend/internal/catalog"
	checkoutsvc "github.com/jdclothing/storefront-backend/internal/checkout"
	"github.com/jdclothing/storefront-backend/pkg/config"
	"github.com/jdclothing/storefront-backend/pkg/db"
	"github.com/jdclothing/storefront-backend/pkg/logger"
	"github.com/jdclothing/storefront-backend/pkg/migrate"
	"github.com/jdclothing/storefront-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	loader, err := catalog.NewLoader(cfg.Catalog, redisClient, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog loader", err)
		os.Exit(1)
	}

	// A failed load is not fatal: the store stays empty and browsing
	// degrades to no results.
	store := catalog.NewStore()
	loader.Warm(context.Background(), store)

	catalogService, err := catalog.NewService(store)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	cartRepo, err := cartsvc.NewRepository(dbClient)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart repository", err)
		os.Exit(1)
	}
	cartService, err := cartsvc.NewService(cartRepo, store)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}
	checkoutService, err := checkoutsvc.NewService(cartService, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"products": store.Len(),
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Dependencies{
			Config:  cfg,
			Logger:  logg,
			Metrics: middleware.NewMetrics(),
			Pingers: map[string]controllers.Pinger{
				"database": dbClient,
				"redis":    redisClient,
			},
			CatalogService:  catalogService,
			CartService:     cartService,
			CheckoutService: checkoutService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
