package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	cartapp "github.com/mandihub/mandi/internal/cart/app"
	"github.com/mandihub/mandi/internal/cart/infra/filestore"
	"github.com/mandihub/mandi/internal/cart/infra/redisstore"
	catalogapp "github.com/mandihub/mandi/internal/catalog/app"
	catalogpg "github.com/mandihub/mandi/internal/catalog/infra/postgres"
	checkoutapp "github.com/mandihub/mandi/internal/checkout/app"
	checkoutadapter "github.com/mandihub/mandi/internal/checkout/infra/adapter"
	"github.com/mandihub/mandi/internal/gateway"
	orderapp "github.com/mandihub/mandi/internal/order/app"
	orderpg "github.com/mandihub/mandi/internal/order/infra/postgres"
	profileapp "github.com/mandihub/mandi/internal/profile/app"
	profilepg "github.com/mandihub/mandi/internal/profile/infra/postgres"
	"github.com/mandihub/mandi/pkg/config"
	"github.com/mandihub/mandi/pkg/logger"
	"github.com/mandihub/mandi/pkg/metrics"
	"github.com/mandihub/mandi/pkg/postgres"
	"github.com/mandihub/mandi/pkg/shutdown"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{Service: "mandi", Env: cfg.AppEnv, Level: cfg.LogLevel, AddSource: true})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	db := mustDB(cfg, log)
	defer db.Close()

	// Catalog
	catalogRepo := catalogpg.NewProductRepo(db)
	catalogSvc := catalogapp.NewService(catalogRepo)

	// Profiles
	profileRepo := profilepg.NewProfileRepo(db)
	profileSvc := profileapp.NewService(profileRepo)

	// Orders
	orderRepo := orderpg.NewOrderRepo(db)
	orderSvc := orderapp.NewService(orderRepo)

	// Carts
	carts := cartapp.NewManager(cartFactory(cfg, log))

	// Checkout (adapters)
	checkoutSvc := checkoutapp.NewService(
		checkoutadapter.NewCatalogServiceReader(catalogSvc),
		checkoutadapter.NewOrderServiceWriter(orderSvc),
		checkoutadapter.NewProfileServiceStore(profileSvc),
		log,
		metrics.NewCheckout(nil),
	)

	api := gateway.NewServer(carts, catalogSvc, checkoutSvc, orderSvc, cfg.Currency, log)

	apiSrv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           api.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", metrics.Handler())
	metricsSrv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.MetricsPort),
		Handler:           metricsMux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("http server starting", slog.String("addr", apiSrv.Addr))
		if err := apiSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("api server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		log.Info("metrics server starting", slog.String("addr", metricsSrv.Addr))
		if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("metrics server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown requested")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := apiSrv.Shutdown(shutdownCtx); err != nil {
			log.Error("api shutdown error", slog.Any("err", err))
		}
		if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
			log.Error("metrics shutdown error", slog.Any("err", err))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", slog.Any("err", err))
		os.Exit(1)
	}
	log.Info("bye")
}

func mustDB(cfg config.Config, log *slog.Logger) *sql.DB {
	db, err := postgres.Open(postgres.Config{
		Host: cfg.PostgresHost,
		Port: cfg.PostgresPort,
		User: cfg.PostgresUser,
		Pass: cfg.PostgresPass,
		DB:   cfg.PostgresDB,
	})
	if err != nil {
		log.Error("db open failed", slog.Any("err", err))
		os.Exit(1)
	}

	if err := postgres.Migrate(db, cfg.MigrationsURL); err != nil {
		log.Error("db migrate failed", slog.Any("err", err))
		db.Close()
		os.Exit(1)
	}
	return db
}

func cartFactory(cfg config.Config, log *slog.Logger) cartapp.StoreFactory {
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		log.Info("cart storage: redis", slog.String("addr", cfg.RedisAddr))
		return func(userID string) cartapp.SnapshotStore {
			return redisstore.New(client, userID)
		}
	}

	log.Info("cart storage: files", slog.String("dir", cfg.CartDir))
	return func(userID string) cartapp.SnapshotStore {
		return filestore.New(cfg.CartDir, userID)
	}
}
