// Package main is the entry point for the Trip Planner API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/trip-planner/backend/config"
	"github.com/trip-planner/backend/internal/application/adapter"
	"github.com/trip-planner/backend/internal/infra/cache"
	"github.com/trip-planner/backend/internal/infra/db"
	"github.com/trip-planner/backend/internal/infra/dependency"
	"github.com/trip-planner/backend/internal/infra/server/router"
	integrationcache "github.com/trip-planner/backend/internal/integration/cache"
	"github.com/trip-planner/backend/internal/integration/entrypoint/controller"
	"github.com/trip-planner/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Trip Planner API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Warn("Database connection failed, running without database",
			"error", err,
		)
	} else {
		// Run database migrations
		if err := database.AutoMigrate(
			&model.UserModel{},
			&model.RefreshTokenModel{},
			&model.GroupModel{},
			&model.GroupMemberModel{},
			&model.GroupInviteModel{},
			&model.ExternalParticipantModel{},
			&model.TripModel{},
			&model.TripDayModel{},
			&model.EventModel{},
			&model.PoiModel{},
			&model.ExpenseModel{},
			&model.ExpenseParticipantModel{},
			&model.ExpenseLineItemModel{},
			&model.ItemizedListModel{},
			&model.ExpenseItemModel{},
			&model.EmailQueueModel{},
		); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed successfully")

		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()
	}

	// Initialize the balance cache. A missing Redis is not fatal; balances
	// are recomputed on every request instead.
	var balanceCache adapter.BalanceCache
	redisClient, err := cache.NewRedisConnection(&cfg.Redis)
	if err != nil {
		slog.Warn("Redis connection failed, balance caching disabled", "error", err)
		balanceCache = integrationcache.NewNoopBalanceCache()
	} else {
		balanceCache = integrationcache.NewRedisBalanceCache(redisClient, 0)
		defer func() {
			if err := redisClient.Close(); err != nil {
				slog.Error("Failed to close Redis connection", "error", err)
			}
		}()
	}

	// Wire the application (only if database is available)
	var r *router.Router
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	if database != nil {
		injector, err := dependency.NewInjector(cfg, database.DB(), balanceCache)
		if err != nil {
			slog.Error("Failed to wire dependencies", "error", err)
			os.Exit(1)
		}
		r = injector.Router

		if cfg.Email.WorkerEnabled {
			go injector.EmailWorker.Start(workerCtx)
		} else {
			slog.Info("Email worker disabled")
		}

		slog.Info("Application initialized successfully")
	} else {
		// Health endpoint only; everything else needs the database.
		healthController := controller.NewHealthController(func() bool { return false })
		r = router.NewRouter(healthController, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil)
		slog.Warn("API routes not registered due to missing database connection")
	}

	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	stopWorker()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
