// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/your-org/discount-app-backend/internal/config"
	"github.com/your-org/discount-app-backend/internal/domain/checkout"
	mongodb "github.com/your-org/discount-app-backend/internal/infrastructure/database/mongo"
	"github.com/your-org/discount-app-backend/internal/infrastructure/database/redis"
	"github.com/your-org/discount-app-backend/internal/interfaces/http"
	"github.com/your-org/discount-app-backend/internal/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.New(cfg)
	appLogger.Infof("🚀 Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	// Connect to MongoDB before serving traffic; every component shares
	// this one handle.
	db, err := mongodb.NewConnection(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	// Connect to Redis
	redisClient, err := redis.NewConnection(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Unique indexes back the cart, payment and account invariants
	indexCtx, cancelIndex := context.WithTimeout(context.Background(), 30*time.Second)
	if err := db.EnsureIndexes(indexCtx); err != nil {
		cancelIndex()
		log.Fatalf("Failed to create indexes: %v", err)
	}
	cancelIndex()

	appLogger.Info("✅ All systems operational!")

	// Retry cart clears left behind by interrupted checkouts
	reconcilerCtx, stopReconciler := context.WithCancel(context.Background())
	checkoutService := checkout.NewService(db.Database(), redisClient.GetClient(), appLogger)
	reconciler := checkout.NewReconciler(checkoutService, time.Minute, appLogger)
	go reconciler.Run(reconcilerCtx)

	// Create and start HTTP server
	server := http.NewServer(cfg, db, redisClient.GetClient(), appLogger)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("👋 Shutting down gracefully...")
	stopReconciler()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		appLogger.Errorf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	if err := db.Close(ctx); err != nil {
		appLogger.Errorf("Failed to close MongoDB connection: %v", err)
	}

	appLogger.Info("✅ Server shutdown completed")
}
