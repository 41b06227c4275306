package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"billed/internal/api"
	"billed/internal/api/handlers"
	"billed/internal/repository"
	"billed/internal/service"
	"billed/pkg/config"
	"billed/pkg/logger"
	"billed/pkg/postgres"

	"go.uber.org/zap"
)

// @title Billed API
// @version 1.0
// @description Bill store for employee expense reports and their receipts

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level, cfg.Logger.Encoding); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting billed store")

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db, appLogger); err != nil {
		appLogger.Fatal("Failed to migrate database", zap.Error(err))
	}

	billRepo := repository.NewBillRepository(db, appLogger)
	receiptRepo := repository.NewReceiptRepository(db, appLogger)

	billService := service.NewBillService(billRepo, receiptRepo, cfg.Storage.UploadDir, appLogger)

	billHandler := handlers.NewBillHandler(billService, appLogger)
	pageHandler := handlers.NewPageHandler(billService, appLogger)

	app := api.SetupRouter(billHandler, pageHandler, cfg.Storage.UploadDir, appLogger)

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
