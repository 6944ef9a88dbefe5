package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/wempyhq/wempy-ordering/config"
	"github.com/wempyhq/wempy-ordering/internal/app/controller"
	"github.com/wempyhq/wempy-ordering/internal/app/repository"
	"github.com/wempyhq/wempy-ordering/internal/app/service"
	"github.com/wempyhq/wempy-ordering/internal/db"
	"github.com/wempyhq/wempy-ordering/internal/router"
	"github.com/wempyhq/wempy-ordering/internal/scheduler"
	"github.com/wempyhq/wempy-ordering/pkg/logger"
	"github.com/wempyhq/wempy-ordering/pkg/receipt"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:  logLevel,
		Format: "console", // Use "json" for production
	})

	logger.Info("Starting Wempy order service", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Initialize repositories and services
	orderRepo := repository.NewOrderRepository(db.GetDB())
	receipts := receipt.NewGenerator(cfg.Receipts.Dir)
	orderService := service.NewOrderService(orderRepo, receipts)

	// Initialize controllers
	orderController := controller.NewOrderController(orderService)

	// Receipt retention sweep
	receiptScheduler := scheduler.NewReceiptScheduler(cfg.Receipts)
	if err := receiptScheduler.Start(); err != nil {
		logger.Fatal("Failed to start receipt scheduler", err)
	}
	defer receiptScheduler.Stop()

	// Setup router
	r := router.NewRouter(orderController, cfg)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
