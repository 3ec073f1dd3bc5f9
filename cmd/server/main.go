package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mitchstreats/treats-backend/config"
	"github.com/mitchstreats/treats-backend/internal/app/controller"
	"github.com/mitchstreats/treats-backend/internal/app/service"
	"github.com/mitchstreats/treats-backend/internal/catalog"
	"github.com/mitchstreats/treats-backend/internal/ledger"
	"github.com/mitchstreats/treats-backend/internal/notify"
	"github.com/mitchstreats/treats-backend/internal/router"
	"github.com/mitchstreats/treats-backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting storefront backend", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Build the product catalog.
	cat := catalog.Default()
	if cfg.Catalog.Path != "" {
		cat, err = catalog.LoadFile(cfg.Catalog.Path)
		if err != nil {
			logger.Fatal("Failed to load catalog", err, map[string]interface{}{
				"path": cfg.Catalog.Path,
			})
		}
	}
	logger.Info("Catalog loaded", map[string]interface{}{
		"products": len(cat.Products()),
	})

	// Collaborators are best effort: a broken one is logged and skipped,
	// orders keep flowing.
	notifier := notify.NewSMTPNotifier(notify.Config{
		Host:      cfg.Email.Host,
		Port:      cfg.Email.Port,
		Username:  cfg.Email.Username,
		Password:  cfg.Email.Password,
		Sender:    cfg.Email.Sender,
		Recipient: cfg.Email.Recipient,
		Enabled:   cfg.Email.Enabled && cfg.Email.Username != "",
		MockMode:  cfg.Email.MockMode,
	})

	var orderLedger ledger.Ledger
	wb, err := ledger.NewWorkbookLedger(cfg.Ledger.Path, cfg.Ledger.SheetName, cat)
	if err != nil {
		logger.Warn("Order ledger disabled", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		orderLedger = wb
	}

	orderService := service.NewOrderService(notifier, orderLedger)

	orderController := controller.NewOrderController(orderService)
	catalogController := controller.NewCatalogController(cat)

	r := router.NewRouter(orderController, catalogController, cfg)
	engine := r.Setup()

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
}
