package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/trungle-dev/renty/internal/billing"
	billingStore "github.com/trungle-dev/renty/internal/billing/store"
	"github.com/trungle-dev/renty/internal/config"
	"github.com/trungle-dev/renty/internal/contract"
	contractStore "github.com/trungle-dev/renty/internal/contract/store"
	"github.com/trungle-dev/renty/internal/database"
	rentyHttp "github.com/trungle-dev/renty/internal/http"
	billingHandler "github.com/trungle-dev/renty/internal/http/billing"
	contractHandler "github.com/trungle-dev/renty/internal/http/contract"
	importHandler "github.com/trungle-dev/renty/internal/http/importcsv"
	propertyHandler "github.com/trungle-dev/renty/internal/http/property"
	"github.com/trungle-dev/renty/internal/importer"
	"github.com/trungle-dev/renty/internal/property"
	propertyStore "github.com/trungle-dev/renty/internal/property/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(context.Background(), cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		contractService = contract.NewService(contractStore.New(db))
		propertyService = property.NewService(propertyStore.New(db), contractService)
		billingService  = billing.NewService(billingStore.New(db))
		importService   = importer.NewService()
	)

	var (
		propertyH = propertyHandler.NewHandler(propertyService)
		contractH = contractHandler.NewHandler(contractService)
		billingH  = billingHandler.NewHandler(billingService)
		importH   = importHandler.NewHandler(importService, propertyService)
	)

	router := rentyHttp.New(cfg.Auth.Secret, propertyH, contractH, billingH, importH)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "app", cfg.App.Name, "addr", server.Addr)

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
