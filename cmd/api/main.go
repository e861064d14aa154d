package main

import (
	"fmt"
	"os"

	"pocketledger/internal/config"
	"pocketledger/internal/handlers"
	"pocketledger/internal/logger"
	"pocketledger/internal/store"
	"pocketledger/internal/validator"

	"github.com/shopspring/decimal"

	_ "pocketledger/internal/docs" // Import swagger docs
)

// @title           Pocketledger API
// @version         1.0
// @description     Pocketledger is a single-user budget ledger backed by an embedded, versioned SQLite store with CRUD, aggregation, and backup/restore.

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Amounts are JSON numbers on the wire, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	s, err := store.Open(cfg.DBPath, store.SchemaVersion, store.Options{MaxBackups: cfg.MaxBackups})
	if err != nil {
		return fmt.Errorf("failed to open ledger store: %w", err)
	}

	if seeded, err := s.SeedDefaultCategories(); err != nil {
		return fmt.Errorf("failed to seed default categories: %w", err)
	} else if seeded > 0 {
		log.Infof("Seeded %d default categories", seeded)
	}

	validator.Register()
	router := handlers.NewRouter(s)

	log.Infof("Starting Pocketledger server on port %s", cfg.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", cfg.Port)
	return router.Run(":" + cfg.Port)
}
