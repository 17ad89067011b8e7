package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	"github.com/shopspring/decimal"
	_ "github.com/lib/pq"

	httpapi "rentquote-backend/internal/api/http"
	"rentquote-backend/internal/config"
	"rentquote-backend/internal/logger"
	"rentquote-backend/internal/repository/postgres"
	"rentquote-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting RentQuote Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	defaultVAT, err := decimal.NewFromString(cfg.Pricing.DefaultVatRate)
	if err != nil {
		log.Fatalf("Invalid default VAT rate %q: %v", cfg.Pricing.DefaultVatRate, err)
	}
	placeholderPrice, err := decimal.NewFromString(cfg.Pricing.PlaceholderPricePerDay)
	if err != nil {
		log.Fatalf("Invalid placeholder price %q: %v", cfg.Pricing.PlaceholderPricePerDay, err)
	}

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Services
	emailSvc := service.NewSendGridEmailService(
		cfg.Email.SendGridAPIKey,
		cfg.Email.FromEmail,
		cfg.Email.FromName,
		cfg.Email.AdminEmail,
	)
	catalogSvc := service.NewCatalogService(store.EquipmentRepository, placeholderPrice)
	schemaSvc := service.NewSchemaService(store.PricingSchemaRepository)
	quoteSvc := service.NewQuoteService(
		store.QuoteRepository,
		store.EquipmentRepository,
		store.PricingSchemaRepository,
		emailSvc,
		defaultVAT,
	)
	maintenanceSvc := service.NewMaintenanceService(store.EquipmentRepository)

	// Set up HTTP server
	router := httpapi.NewRouter(quoteSvc, catalogSvc, schemaSvc, maintenanceSvc)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
