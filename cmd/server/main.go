package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/tatacoa/vitrina/internal"
	"github.com/tatacoa/vitrina/internal/catalog"
	"github.com/tatacoa/vitrina/internal/handler/api"
	"github.com/tatacoa/vitrina/internal/middleware"
	"github.com/tatacoa/vitrina/internal/odoo"
	"github.com/tatacoa/vitrina/internal/router"
	"github.com/tatacoa/vitrina/internal/routes"
)

func run() error {
	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Initialize the ERP gateway. Authentication is lazy; the first
	// catalog request establishes the session.
	gateway, err := odoo.NewClient(cfg.Odoo, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize odoo client: %w", err)
	}
	logger.Info("Odoo gateway configured", "base_url", cfg.Odoo.BaseURL, "database", cfg.Odoo.Database)

	// Initialize the catalog service
	catalogService := catalog.NewService(gateway, logger)

	// Initialize metrics
	metrics := middleware.NewMetrics("vitrina")

	r := router.New(
		router.Recovery(logger),
		middleware.RequestID,
		metrics.Middleware,
		middleware.MaxBodySize(middleware.DefaultMaxBodySize),
		middleware.Timeout(middleware.DefaultTimeout),
		router.CORS(cfg.CORSOrigins),
		router.Logger(logger),
	)

	// Metrics endpoint (no auth required, but should be protected in production via firewall)
	r.Get("/metrics", func(w http.ResponseWriter, req *http.Request) {
		metrics.Handler().ServeHTTP(w, req)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	routes.RegisterAPIRoutes(r, routes.APIDeps{
		Products:   api.NewProductHandler(catalogService, logger),
		Categories: api.NewCategoryHandler(catalogService, logger),
		Taxes:      api.NewTaxHandler(catalogService, logger),
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("Starting storefront API server", "address", addr)

	if err := http.ListenAndServe(addr, r); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
