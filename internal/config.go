package internal

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/tatacoa/vitrina/internal/odoo"
)

type Config struct {
	Env         string
	LogLevel    string
	Port        uint16
	CORSOrigins []string
	Odoo        odoo.Config
}

func NewConfig() (*Config, error) {
	// Try to load .env from current directory, then walk up to find it (max 2 levels)
	err := godotenv.Load()
	if err != nil {
		// Walk up directories to find .env (max 2 parent directories)
		dir, _ := os.Getwd()
		found := false
		for i := 0; i < 2; i++ {
			dir = filepath.Join(dir, "..")
			if err := godotenv.Load(filepath.Join(dir, ".env")); err == nil {
				found = true
				break
			}
		}
		if !found {
			slog.Default().Warn("Warning: .env file not found, using environment variables and defaults")
		}
	}

	cfg := &Config{
		Env:         getEnv("ENV", "dev"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Port:        getEnvInt("PORT", 3000),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "*")),
		Odoo: odoo.Config{
			BaseURL:  getEnv("ODOO_BASE_URL", "https://your-odoo-instance.com"),
			Database: getEnv("ODOO_DATABASE", ""),
			Username: getEnv("ODOO_USERNAME", ""),
			Password: getEnv("ODOO_PASSWORD", ""),
		},
	}

	// Validate env
	validEnv := cfg.Env == "dev" || cfg.Env == "prod"
	if !validEnv {
		slog.Default().Warn("Invalid environment. Using default: prod", slog.String("env", cfg.Env))
		cfg.Env = "prod"
	}

	// Validate log level
	validLevel := cfg.LogLevel == "info" || cfg.LogLevel == "debug" || cfg.LogLevel == "warn" || cfg.LogLevel == "error"
	if !validLevel {
		slog.Default().Warn("Invalid log level. Using default: info", slog.String("value", cfg.LogLevel))
		cfg.LogLevel = "info"
	}

	// The ERP connection must be fully configured in production
	if cfg.Env == "prod" {
		if cfg.Odoo.Database == "" {
			return nil, fmt.Errorf("ODOO_DATABASE must be set in production environment")
		}
		if cfg.Odoo.Username == "" || cfg.Odoo.Password == "" {
			return nil, fmt.Errorf("ODOO_USERNAME and ODOO_PASSWORD must be set in production environment")
		}
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue uint16) uint16 {
	if value := os.Getenv(key); value != "" {
		var intValue uint16
		if _, err := fmt.Sscanf(value, "%d", &intValue); err == nil {
			return intValue
		}
		slog.Default().Warn("Invalid integer value. Using default", slog.String("key", key), slog.String("value", value))
	}
	return defaultValue
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
