package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fitstack/fittrack/internal/env"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port string

	// Active deployment tier (dev, stage, prod)
	Tier env.Tier

	// Database configuration
	DBType                 string // mysql, postgres, sqlite, sqlserver, etc.
	DBHost                 string
	DBPort                 string
	DBDatabase             string
	DBAppUser              string
	DBAppPassword          string
	DBAppConnectionLimit   int
	DBAdminUser            string
	DBAdminPassword        string
	DBAdminConnectionLimit int

	// Authorizer configuration
	AuthzURL      string
	AuthzClientID string
}

// Load loads configuration from environment variables.
// prod reads its own PROD_* connection pair; dev and stage share the
// base pair, since they share one hosted instance.
func Load() (*Config, error) {
	tier := env.Resolve()

	cfg := &Config{
		Port:                   getEnv("PORT", "3000"),
		Tier:                   tier,
		DBType:                 getEnv("DB_TYPE", "mysql"),
		DBHost:                 getEnv("DB_HOST", "localhost"),
		DBPort:                 getEnv("DB_PORT", "3306"),
		DBDatabase:             getEnv("DB_DATABASE", ""),
		DBAppUser:              getEnv("DB_APP_USER", ""),
		DBAppPassword:          getEnv("DB_APP_PASSWORD", ""),
		DBAppConnectionLimit:   getEnvAsInt("DB_APP_CONNECTION_LIMIT", 5),
		DBAdminUser:            getEnv("DB_ADMIN_USER", ""),
		DBAdminPassword:        getEnv("DB_ADMIN_PASSWORD", ""),
		DBAdminConnectionLimit: getEnvAsInt("DB_ADMIN_CONNECTION_LIMIT", 5),
		AuthzURL:               getEnv("AUTHZ_URL", ""),
		AuthzClientID:          getEnv("AUTHZ_CLIENT_ID", ""),
	}

	if tier == env.TierProd {
		cfg.DBHost = getEnv("PROD_DB_HOST", cfg.DBHost)
		cfg.DBPort = getEnv("PROD_DB_PORT", cfg.DBPort)
		cfg.DBDatabase = getEnv("PROD_DB_DATABASE", cfg.DBDatabase)
		cfg.DBAppUser = getEnv("PROD_DB_APP_USER", cfg.DBAppUser)
		cfg.DBAppPassword = getEnv("PROD_DB_APP_PASSWORD", cfg.DBAppPassword)
		cfg.DBAdminUser = getEnv("PROD_DB_ADMIN_USER", cfg.DBAdminUser)
		cfg.DBAdminPassword = getEnv("PROD_DB_ADMIN_PASSWORD", cfg.DBAdminPassword)
		cfg.AuthzURL = getEnv("PROD_AUTHZ_URL", cfg.AuthzURL)
		cfg.AuthzClientID = getEnv("PROD_AUTHZ_CLIENT_ID", cfg.AuthzClientID)
	}

	// Validate required fields
	if cfg.DBDatabase == "" {
		return nil, fmt.Errorf("DB_DATABASE is required")
	}
	if cfg.DBAppUser == "" && cfg.DBType != "sqlite" {
		return nil, fmt.Errorf("DB_APP_USER is required")
	}
	if cfg.AuthzURL == "" {
		return nil, fmt.Errorf("AUTHZ_URL is required")
	}
	if cfg.AuthzClientID == "" {
		return nil, fmt.Errorf("AUTHZ_CLIENT_ID is required")
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
