package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration for all binaries. Values come
// from the environment, optionally seeded from a .env file in the working
// directory.
type Config struct {
	// BigQuery ledger settings.
	ProjectID string
	DatasetID string

	// HTTP server settings.
	Port string

	// UserID attributed to every ingested transaction.
	UserID string

	// InMemoryLedger switches the ledger to the in-memory implementation,
	// useful for local runs without GCP credentials.
	InMemoryLedger bool

	// Notion export settings.
	NotionToken      string
	NotionDatabaseID string
}

// Load reads configuration from the environment. A missing .env file is
// not an error; explicit env vars always win over .env values.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ProjectID:        getenv("GCP_PROJECT_ID", ""),
		DatasetID:        getenv("BQ_DATASET", "ledger"),
		Port:             getenv("PORT", "8080"),
		UserID:           getenv("LEDGER_USER_ID", "default"),
		InMemoryLedger:   getenvBool("LEDGER_IN_MEMORY", false),
		NotionToken:      getenv("NOTION_TOKEN", ""),
		NotionDatabaseID: getenv("NOTION_DATABASE_ID", ""),
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}
