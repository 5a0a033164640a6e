// Package config reads storefront settings from the environment, with
// an optional .env file for local development.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Backend names accepted in TUNGA_BACKEND.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendMongo  = "mongo"
	BackendRedis  = "redis"
)

// Config holds everything needed to wire a store: the persistence
// backend, mail credentials and an optional catalog override.
type Config struct {
	Backend string

	DataDir       string
	MongoURI      string
	MongoDatabase string
	RedisAddr     string

	SendGridKey string
	EmailSender string

	// CatalogFile optionally points at a YAML product list used as the
	// seed catalog instead of the built-in one.
	CatalogFile string
}

// Load reads configuration from environment variables, loading a .env
// file first if one exists. Missing variables fall back to local
// defaults; the default backend is file storage under ./data.
func Load() Config {
	// A missing .env file is normal; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	return Config{
		Backend:       getenv("TUNGA_BACKEND", BackendFile),
		DataDir:       getenv("TUNGA_DATA_DIR", "data"),
		MongoURI:      getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getenv("MONGO_DATABASE", "tunga"),
		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		SendGridKey:   os.Getenv("SENDGRID_API_KEY"),
		EmailSender:   getenv("EMAIL_SENDER", "no-reply@tunga.co"),
		CatalogFile:   os.Getenv("TUNGA_CATALOG_FILE"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
