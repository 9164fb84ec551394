// Package config resolves runtime configuration from the environment, with
// an optional .env file for development.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration of the POS core
type Config struct {
	Environment string
	LogLevel    string

	// StorageBackend selects the keyed store: memory, file, redis or gorm.
	StorageBackend string
	StoragePath    string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	DBDriver string
	DBDSN    string

	ExportDir   string
	DownloadDir string
}

// Load reads configuration from the environment. A missing .env file is
// fine; real deployments set variables directly.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment:    getEnv("ENVIRONMENT", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		StorageBackend: getEnv("STORAGE_BACKEND", "file"),
		StoragePath:    getEnv("STORAGE_PATH", "./data"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		DBDriver:       getEnv("DB_DRIVER", "sqlite"),
		DBDSN:          getEnv("DB_DSN", "./data/swiftpos.db"),
		ExportDir:      getEnv("EXPORT_DIR", ""),
		DownloadDir:    getEnv("DOWNLOAD_DIR", "./downloads"),
	}
}

// IsDevelopment reports whether the core runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
