package config

import (
	"os"
)

// Backend names for the snapshot persistence collaborator.
const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

type Config struct {
	StorageBackend string
	SnapshotPath   string
	DBHost         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBPort         string
	DBSSLMode      string
}

func Load() *Config {
	return &Config{
		StorageBackend: getEnv("STORAGE_BACKEND", BackendFile),
		SnapshotPath:   getEnv("SNAPSHOT_PATH", "data/reports.json"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBUser:         getEnv("DB_USER", "faro"),
		DBPassword:     getEnv("DB_PASSWORD", "faro"),
		DBName:         getEnv("DB_NAME", "faro"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBSSLMode:      getEnv("DB_SSLMODE", "disable"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
