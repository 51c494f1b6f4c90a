package main

import (
	"log"

	"github.com/faro-app/backend/internal/config"
	"github.com/faro-app/backend/internal/mockdata"
	"github.com/faro-app/backend/internal/storage"
	"github.com/joho/godotenv"
)

const sampleReportCount = 24

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := config.Load()

	log.Println("Seeding store with sample reports...")
	reports, err := mockdata.Reports(sampleReportCount)
	if err != nil {
		log.Fatalf("Failed to generate sample reports: %v", err)
	}

	switch cfg.StorageBackend {
	case config.BackendPostgres:
		db, err := storage.Connect(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := storage.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		if err := storage.NewPostgresSnapshotStore(db).Save(reports); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	case config.BackendFile:
		if err := storage.NewFileSnapshotStore(cfg.SnapshotPath).Save(reports); err != nil {
			log.Fatalf("Failed to seed snapshot file: %v", err)
		}
	default:
		log.Fatalf("Unknown storage backend %q", cfg.StorageBackend)
	}

	log.Printf("Seeded %d sample reports", len(reports))
}
