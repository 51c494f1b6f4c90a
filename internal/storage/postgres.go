// Package storage provides the load-all/save-all snapshot collaborators a
// ReportStore can be backed by: a postgres table of JSON payloads and a
// single JSON document on disk.
package storage

import (
	"encoding/json"
	"fmt"

	"github.com/faro-app/backend/internal/config"
	"github.com/faro-app/backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// ReportSnapshot is one persisted report. The report document itself is
// stored as JSON; Position preserves store insertion order across reloads.
type ReportSnapshot struct {
	ID       string         `gorm:"primaryKey"`
	Position int            `gorm:"not null;index"`
	Payload  datatypes.JSON `gorm:"not null"`
}

func (ReportSnapshot) TableName() string {
	return "report_snapshots"
}

// Connect opens the database connection from config
func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
		cfg.DBSSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Error),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// AutoMigrate runs database migrations for the snapshot table
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&ReportSnapshot{}); err != nil {
		return fmt.Errorf("report snapshot migration failed: %w", err)
	}
	return nil
}

// PostgresSnapshotStore persists report snapshots in postgres.
type PostgresSnapshotStore struct {
	db *gorm.DB
}

// NewPostgresSnapshotStore creates a postgres-backed snapshot store.
func NewPostgresSnapshotStore(db *gorm.DB) *PostgresSnapshotStore {
	return &PostgresSnapshotStore{db: db}
}

// Load reads every persisted report in insertion order.
func (s *PostgresSnapshotStore) Load() ([]models.IncidentReport, error) {
	var rows []ReportSnapshot
	if err := s.db.Order("position asc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load report snapshots: %w", err)
	}

	reports := make([]models.IncidentReport, 0, len(rows))
	for _, row := range rows {
		var report models.IncidentReport
		if err := json.Unmarshal(row.Payload, &report); err != nil {
			return nil, fmt.Errorf("failed to decode report snapshot %s: %w", row.ID, err)
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// Save replaces the persisted collection with the given one. The contract is
// save-all; there is no incremental write path.
func (s *PostgresSnapshotStore) Save(reports []models.IncidentReport) error {
	rows := make([]ReportSnapshot, 0, len(reports))
	for i, report := range reports {
		payload, err := json.Marshal(report)
		if err != nil {
			return fmt.Errorf("failed to encode report %s: %w", report.ID, err)
		}
		rows = append(rows, ReportSnapshot{
			ID:       report.ID,
			Position: i,
			Payload:  payload,
		})
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&ReportSnapshot{}).Error; err != nil {
			return fmt.Errorf("failed to clear report snapshots: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to save report snapshots: %w", err)
		}
		return nil
	})
}
