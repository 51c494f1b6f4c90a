package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/faro-app/backend/internal/models"
)

func sampleReports() []models.IncidentReport {
	verifiedAt := time.Date(2025, 5, 1, 10, 30, 0, 0, time.UTC)
	return []models.IncidentReport{
		{
			ID:        "a",
			Type:      models.TypeCheckpoint,
			Status:    models.StatusUnverified,
			Severity:  models.SeverityHigh,
			Timestamp: time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC),
			Location: models.Location{
				Address:     "Mission District",
				Coordinates: &models.Coordinates{Latitude: 37.7599, Longitude: -122.4148},
				Approximate: true,
			},
			Description: "Checkpoint at the corner",
			ReportedBy:  models.AnonymousReporter,
			IsActive:    true,
			Tags:        []string{"checkpoint"},
			CommunityNotes: []models.CommunityNote{
				{ID: "n1", Timestamp: verifiedAt, Content: "Confirmed", Anonymous: true},
			},
			VerificationCount: 1,
			LastVerified:      &verifiedAt,
		},
		{
			ID:          "b",
			Type:        models.TypePatrol,
			Status:      models.StatusUnverified,
			Severity:    models.SeverityLow,
			Timestamp:   time.Date(2025, 5, 1, 11, 0, 0, 0, time.UTC),
			Location:    models.Location{Address: "no pin here"},
			Description: "Patrol passing through",
			ReportedBy:  models.AnonymousReporter,
			IsActive:    true,
		},
	}
}

func TestFileSnapshotStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports.json")
	store := NewFileSnapshotStore(path)

	if err := store.Save(sampleReports()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("Expected 2 reports, got %d", len(loaded))
	}
	if loaded[0].ID != "a" || loaded[1].ID != "b" {
		t.Errorf("Expected insertion order preserved, got %s, %s", loaded[0].ID, loaded[1].ID)
	}
	if loaded[0].Location.Coordinates == nil {
		t.Fatal("Expected coordinates to survive the round trip")
	}
	if loaded[0].Location.Coordinates.Latitude != 37.7599 {
		t.Errorf("Expected latitude 37.7599, got %v", loaded[0].Location.Coordinates.Latitude)
	}
	if loaded[1].Location.Coordinates != nil {
		t.Error("Expected the pinless report to stay pinless")
	}
	if len(loaded[0].CommunityNotes) != 1 || loaded[0].CommunityNotes[0].Content != "Confirmed" {
		t.Errorf("Expected community notes to survive, got %v", loaded[0].CommunityNotes)
	}
	if loaded[0].LastVerified == nil {
		t.Error("Expected lastVerified to survive the round trip")
	}
}

func TestFileSnapshotStoreMissingFileIsEmpty(t *testing.T) {
	store := NewFileSnapshotStore(filepath.Join(t.TempDir(), "does-not-exist.json"))

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load of a missing file must not fail: %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("Expected an empty collection, got %d reports", len(loaded))
	}
}

func TestFileSnapshotStoreSaveReplacesPrevious(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports.json")
	store := NewFileSnapshotStore(path)

	if err := store.Save(sampleReports()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Save(sampleReports()[:1]); err != nil {
		t.Fatalf("Second save failed: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != 1 {
		t.Errorf("Expected the second save to replace the first, got %d reports", len(loaded))
	}
}
