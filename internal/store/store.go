// Package store owns the authoritative, mutable collection of incident
// reports and governs the only mutations the engine permits: submission,
// note attachment, verification, and status transitions.
package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/faro-app/backend/internal/logger"
	"github.com/faro-app/backend/internal/models"
	"github.com/google/uuid"
)

// SnapshotStore is the load-all/save-all persistence contract the store can
// optionally be backed by. There is no incremental persistence.
type SnapshotStore interface {
	Load() ([]models.IncidentReport, error)
	Save([]models.IncidentReport) error
}

// ReportStore holds the canonical report collection. All mutations are
// serialized behind a single mutex; reads hand out deep copies so callers can
// run queries concurrently over a stable snapshot.
type ReportStore struct {
	mu        sync.RWMutex
	reports   []*models.IncidentReport
	byID      map[string]*models.IncidentReport
	snapshots SnapshotStore
	dirty     bool
	now       func() time.Time
}

// Option configures a ReportStore.
type Option func(*ReportStore)

// WithSnapshotStore backs the store with a persistence collaborator.
func WithSnapshotStore(s SnapshotStore) Option {
	return func(rs *ReportStore) { rs.snapshots = s }
}

// WithClock overrides the store's clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(rs *ReportStore) { rs.now = now }
}

// NewReportStore creates an empty store.
func NewReportStore(opts ...Option) *ReportStore {
	rs := &ReportStore{
		byID: make(map[string]*models.IncidentReport),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(rs)
	}
	return rs
}

// LoadSnapshot replaces the in-memory collection with the persisted one.
// A store without a snapshot collaborator starts empty and this is a no-op.
func (rs *ReportStore) LoadSnapshot() error {
	if rs.snapshots == nil {
		return nil
	}
	reports, err := rs.snapshots.Load()
	if err != nil {
		return fmt.Errorf("failed to load report snapshot: %w", err)
	}

	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.reports = rs.reports[:0]
	rs.byID = make(map[string]*models.IncidentReport, len(reports))
	for i := range reports {
		r := reports[i].Clone()
		rs.reports = append(rs.reports, &r)
		rs.byID[r.ID] = &r
	}
	rs.dirty = false

	logger.Info("Loaded report snapshot", map[string]interface{}{
		"reports": len(rs.reports),
	})
	return nil
}

// Flush saves the full collection through the snapshot collaborator if any
// mutation happened since the last save.
func (rs *ReportStore) Flush() error {
	if rs.snapshots == nil {
		return nil
	}

	rs.mu.Lock()
	if !rs.dirty {
		rs.mu.Unlock()
		return nil
	}
	snapshot := rs.cloneAllLocked()
	rs.mu.Unlock()

	if err := rs.snapshots.Save(snapshot); err != nil {
		return fmt.Errorf("failed to save report snapshot: %w", err)
	}

	rs.mu.Lock()
	rs.dirty = false
	rs.mu.Unlock()
	return nil
}

// Submit validates a filled-in template and appends a fresh report. The
// template's coordinates, when present, must already have been anonymized by
// the caller via geo.Anonymize; the store never sees precise positions.
func (rs *ReportStore) Submit(template models.ReportTemplate) (models.IncidentReport, error) {
	if strings.TrimSpace(template.Description) == "" {
		return models.IncidentReport{}, &models.ValidationError{Field: "description", Reason: "must not be empty"}
	}
	if !models.ValidType(template.Type) {
		return models.IncidentReport{}, &models.ValidationError{Field: "type", Reason: fmt.Sprintf("unknown report type %q", template.Type)}
	}
	if !models.ValidSeverity(template.Severity) {
		return models.IncidentReport{}, &models.ValidationError{Field: "severity", Reason: fmt.Sprintf("unknown severity %q", template.Severity)}
	}

	rs.mu.Lock()
	defer rs.mu.Unlock()

	report := &models.IncidentReport{
		ID:             uuid.NewString(),
		Type:           template.Type,
		Status:         models.StatusUnverified,
		Severity:       template.Severity,
		Location:       template.Location,
		Timestamp:      rs.now(),
		Description:    template.Description,
		ReportedBy:     models.AnonymousReporter,
		Tags:           append([]string(nil), template.Tags...),
		IsActive:       true,
		CommunityNotes: []models.CommunityNote{},
	}
	if template.Location.Coordinates != nil {
		c := *template.Location.Coordinates
		report.Location.Coordinates = &c
		report.Location.Approximate = true
	}

	rs.reports = append(rs.reports, report)
	rs.byID[report.ID] = report
	rs.dirty = true

	logger.Info("Report submitted", map[string]interface{}{
		"report_id": report.ID,
		"type":      string(report.Type),
		"severity":  string(report.Severity),
	})
	return report.Clone(), nil
}

// AddNote appends a community note to the named report.
func (rs *ReportStore) AddNote(reportID, content string) (models.CommunityNote, error) {
	if strings.TrimSpace(content) == "" {
		return models.CommunityNote{}, &models.ValidationError{Field: "content", Reason: "must not be empty"}
	}

	rs.mu.Lock()
	defer rs.mu.Unlock()

	report, ok := rs.byID[reportID]
	if !ok {
		return models.CommunityNote{}, fmt.Errorf("report %s: %w", reportID, models.ErrNotFound)
	}

	note := models.CommunityNote{
		ID:        uuid.NewString(),
		Timestamp: rs.now(),
		Content:   content,
		Anonymous: true,
	}
	report.CommunityNotes = append(report.CommunityNotes, note)
	rs.dirty = true

	logger.Info("Community note added", map[string]interface{}{
		"report_id": reportID,
		"note_id":   note.ID,
	})
	return note, nil
}

// Verify records one more independent confirmation of the report. The
// verification counter and the workflow status are deliberately decoupled;
// crossing a threshold never flips the status here, that is MarkVerified's
// job and the caller's decision.
func (rs *ReportStore) Verify(reportID string) (models.IncidentReport, error) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	report, ok := rs.byID[reportID]
	if !ok {
		return models.IncidentReport{}, fmt.Errorf("report %s: %w", reportID, models.ErrNotFound)
	}

	report.VerificationCount++
	verifiedAt := rs.now()
	report.LastVerified = &verifiedAt
	rs.dirty = true

	return report.Clone(), nil
}

// MarkVerified transitions the report's workflow status to verified.
func (rs *ReportStore) MarkVerified(reportID string) (models.IncidentReport, error) {
	return rs.setStatus(reportID, models.StatusVerified)
}

// Flag transitions the report's workflow status to flagged.
func (rs *ReportStore) Flag(reportID string) (models.IncidentReport, error) {
	return rs.setStatus(reportID, models.StatusFlagged)
}

func (rs *ReportStore) setStatus(reportID string, status models.ReportStatus) (models.IncidentReport, error) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	report, ok := rs.byID[reportID]
	if !ok {
		return models.IncidentReport{}, fmt.Errorf("report %s: %w", reportID, models.ErrNotFound)
	}
	if report.Status == models.StatusResolved {
		return models.IncidentReport{}, fmt.Errorf("report %s is resolved: %w", reportID, models.ErrInvalidState)
	}

	report.Status = status
	rs.dirty = true
	return report.Clone(), nil
}

// Resolve closes out the report. Resolving twice is rejected rather than
// silently ignored so double-resolution bugs in callers surface.
func (rs *ReportStore) Resolve(reportID string) (models.IncidentReport, error) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	report, ok := rs.byID[reportID]
	if !ok {
		return models.IncidentReport{}, fmt.Errorf("report %s: %w", reportID, models.ErrNotFound)
	}
	if report.Status == models.StatusResolved {
		return models.IncidentReport{}, fmt.Errorf("report %s already resolved: %w", reportID, models.ErrInvalidState)
	}

	resolvedAt := rs.now()
	report.Status = models.StatusResolved
	report.IsActive = false
	report.ResolvedAt = &resolvedAt
	rs.dirty = true

	logger.Info("Report resolved", map[string]interface{}{
		"report_id": reportID,
	})
	return report.Clone(), nil
}

// Get returns a copy of the named report.
func (rs *ReportStore) Get(reportID string) (models.IncidentReport, error) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	report, ok := rs.byID[reportID]
	if !ok {
		return models.IncidentReport{}, fmt.Errorf("report %s: %w", reportID, models.ErrNotFound)
	}
	return report.Clone(), nil
}

// All returns a deep-copied snapshot of the collection in insertion order,
// suitable for handing to the query engine while mutations continue.
func (rs *ReportStore) All() []models.IncidentReport {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return rs.cloneAllLocked()
}

// Len returns the number of reports in the store.
func (rs *ReportStore) Len() int {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return len(rs.reports)
}

func (rs *ReportStore) cloneAllLocked() []models.IncidentReport {
	out := make([]models.IncidentReport, 0, len(rs.reports))
	for _, r := range rs.reports {
		out = append(out, r.Clone())
	}
	return out
}
