// Package query derives read-only views over a collection of incident
// reports. Every operation is pure: it takes a snapshot slice, never mutates
// it, and excludes malformed records instead of failing the whole query.
package query

import (
	"time"

	"github.com/faro-app/backend/internal/geo"
	"github.com/faro-app/backend/internal/models"
)

// DefaultRecentHours is the window RecentReports uses when the caller does
// not specify one.
const DefaultRecentHours = 24

// DefaultVerifiedMinCount is the verification threshold VerifiedReports uses
// when the caller does not specify one.
const DefaultVerifiedMinCount = 2

// Engine answers queries over report snapshots. The clock is injectable so
// recency windows are testable.
type Engine struct {
	now func() time.Time
}

// NewEngine creates a query engine using the wall clock.
func NewEngine() *Engine {
	return &Engine{now: time.Now}
}

// NewEngineAt creates a query engine with a fixed clock, for tests.
func NewEngineAt(now func() time.Time) *Engine {
	return &Engine{now: now}
}

// ActiveReports returns the reports still marked active, in store order.
func (e *Engine) ActiveReports(reports []models.IncidentReport) []models.IncidentReport {
	return filter(reports, func(r models.IncidentReport) bool {
		return r.IsActive
	})
}

// RecentReports returns the reports submitted strictly within the last
// `hours` hours. Pass DefaultRecentHours for the standard 24h window.
func (e *Engine) RecentReports(reports []models.IncidentReport, hours float64) ([]models.IncidentReport, error) {
	if hours <= 0 {
		return nil, &models.InvalidArgumentError{Param: "hours", Reason: "must be positive"}
	}
	cutoff := e.now().Add(-time.Duration(hours * float64(time.Hour)))
	return filter(reports, func(r models.IncidentReport) bool {
		return r.Timestamp.After(cutoff)
	}), nil
}

// ReportsByType returns the reports of exactly the given type. An unknown
// type yields an empty result, not an error, so newer data with types this
// build does not know about degrades quietly.
func (e *Engine) ReportsByType(reports []models.IncidentReport, t models.ReportType) []models.IncidentReport {
	return filter(reports, func(r models.IncidentReport) bool {
		return r.Type == t
	})
}

// ReportsBySeverity returns the reports of exactly the given severity.
func (e *Engine) ReportsBySeverity(reports []models.IncidentReport, s models.ReportSeverity) []models.IncidentReport {
	return filter(reports, func(r models.IncidentReport) bool {
		return r.Severity == s
	})
}

// VerifiedReports returns the reports confirmed by at least minCount
// independent verifications. This is a read-side threshold; it never touches
// a report's workflow status.
func (e *Engine) VerifiedReports(reports []models.IncidentReport, minCount int) []models.IncidentReport {
	return filter(reports, func(r models.IncidentReport) bool {
		return r.VerificationCount >= minCount
	})
}

// CriticalActiveReports returns the active reports with critical severity.
func (e *Engine) CriticalActiveReports(reports []models.IncidentReport) []models.IncidentReport {
	return filter(reports, func(r models.IncidentReport) bool {
		return r.Severity == models.SeverityCritical && r.IsActive
	})
}

// ReportsNearLocation returns the reports whose anonymized pin lies within
// radiusKm of the given point. Reports without coordinates are excluded,
// never treated as distance zero.
func (e *Engine) ReportsNearLocation(reports []models.IncidentReport, lat, lon, radiusKm float64) ([]models.IncidentReport, error) {
	if radiusKm <= 0 {
		return nil, &models.InvalidArgumentError{Param: "radiusKm", Reason: "must be positive"}
	}
	return filter(reports, func(r models.IncidentReport) bool {
		c, ok := r.Location.Coords()
		if !ok {
			return false
		}
		return geo.DistanceKm(lat, lon, c.Latitude, c.Longitude) <= radiusKm
	}), nil
}

// Stats summarizes a report collection in a single pass, using the same
// predicates as the filter operations above.
type Stats struct {
	Total         int                           `json:"total"`
	Active        int                           `json:"active"`
	RecentCount   int                           `json:"recentCount"`
	CriticalCount int                           `json:"criticalCount"`
	ByType        map[models.ReportType]int     `json:"byType"`
	BySeverity    map[models.ReportSeverity]int `json:"bySeverity"`
}

// Stats aggregates the collection. Total counts every record, including
// malformed ones; the per-dimension counters only see queryable records with
// known enum values, so they always agree with the corresponding filters.
func (e *Engine) Stats(reports []models.IncidentReport) Stats {
	s := Stats{
		ByType:     make(map[models.ReportType]int),
		BySeverity: make(map[models.ReportSeverity]int),
	}
	cutoff := e.now().Add(-DefaultRecentHours * time.Hour)

	for _, r := range reports {
		s.Total++
		if !r.Queryable() {
			continue
		}
		if r.IsActive {
			s.Active++
		}
		if r.Timestamp.After(cutoff) {
			s.RecentCount++
		}
		if r.Severity == models.SeverityCritical && r.IsActive {
			s.CriticalCount++
		}
		if models.ValidType(r.Type) {
			s.ByType[r.Type]++
		}
		if models.ValidSeverity(r.Severity) {
			s.BySeverity[r.Severity]++
		}
	}
	return s
}

// filter returns the queryable reports matching pred, preserving input order.
func filter(reports []models.IncidentReport, pred func(models.IncidentReport) bool) []models.IncidentReport {
	out := []models.IncidentReport{}
	for _, r := range reports {
		if !r.Queryable() {
			continue
		}
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}
