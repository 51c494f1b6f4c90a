package models

import (
	"time"
)

type ReportType string
type ReportStatus string
type ReportSeverity string

const (
	TypeICEActivity  ReportType = "ice_activity"
	TypeCheckpoint   ReportType = "checkpoint"
	TypeRaid         ReportType = "raid"
	TypeSurveillance ReportType = "surveillance"
	TypeArrest       ReportType = "arrest"
	TypePatrol       ReportType = "patrol"
)

const (
	StatusActive     ReportStatus = "active"
	StatusResolved   ReportStatus = "resolved"
	StatusUnverified ReportStatus = "unverified"
	StatusVerified   ReportStatus = "verified"
	StatusFlagged    ReportStatus = "flagged"
)

const (
	SeverityLow      ReportSeverity = "low"
	SeverityMedium   ReportSeverity = "medium"
	SeverityHigh     ReportSeverity = "high"
	SeverityCritical ReportSeverity = "critical"
)

// AnonymousReporter is the only reporter identity in this design; no user
// identity is modeled anywhere in the engine.
const AnonymousReporter = "anonymous"

// Coordinates is a WGS84 point. Reports that carry one must have passed it
// through geo.Anonymize before it was stored.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Location is a report's place. Coordinates is nil when the reporter gave only
// a free-text address; consumers must handle that case rather than treating
// the report as being at (0, 0).
type Location struct {
	Address     string       `json:"address"`
	Coordinates *Coordinates `json:"coordinates"`
	Approximate bool         `json:"approximate"`
}

// Coords returns the location's point and whether one is present.
func (l Location) Coords() (Coordinates, bool) {
	if l.Coordinates == nil {
		return Coordinates{}, false
	}
	return *l.Coordinates, true
}

// IncidentReport is a community-submitted enforcement sighting.
type IncidentReport struct {
	ID                string          `json:"id"`
	Type              ReportType      `json:"type"`
	Status            ReportStatus    `json:"status"`
	Severity          ReportSeverity  `json:"severity"`
	Location          Location        `json:"location"`
	Timestamp         time.Time       `json:"timestamp"`
	Description       string          `json:"description"`
	ReportedBy        string          `json:"reportedBy"`
	VerificationCount int             `json:"verificationCount"`
	LastVerified      *time.Time      `json:"lastVerified"`
	Tags              []string        `json:"tags"`
	IsActive          bool            `json:"isActive"`
	ResolvedAt        *time.Time      `json:"resolvedAt"`
	CommunityNotes    []CommunityNote `json:"communityNotes"`
}

// ReportTemplate is what the submission layer fills in before calling
// store.Submit. Coordinates, when present, must already be anonymized.
type ReportTemplate struct {
	Type        ReportType     `json:"type"`
	Severity    ReportSeverity `json:"severity"`
	Description string         `json:"description"`
	Location    Location       `json:"location"`
	Tags        []string       `json:"tags"`
}

// ValidType reports whether t is a known report type.
func ValidType(t ReportType) bool {
	switch t {
	case TypeICEActivity, TypeCheckpoint, TypeRaid, TypeSurveillance, TypeArrest, TypePatrol:
		return true
	}
	return false
}

// ValidSeverity reports whether s is a known severity.
func ValidSeverity(s ReportSeverity) bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// ValidStatus reports whether s is a known workflow status.
func ValidStatus(s ReportStatus) bool {
	switch s {
	case StatusActive, StatusResolved, StatusUnverified, StatusVerified, StatusFlagged:
		return true
	}
	return false
}

// Queryable reports whether r carries the fields every query predicate relies
// on. Records that fail this are silently excluded from filter results so one
// corrupt entry cannot fail a whole list; they still count toward totals.
func (r IncidentReport) Queryable() bool {
	return !r.Timestamp.IsZero() && r.Type != "" && r.Severity != ""
}

// Clone returns a deep copy of r so query results can be handed out without
// aliasing the store's mutable state.
func (r IncidentReport) Clone() IncidentReport {
	out := r
	if r.Location.Coordinates != nil {
		c := *r.Location.Coordinates
		out.Location.Coordinates = &c
	}
	if r.LastVerified != nil {
		t := *r.LastVerified
		out.LastVerified = &t
	}
	if r.ResolvedAt != nil {
		t := *r.ResolvedAt
		out.ResolvedAt = &t
	}
	if r.Tags != nil {
		out.Tags = append([]string(nil), r.Tags...)
	}
	if r.CommunityNotes != nil {
		out.CommunityNotes = append([]CommunityNote(nil), r.CommunityNotes...)
	}
	return out
}
