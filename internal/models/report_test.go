package models

import (
	"testing"
	"time"
)

func TestValidators(t *testing.T) {
	knownTypes := []ReportType{TypeICEActivity, TypeCheckpoint, TypeRaid, TypeSurveillance, TypeArrest, TypePatrol}
	for _, rt := range knownTypes {
		if !ValidType(rt) {
			t.Errorf("Expected %s to be a valid type", rt)
		}
	}
	if ValidType("traffic_jam") {
		t.Error("Expected traffic_jam to be invalid")
	}

	knownSeverities := []ReportSeverity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}
	for _, s := range knownSeverities {
		if !ValidSeverity(s) {
			t.Errorf("Expected %s to be a valid severity", s)
		}
	}
	if ValidSeverity("mild") {
		t.Error("Expected mild to be invalid")
	}

	knownStatuses := []ReportStatus{StatusActive, StatusResolved, StatusUnverified, StatusVerified, StatusFlagged}
	for _, s := range knownStatuses {
		if !ValidStatus(s) {
			t.Errorf("Expected %s to be a valid status", s)
		}
	}
}

func TestMetadataCoversEveryEnumValue(t *testing.T) {
	for _, rt := range []ReportType{TypeICEActivity, TypeCheckpoint, TypeRaid, TypeSurveillance, TypeArrest, TypePatrol} {
		if _, ok := TypeInfo[rt]; !ok {
			t.Errorf("Missing metadata for type %s", rt)
		}
	}
	for _, s := range []ReportSeverity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical} {
		if _, ok := SeverityInfo[s]; !ok {
			t.Errorf("Missing metadata for severity %s", s)
		}
	}
	// Severity weights must order the levels
	if !(SeverityInfo[SeverityLow].Weight < SeverityInfo[SeverityMedium].Weight &&
		SeverityInfo[SeverityMedium].Weight < SeverityInfo[SeverityHigh].Weight &&
		SeverityInfo[SeverityHigh].Weight < SeverityInfo[SeverityCritical].Weight) {
		t.Error("Severity weights must be strictly increasing")
	}
}

func TestLocationCoords(t *testing.T) {
	withPin := Location{Address: "somewhere", Coordinates: &Coordinates{Latitude: 1, Longitude: 2}}
	if c, ok := withPin.Coords(); !ok || c.Latitude != 1 || c.Longitude != 2 {
		t.Errorf("Expected coords (1, 2), got %v ok=%v", c, ok)
	}

	pinless := Location{Address: "somewhere else"}
	if _, ok := pinless.Coords(); ok {
		t.Error("Expected no coords for a pinless location")
	}
}

func TestQueryable(t *testing.T) {
	good := IncidentReport{Type: TypeRaid, Severity: SeverityHigh, Timestamp: time.Now()}
	if !good.Queryable() {
		t.Error("Expected a complete report to be queryable")
	}

	tests := []struct {
		name   string
		report IncidentReport
	}{
		{name: "missing timestamp", report: IncidentReport{Type: TypeRaid, Severity: SeverityHigh}},
		{name: "missing type", report: IncidentReport{Severity: SeverityHigh, Timestamp: time.Now()}},
		{name: "missing severity", report: IncidentReport{Type: TypeRaid, Timestamp: time.Now()}},
	}
	for _, tt := range tests {
		if tt.report.Queryable() {
			t.Errorf("%s: expected report to be excluded from queries", tt.name)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	verifiedAt := time.Now()
	original := IncidentReport{
		ID:       "r",
		Type:     TypeRaid,
		Severity: SeverityHigh,
		Location: Location{
			Coordinates: &Coordinates{Latitude: 1, Longitude: 2},
		},
		Timestamp:    time.Now(),
		Tags:         []string{"one"},
		LastVerified: &verifiedAt,
		CommunityNotes: []CommunityNote{
			{ID: "n", Content: "hello", Anonymous: true},
		},
	}

	clone := original.Clone()
	clone.Location.Coordinates.Latitude = 99
	clone.Tags[0] = "tampered"
	clone.CommunityNotes[0].Content = "tampered"
	*clone.LastVerified = verifiedAt.Add(time.Hour)

	if original.Location.Coordinates.Latitude == 99 {
		t.Error("Clone shares coordinates with the original")
	}
	if original.Tags[0] == "tampered" {
		t.Error("Clone shares tags with the original")
	}
	if original.CommunityNotes[0].Content == "tampered" {
		t.Error("Clone shares notes with the original")
	}
	if !original.LastVerified.Equal(verifiedAt) {
		t.Error("Clone shares lastVerified with the original")
	}
}
