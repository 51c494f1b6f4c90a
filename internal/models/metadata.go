package models

// TypeMetadata carries the presentation attributes for a report type. The
// domain enums stay free of display concerns; UI layers key into these tables
// instead of switching on the enum themselves.
type TypeMetadata struct {
	DisplayName string
	Icon        string
	Color       string
}

// SeverityMetadata carries the presentation attributes and sort weight for a
// severity level.
type SeverityMetadata struct {
	DisplayName string
	Weight      int
	Color       string
}

var TypeInfo = map[ReportType]TypeMetadata{
	TypeICEActivity:  {DisplayName: "ICE Activity", Icon: "shield.fill", Color: "#D32F2F"},
	TypeCheckpoint:   {DisplayName: "Checkpoint", Icon: "car.fill", Color: "#F57C00"},
	TypeRaid:         {DisplayName: "Raid", Icon: "exclamationmark.triangle.fill", Color: "#C62828"},
	TypeSurveillance: {DisplayName: "Surveillance", Icon: "eye.fill", Color: "#7B1FA2"},
	TypeArrest:       {DisplayName: "Arrest", Icon: "hand.raised.fill", Color: "#B71C1C"},
	TypePatrol:       {DisplayName: "Patrol", Icon: "figure.walk", Color: "#1976D2"},
}

var SeverityInfo = map[ReportSeverity]SeverityMetadata{
	SeverityLow:      {DisplayName: "Low", Weight: 1, Color: "#388E3C"},
	SeverityMedium:   {DisplayName: "Medium", Weight: 2, Color: "#FBC02D"},
	SeverityHigh:     {DisplayName: "High", Weight: 3, Color: "#F57C00"},
	SeverityCritical: {DisplayName: "Critical", Weight: 4, Color: "#D32F2F"},
}
