// Package mockdata generates sample incident reports for local development
// and seeding. Coordinates are run through the standard submission-radius
// anonymization so seeded data obeys the same privacy bar as real data.
package mockdata

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/faro-app/backend/internal/geo"
	"github.com/faro-app/backend/internal/models"
	"github.com/google/uuid"
)

type site struct {
	address string
	lat     float64
	lon     float64
}

// Sample sites around the SF Bay Area.
var sites = []site{
	{"24th St & Mission St, San Francisco", 37.7524, -122.4184},
	{"Fruitvale BART Station, Oakland", 37.7749, -122.2242},
	{"San Jose City Hall", 37.3382, -121.8863},
	{"Redwood City Courthouse", 37.4852, -122.2364},
	{"16th St & Valencia St, San Francisco", 37.7650, -122.4216},
	{"International Blvd, Oakland", 37.7630, -122.1963},
}

var types = []models.ReportType{
	models.TypeICEActivity,
	models.TypeCheckpoint,
	models.TypeRaid,
	models.TypeSurveillance,
	models.TypeArrest,
	models.TypePatrol,
}

var severities = []models.ReportSeverity{
	models.SeverityLow,
	models.SeverityMedium,
	models.SeverityHigh,
	models.SeverityCritical,
}

var descriptions = map[models.ReportType]string{
	models.TypeICEActivity:  "Unmarked vans and agents in tactical vests seen in the area",
	models.TypeCheckpoint:   "Vehicle checkpoint stopping cars and asking for documents",
	models.TypeRaid:         "Agents entering a workplace, multiple people detained",
	models.TypeSurveillance: "Parked vehicle observing the block for several hours",
	models.TypeArrest:       "Individual taken into custody outside the courthouse",
	models.TypePatrol:       "Marked vehicles circling the neighborhood",
}

// Reports generates n sample reports with varied types, severities, ages and
// verification counts.
func Reports(n int) ([]models.IncidentReport, error) {
	reports := make([]models.IncidentReport, 0, n)
	now := time.Now()

	for i := 0; i < n; i++ {
		s := sites[i%len(sites)]
		t := types[i%len(types)]
		sev := severities[rand.Intn(len(severities))]

		coords, err := geo.Anonymize(models.Coordinates{Latitude: s.lat, Longitude: s.lon}, geo.SubmitRadiusMeters)
		if err != nil {
			return nil, fmt.Errorf("failed to anonymize sample location: %w", err)
		}

		age := time.Duration(rand.Intn(72)) * time.Hour
		report := models.IncidentReport{
			ID:                uuid.NewString(),
			Type:              t,
			Status:            models.StatusUnverified,
			Severity:          sev,
			Location:          models.Location{Address: s.address, Coordinates: &coords, Approximate: true},
			Timestamp:         now.Add(-age),
			Description:       descriptions[t],
			ReportedBy:        models.AnonymousReporter,
			VerificationCount: rand.Intn(4),
			Tags:              []string{"community", string(t)},
			IsActive:          true,
			CommunityNotes:    []models.CommunityNote{},
		}
		if report.VerificationCount > 0 {
			verifiedAt := report.Timestamp.Add(30 * time.Minute)
			report.LastVerified = &verifiedAt
			report.CommunityNotes = append(report.CommunityNotes, models.CommunityNote{
				ID:        uuid.NewString(),
				Timestamp: verifiedAt,
				Content:   "Confirmed, still ongoing as of half an hour after the first report",
				Anonymous: true,
			})
		}
		if report.VerificationCount >= 2 {
			report.Status = models.StatusVerified
		}

		// Resolve a few of the older ones so seeded data exercises the
		// inactive paths too.
		if age > 48*time.Hour && i%3 == 0 {
			resolvedAt := report.Timestamp.Add(6 * time.Hour)
			report.Status = models.StatusResolved
			report.IsActive = false
			report.ResolvedAt = &resolvedAt
		}

		reports = append(reports, report)
	}
	return reports, nil
}
