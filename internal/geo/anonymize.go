package geo

import (
	"math"
	"math/rand"

	"github.com/faro-app/backend/internal/models"
)

// metersPerDegreeLat is the standard meters-per-degree-of-latitude constant.
const metersPerDegreeLat = 111320.0

// Standard anonymization radii. Capture is applied when the device location is
// first read; Submit is the stricter bar applied before a report's pin becomes
// publicly visible.
const (
	CaptureRadiusMeters = 200.0
	SubmitRadiusMeters  = 500.0
)

// Anonymize irreversibly reduces the precision of a coordinate by adding an
// independent uniform offset of up to radiusMeters on each axis, so a stored
// pin can never be walked back to the reporter's exact position. The
// worst-case displacement is radiusMeters*sqrt(2). There is no inverse
// operation; this is a privacy transform, not encryption.
func Anonymize(c models.Coordinates, radiusMeters float64) (models.Coordinates, error) {
	if radiusMeters <= 0 {
		return models.Coordinates{}, &models.InvalidArgumentError{Param: "radiusMeters", Reason: "must be positive"}
	}
	if c.Latitude < -90 || c.Latitude > 90 {
		return models.Coordinates{}, &models.InvalidArgumentError{Param: "latitude", Reason: "must be in [-90, 90]"}
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return models.Coordinates{}, &models.InvalidArgumentError{Param: "longitude", Reason: "must be in [-180, 180]"}
	}

	latOffset := (rand.Float64() - 0.5) * 2 * radiusMeters / metersPerDegreeLat

	// A degree of longitude shrinks toward the poles.
	metersPerDegreeLon := metersPerDegreeLat * math.Cos(c.Latitude*math.Pi/180)
	lonOffset := (rand.Float64() - 0.5) * 2 * radiusMeters / metersPerDegreeLon

	return models.Coordinates{
		Latitude:  c.Latitude + latOffset,
		Longitude: c.Longitude + lonOffset,
	}, nil
}
