package geo

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/faro-app/backend/internal/models"
)

func TestAnonymizeStaysWithinJitterBound(t *testing.T) {
	origin := models.Coordinates{Latitude: 37.7749, Longitude: -122.4194}
	radii := []float64{50, CaptureRadiusMeters, SubmitRadiusMeters, 2000}

	for _, radius := range radii {
		bound := radius*math.Sqrt2 + 1 // small epsilon for float error
		for i := 0; i < 1000; i++ {
			out, err := Anonymize(origin, radius)
			if err != nil {
				t.Fatalf("Anonymize failed for radius %v: %v", radius, err)
			}
			displacedMeters := DistanceKm(origin.Latitude, origin.Longitude, out.Latitude, out.Longitude) * 1000
			if displacedMeters > bound {
				t.Fatalf("Displacement %vm exceeds bound %vm for radius %v", displacedMeters, bound, radius)
			}
		}
	}
}

func TestAnonymizeIsNonDeterministic(t *testing.T) {
	origin := models.Coordinates{Latitude: 37.7484, Longitude: -122.3967}

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		out, err := Anonymize(origin, SubmitRadiusMeters)
		if err != nil {
			t.Fatalf("Anonymize failed: %v", err)
		}
		seen[fmt.Sprintf("%.12f,%.12f", out.Latitude, out.Longitude)] = true
	}

	if len(seen) <= 990 {
		t.Errorf("Expected more than 990 distinct outputs in 1000 trials, got %d", len(seen))
	}
}

func TestAnonymizeChangesTheInput(t *testing.T) {
	// The output should differ from the input on at least one axis
	origin := models.Coordinates{Latitude: 10, Longitude: 20}
	out, err := Anonymize(origin, SubmitRadiusMeters)
	if err != nil {
		t.Fatalf("Anonymize failed: %v", err)
	}
	if out.Latitude == origin.Latitude && out.Longitude == origin.Longitude {
		t.Error("Expected jittered output to differ from the input")
	}
}

func TestAnonymizeRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		coords models.Coordinates
		radius float64
	}{
		{name: "zero radius", coords: models.Coordinates{Latitude: 10, Longitude: 10}, radius: 0},
		{name: "negative radius", coords: models.Coordinates{Latitude: 10, Longitude: 10}, radius: -200},
		{name: "latitude too high", coords: models.Coordinates{Latitude: 91, Longitude: 10}, radius: 200},
		{name: "latitude too low", coords: models.Coordinates{Latitude: -90.5, Longitude: 10}, radius: 200},
		{name: "longitude too high", coords: models.Coordinates{Latitude: 10, Longitude: 180.1}, radius: 200},
		{name: "longitude too low", coords: models.Coordinates{Latitude: 10, Longitude: -181}, radius: 200},
	}

	for _, tt := range tests {
		_, err := Anonymize(tt.coords, tt.radius)
		if err == nil {
			t.Errorf("%s: expected an error", tt.name)
			continue
		}
		var argErr *models.InvalidArgumentError
		if !errors.As(err, &argErr) {
			t.Errorf("%s: expected InvalidArgumentError, got %T", tt.name, err)
		}
	}
}
