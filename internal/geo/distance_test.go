package geo

import (
	"math"
	"testing"
)

func TestDistanceKmZeroForSamePoint(t *testing.T) {
	points := []struct {
		lat float64
		lon float64
	}{
		{0, 0},
		{37.7749, -122.4194},
		{-33.8688, 151.2093},
		{89.9, 179.9},
	}

	for _, p := range points {
		if d := DistanceKm(p.lat, p.lon, p.lat, p.lon); d != 0 {
			t.Errorf("Expected zero distance at (%v, %v), got %v", p.lat, p.lon, d)
		}
	}
}

func TestDistanceKmSymmetry(t *testing.T) {
	d1 := DistanceKm(37.7749, -122.4194, 40.7128, -74.0060)
	d2 := DistanceKm(40.7128, -74.0060, 37.7749, -122.4194)

	if math.Abs(d1-d2) > 1e-9 {
		t.Errorf("Expected symmetric distances, got %v and %v", d1, d2)
	}
}

func TestDistanceKmKnownFixture(t *testing.T) {
	// San Francisco to San Jose is roughly 69 km
	d := DistanceKm(37.7749, -122.4194, 37.3382, -121.8863)

	if d < 67 || d > 71 {
		t.Errorf("Expected SF-SJ distance of about 69 km, got %v", d)
	}
}
