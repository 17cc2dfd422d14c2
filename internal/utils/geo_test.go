package utils

import (
	"math"
	"testing"
)

func TestIsValidCoordinates(t *testing.T) {
	cases := []struct {
		lat, lng float64
		want     bool
	}{
		{0, 0, true},
		{90, 180, true},
		{-90, -180, true},
		{90.1, 0, false},
		{-90.1, 0, false},
		{0, 180.1, false},
		{0, -180.1, false},
	}
	for _, tc := range cases {
		if got := IsValidCoordinates(tc.lat, tc.lng); got != tc.want {
			t.Errorf("IsValidCoordinates(%v, %v) = %v, want %v", tc.lat, tc.lng, got, tc.want)
		}
	}
}

func TestCalculateDistance(t *testing.T) {
	// Bangalore city center to the airport, roughly 28 km great-circle.
	got := CalculateDistance(12.9716, 77.5946, 13.1986, 77.7066)
	if math.Abs(got-28) > 5 {
		t.Errorf("distance = %v km, want roughly 28", got)
	}

	if d := CalculateDistance(12.97, 77.59, 12.97, 77.59); d != 0 {
		t.Errorf("zero distance = %v, want 0", d)
	}
}

func TestIsWithinRadius(t *testing.T) {
	if !IsWithinRadius(12.9716, 77.5946, 12.9750, 77.5990, 1) {
		t.Error("point a few hundred meters away should be within 1 km")
	}
	if IsWithinRadius(12.9716, 77.5946, 13.1986, 77.7066, 5) {
		t.Error("airport should not be within 5 km of the city center")
	}
}
