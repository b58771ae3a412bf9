package astro

import (
	"math"
	"testing"
)

func TestNormalize360(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{359.9, 359.9},
		{360, 0},
		{720.5, 0.5},
		{-90, 270},
		{-360, 0},
		{-720.25, 359.75},
	}

	for _, tt := range tests {
		if got := Normalize360(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Normalize360(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeSigned180(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{179.9, 179.9},
		{180, -180},
		{270, -90},
		{-90, -90},
		{-270, 90},
		{540, -180},
	}

	for _, tt := range tests {
		if got := NormalizeSigned180(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NormalizeSigned180(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDegRadRoundTrip(t *testing.T) {
	for _, deg := range []float64{-180, -45.5, 0, 30, 90, 359.999} {
		if got := Rad2Deg(Deg2Rad(deg)); math.Abs(got-deg) > 1e-12 {
			t.Errorf("Rad2Deg(Deg2Rad(%v)) = %v", deg, got)
		}
	}
}
