package ephem

import (
	"math"
	"testing"
	"time"

	"github.com/litescript/ls-almanac/internal/astro"
)

func TestMoonPositionKnownDate(t *testing.T) {
	// Meeus, Astronomical Algorithms, example 47.a: 1992 April 12 0h.
	// The full series gives RA 134.688°, Dec +13.768°; the truncated series
	// used here lands within ~0.4°.
	jd := astro.JulianDay(time.Date(1992, 4, 12, 0, 0, 0, 0, time.UTC))
	got := MoonPosition(jd)

	if math.Abs(got.RADeg-134.688) > 1.0 {
		t.Errorf("MoonPosition() RA = %.3f°, want 134.688° ±1°", got.RADeg)
	}
	if math.Abs(got.DecDeg-13.768) > 1.0 {
		t.Errorf("MoonPosition() Dec = %.3f°, want 13.768° ±1°", got.DecDeg)
	}
}

func TestMoonPositionAtSyzygies(t *testing.T) {
	// At new moon the Moon stands close to the Sun on the sky; at full moon
	// it stands opposite. Reference events from January 2000.
	newMoon := time.Date(2000, 1, 6, 18, 14, 0, 0, time.UTC)
	fullMoon := time.Date(2000, 1, 21, 4, 40, 0, 0, time.UTC)

	t.Run("new moon near the Sun", func(t *testing.T) {
		jd := astro.JulianDay(newMoon)
		m := MoonPosition(jd)
		s := SunPosition(jd)

		sep := astro.NormalizeSigned180(m.RADeg - s.RADeg)
		if math.Abs(sep) > 7 {
			t.Errorf("new moon RA separation = %.2f°, want within ±7°", sep)
		}
	})

	t.Run("full moon opposite the Sun", func(t *testing.T) {
		jd := astro.JulianDay(fullMoon)
		m := MoonPosition(jd)
		s := SunPosition(jd)

		sep := astro.Normalize360(m.RADeg - s.RADeg)
		if math.Abs(sep-180) > 7 {
			t.Errorf("full moon RA separation = %.2f°, want 180° ±7°", sep)
		}
	})
}

func TestMoonPositionRanges(t *testing.T) {
	// Scan one synodic month at 6-hour steps: RA stays normalized and the
	// declination stays within obliquity plus the Moon's orbital inclination.
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 30*4; i++ {
		jd := astro.JulianDay(start.Add(time.Duration(i) * 6 * time.Hour))
		got := MoonPosition(jd)

		if got.RADeg < 0 || got.RADeg >= 360 {
			t.Fatalf("step %d: RA out of [0,360): %v", i, got.RADeg)
		}
		if got.DecDeg < -29.5 || got.DecDeg > 29.5 {
			t.Fatalf("step %d: Dec out of range: %v", i, got.DecDeg)
		}
	}
}

func TestPositionFuncSignatures(t *testing.T) {
	// Both bodies must satisfy the solver's strategy type.
	for _, pf := range []PositionFunc{SunPosition, MoonPosition} {
		eq := pf(astro.J2000)
		if eq.RADeg < 0 || eq.RADeg >= 360 {
			t.Errorf("RA out of range at J2000: %+v", eq)
		}
	}
}
