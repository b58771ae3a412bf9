package ephem

import (
	"math"

	"github.com/litescript/ls-almanac/internal/astro"
)

// Solar series constants: mean longitude and mean anomaly at J2000.0 and
// their rates in degrees per Julian century (Astronomical Almanac).
const (
	sunMeanLongitudeEpoch = 280.46646
	sunMeanLongitudeRate  = 36000.76983

	sunMeanAnomalyEpoch = 357.52911
	sunMeanAnomalyRate  = 35999.05029
)

// Equation-of-center amplitudes in degrees.
const (
	sunCenterFirst  = 1.914602 // sin(M)
	sunCenterSecond = 0.019993 // sin(2M)
	sunCenterThird  = 0.000289 // sin(3M)
)

// SunPosition returns the Sun's approximate geocentric equatorial
// coordinates at the given Julian Day. Structurally this mirrors
// MoonPosition: fundamental arguments, a short periodic series for the
// ecliptic longitude, then the obliquity rotation. The Sun's ecliptic
// latitude is zero at this precision.
func SunPosition(jd float64) astro.Equatorial {
	T := astro.JulianCenturies(jd)

	L0 := astro.Normalize360(sunMeanLongitudeEpoch + sunMeanLongitudeRate*T)
	M := astro.Normalize360(sunMeanAnomalyEpoch + sunMeanAnomalyRate*T)
	Mr := astro.Deg2Rad(M)

	// Equation of center.
	C := sunCenterFirst*math.Sin(Mr) +
		sunCenterSecond*math.Sin(2*Mr) +
		sunCenterThird*math.Sin(3*Mr)

	// True ecliptic longitude; latitude is zero for the Sun.
	lonDeg := L0 + C

	return eclipticToEquatorial(lonDeg, 0, jd)
}
