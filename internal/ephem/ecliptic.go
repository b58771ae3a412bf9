package ephem

import (
	"math"

	"github.com/litescript/ls-almanac/internal/astro"
)

// Mean obliquity of the ecliptic: value at J2000.0 in degrees and its
// (linear) rate in degrees per day.
const (
	obliquityEpochDeg    = 23.4393
	obliquityRatePerDay  = 0.0000004
)

// obliquityDeg returns the mean obliquity of the ecliptic in degrees at jd.
func obliquityDeg(jd float64) float64 {
	return obliquityEpochDeg - obliquityRatePerDay*(jd-astro.J2000)
}

// eclipticToEquatorial rotates ecliptic coordinates (longitude, latitude,
// both degrees) into equatorial RA/Dec via the standard obliquity rotation.
func eclipticToEquatorial(lonDeg, latDeg, jd float64) astro.Equatorial {
	lon := astro.Deg2Rad(lonDeg)
	lat := astro.Deg2Rad(latDeg)
	eps := astro.Deg2Rad(obliquityDeg(jd))

	ra := math.Atan2(
		math.Sin(lon)*math.Cos(eps)-math.Tan(lat)*math.Sin(eps),
		math.Cos(lon),
	)
	dec := math.Asin(
		math.Sin(lat)*math.Cos(eps) + math.Cos(lat)*math.Sin(eps)*math.Sin(lon),
	)

	return astro.Equatorial{
		RADeg:  astro.Normalize360(astro.Rad2Deg(ra)),
		DecDeg: astro.Rad2Deg(dec),
	}
}
