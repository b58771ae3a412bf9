package astro

import (
	"errors"
	"math"
)

// Equatorial represents equatorial coordinates in degrees.
// RA is kept in degrees (0-360) rather than hours to stay consistent with
// the rest of the package's math.
type Equatorial struct {
	RADeg  float64 // right ascension, degrees [0, 360)
	DecDeg float64 // declination, degrees [-90, +90]
}

// Observer represents a ground-based observer location.
type Observer struct {
	LatDeg float64 // latitude in degrees (north positive)
	LonDeg float64 // longitude in degrees (east positive)
	Name   string  // optional name for the site
}

// Errors for observer validation.
var (
	ErrLatitudeRange  = errors.New("latitude out of range [-90, 90]")
	ErrLongitudeRange = errors.New("longitude out of range [-180, 180]")
)

// Validate rejects out-of-range coordinates before they reach the math,
// which is total over its domain and would silently produce nonsense.
func (o Observer) Validate() error {
	if o.LatDeg < -90 || o.LatDeg > 90 {
		return ErrLatitudeRange
	}
	if o.LonDeg < -180 || o.LonDeg > 180 {
		return ErrLongitudeRange
	}
	return nil
}

// horizonOffsetDeg is a fixed correction applied to the corrected altitude,
// folding the body's apparent semidiameter and the Moon's horizontal parallax
// into a single constant. It is applied identically to the Sun and the Moon.
const horizonOffsetDeg = -0.583

// Refraction band: the Saemundsson correction is only meaningful near the
// horizon; outside this band it is treated as zero.
const (
	refractionMinAltDeg = -1.0
	refractionMaxAltDeg = 15.0
)

// ApparentAltitude returns the apparent altitude of a body above the horizon
// in degrees (negative below), for an observer at a given Julian Day.
//
// The geometric altitude comes from the standard spherical-trigonometry
// identity over the hour angle; a low-altitude refraction correction and the
// fixed semidiameter/parallax offset are then applied.
func ApparentAltitude(eq Equatorial, obs Observer, jd float64) float64 {
	lst := LocalSiderealTime(jd, obs.LonDeg)

	// Hour angle, signed: negative east of the meridian, positive west.
	haDeg := NormalizeSigned180(lst - eq.RADeg)

	lat := Deg2Rad(obs.LatDeg)
	dec := Deg2Rad(eq.DecDeg)
	ha := Deg2Rad(haDeg)

	sinAlt := math.Sin(lat)*math.Sin(dec) + math.Cos(lat)*math.Cos(dec)*math.Cos(ha)

	// Clamp to [-1, 1]: floating-point overshoot near the poles of the
	// identity must not propagate an asin domain error.
	if sinAlt > 1 {
		sinAlt = 1
	} else if sinAlt < -1 {
		sinAlt = -1
	}

	altDeg := Rad2Deg(math.Asin(sinAlt))

	return altDeg + refractionDeg(altDeg) + horizonOffsetDeg
}

// refractionDeg returns the Saemundsson/Bennett atmospheric refraction
// correction in degrees for a geometric altitude, valid in the near-horizon
// band (-1°, 15°):
//
//	R (arcmin) = 1.02 / tan((alt + 10.3/(alt + 5.11))°)
func refractionDeg(altDeg float64) float64 {
	if altDeg <= refractionMinAltDeg || altDeg >= refractionMaxAltDeg {
		return 0
	}
	argDeg := altDeg + 10.3/(altDeg+5.11)
	arcmin := 1.02 / math.Tan(Deg2Rad(argDeg))
	return arcmin / 60.0
}
