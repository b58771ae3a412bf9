// Package astro provides astronomical time conversions, coordinate
// transformations and sky math.
package astro

import (
	"math"
	"time"
)

// JDUnixEpoch is the Julian Day of the Unix epoch (1970-01-01 00:00:00 UTC).
const JDUnixEpoch = 2440587.5

// J2000 is the Julian Day of the standard J2000.0 epoch
// (2000-01-01 12:00:00 TT, treated as UTC at this precision).
const J2000 = 2451545.0

// secondsPerDay is the length of a Julian day in SI seconds.
const secondsPerDay = 86400.0

// daysPerJulianCentury is the number of days in a Julian century.
const daysPerJulianCentury = 36525.0

// JulianDay converts an instant to a Julian Day number.
// Defined for all representable instants; sub-second precision is kept.
func JulianDay(t time.Time) float64 {
	unix := float64(t.Unix()) + float64(t.Nanosecond())/1e9
	return unix/secondsPerDay + JDUnixEpoch
}

// TimeFromJulianDay converts a Julian Day number back to an instant (UTC).
// It is the inverse of JulianDay up to floating-point rounding.
func TimeFromJulianDay(jd float64) time.Time {
	unix := (jd - JDUnixEpoch) * secondsPerDay
	sec := math.Floor(unix)
	nsec := math.Round((unix - sec) * 1e9)
	return time.Unix(int64(sec), int64(nsec)).UTC()
}

// JulianCenturies returns the number of Julian centuries between jd and J2000.0.
func JulianCenturies(jd float64) float64 {
	return (jd - J2000) / daysPerJulianCentury
}
