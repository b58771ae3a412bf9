// Package ephem provides low-precision geocentric position models for the
// Sun and the Moon. Both are truncated periodic series (arc-minute accuracy
// for the Moon), sufficient for rise/set display but not for scientific-grade
// ephemerides.
package ephem

import "github.com/litescript/ls-almanac/internal/astro"

// PositionFunc maps a Julian Day to geocentric equatorial coordinates.
// It is the strategy the rise/set solver is parameterized over, so the Sun
// and the Moon share one crossing-detection implementation.
type PositionFunc func(jd float64) astro.Equatorial
