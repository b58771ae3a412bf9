// Package almanac computes rise/set events, day length and lunar phase for a
// date, observer location and time zone, entirely offline. Every query is a
// pure mapping from inputs to freshly constructed values; nothing here blocks
// or performs I/O.
package almanac

import (
	"time"

	"github.com/litescript/ls-almanac/internal/astro"
	"github.com/litescript/ls-almanac/internal/ephem"
	"github.com/litescript/ls-almanac/internal/logging"
)

// Sampling grid for the daily horizon-crossing scan: 48 fixed points at
// 30-minute spacing starting at local midnight.
const (
	sampleCount    = 48
	sampleInterval = 30 * time.Minute
)

// RiseSet holds the first rise and first set event found within a local
// calendar day. Absent events (polar day/night) leave the Has flags false.
//
// Known limitation: only the first crossing of each kind in the scan is
// reported. At high latitudes the Moon can rise or set twice in one calendar
// day; the second crossing is ignored.
type RiseSet struct {
	Rise    time.Time
	Set     time.Time
	HasRise bool
	HasSet  bool
}

// Almanac answers rise/set and trace queries. The logger receives the
// solver's diagnostic altitude trace at debug level, keeping the computation
// itself free of I/O side effects.
type Almanac struct {
	log *logging.Logger
}

// New creates an Almanac. A nil logger discards diagnostics.
func New(log *logging.Logger) *Almanac {
	if log == nil {
		log = logging.Discard()
	}
	return &Almanac{log: log}
}

// altitudeSample is one point on the daily sampling grid.
type altitudeSample struct {
	t   time.Time
	alt float64
}

// sampleDay evaluates a body's apparent altitude on the 48-point grid across
// the observer's local calendar day containing date.
func (a *Almanac) sampleDay(date time.Time, obs astro.Observer, tz *time.Location, position ephem.PositionFunc) []altitudeSample {
	local := date.In(tz)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, tz)

	samples := make([]altitudeSample, sampleCount)
	for i := 0; i < sampleCount; i++ {
		t := midnight.Add(time.Duration(i) * sampleInterval)
		jd := astro.JulianDay(t)
		eq := position(jd)
		alt := astro.ApparentAltitude(eq, obs, jd)
		samples[i] = altitudeSample{t: t, alt: alt}

		a.log.Debug("altitude sample %02d %s alt=%.3f ra=%.3f dec=%.3f",
			i, t.Format("15:04"), alt, eq.RADeg, eq.DecDeg)
	}
	return samples
}

// FindRiseSet scans the observer's local calendar day for the first
// below-to-above horizon transition (rise) and the first above-to-below
// transition (set), locating each by linear interpolation between the
// bracketing samples.
func (a *Almanac) FindRiseSet(date time.Time, obs astro.Observer, tz *time.Location, position ephem.PositionFunc) RiseSet {
	samples := a.sampleDay(date, obs, tz, position)

	var rs RiseSet
	for i := 1; i < len(samples); i++ {
		prev, curr := samples[i-1], samples[i]

		if !rs.HasRise && prev.alt < 0 && curr.alt >= 0 {
			rs.Rise = interpolateCrossing(prev, curr)
			rs.HasRise = true
		}
		if !rs.HasSet && prev.alt >= 0 && curr.alt < 0 {
			rs.Set = interpolateCrossing(prev, curr)
			rs.HasSet = true
		}
		if rs.HasRise && rs.HasSet {
			break
		}
	}
	return rs
}

// interpolateCrossing locates the zero crossing between two adjacent samples
// by linear interpolation.
func interpolateCrossing(prev, curr altitudeSample) time.Time {
	ratio := -prev.alt / (curr.alt - prev.alt)
	offset := time.Duration(ratio * float64(sampleInterval))
	return curr.t.Add(-sampleInterval).Add(offset)
}
