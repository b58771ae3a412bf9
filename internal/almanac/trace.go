package almanac

import (
	"time"

	"github.com/litescript/ls-almanac/internal/astro"
	"github.com/litescript/ls-almanac/internal/ephem"
)

// AltitudeSample is a single apparent-altitude measurement at a point in time.
type AltitudeSample struct {
	Time   time.Time
	AltDeg float64 // degrees above horizon, negative below
}

// AltitudeTrace contains a body's altitude over one local calendar day,
// on the same 48-point grid the rise/set solver walks.
type AltitudeTrace struct {
	Body        string
	Observer    astro.Observer
	Samples     []AltitudeSample
	GeneratedAt time.Time
}

// TraceFor computes an altitude trace for a body across the local calendar
// day containing date. Used by the sky view sparkline.
func (a *Almanac) TraceFor(body string, date time.Time, obs astro.Observer, tz *time.Location, position ephem.PositionFunc) *AltitudeTrace {
	raw := a.sampleDay(date, obs, tz, position)

	samples := make([]AltitudeSample, len(raw))
	for i, s := range raw {
		samples[i] = AltitudeSample{Time: s.t, AltDeg: s.alt}
	}

	return &AltitudeTrace{
		Body:        body,
		Observer:    obs,
		Samples:     samples,
		GeneratedAt: date,
	}
}

// Max returns the highest sample of the trace, or a zero sample for an empty
// trace.
func (t *AltitudeTrace) Max() AltitudeSample {
	var max AltitudeSample
	max.AltDeg = -90
	for _, s := range t.Samples {
		if s.AltDeg > max.AltDeg {
			max = s
		}
	}
	return max
}
