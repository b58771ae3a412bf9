package almanac

import (
	"time"

	"github.com/litescript/ls-almanac/internal/astro"
	"github.com/litescript/ls-almanac/internal/ephem"
)

// MoonTimes describes the Moon's events for one local calendar day, with the
// same absence semantics as SunTimes.
type MoonTimes struct {
	Moonrise    time.Time
	Moonset     time.Time
	HasMoonrise bool
	HasMoonset  bool
}

// MoonTimesFor computes moonrise and moonset for the local calendar day
// containing date in the given time zone.
func (a *Almanac) MoonTimesFor(date time.Time, obs astro.Observer, tz *time.Location) (MoonTimes, error) {
	if err := obs.Validate(); err != nil {
		return MoonTimes{}, err
	}

	rs := a.FindRiseSet(date, obs, tz, ephem.MoonPosition)

	return MoonTimes{
		Moonrise:    rs.Rise,
		Moonset:     rs.Set,
		HasMoonrise: rs.HasRise,
		HasMoonset:  rs.HasSet,
	}, nil
}
