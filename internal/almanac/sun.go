package almanac

import (
	"time"

	"github.com/litescript/ls-almanac/internal/astro"
	"github.com/litescript/ls-almanac/internal/ephem"
)

// SunTimes describes the Sun's events for one local calendar day.
// Absent sunrise/sunset (polar day or night) leave the Has flags false;
// callers must handle both-present, rise-only, set-only and both-absent.
type SunTimes struct {
	Sunrise    time.Time
	Sunset     time.Time
	HasSunrise bool
	HasSunset  bool

	// Daylight is true iff the query instant lies between sunrise and
	// sunset, both present.
	Daylight bool

	// DayLength is sunset minus sunrise; zero unless both are present.
	DayLength time.Duration
}

// SunTimesFor computes sunrise and sunset for the local calendar day
// containing date in the given time zone. The instant of date itself is used
// for the Daylight flag.
func (a *Almanac) SunTimesFor(date time.Time, obs astro.Observer, tz *time.Location) (SunTimes, error) {
	if err := obs.Validate(); err != nil {
		return SunTimes{}, err
	}

	rs := a.FindRiseSet(date, obs, tz, ephem.SunPosition)

	st := SunTimes{
		Sunrise:    rs.Rise,
		Sunset:     rs.Set,
		HasSunrise: rs.HasRise,
		HasSunset:  rs.HasSet,
	}
	if st.HasSunrise && st.HasSunset {
		st.Daylight = IsDaylight(date, st.Sunrise, st.Sunset)
		st.DayLength = DayLength(st.Sunrise, st.Sunset)
	}
	return st, nil
}

// SunEventKind names the next solar event.
type SunEventKind string

const (
	SunEventSunrise SunEventKind = "sunrise"
	SunEventSunset  SunEventKind = "sunset"
)

// SunEvent is the next sunrise or sunset after a given instant.
type SunEvent struct {
	Kind SunEventKind
	Time time.Time
}

// nextEventScanDays bounds the forward scan for the next solar event. A full
// year covers any polar night/day stretch.
const nextEventScanDays = 366

// NextSunEvent returns the first sunrise or sunset strictly after now.
// It scans forward day by day, so above the polar circles it keeps looking
// until the Sun next crosses the horizon. ok is false only if no event
// occurs within a year, which does not happen for valid coordinates.
func (a *Almanac) NextSunEvent(now time.Time, obs astro.Observer, tz *time.Location) (SunEvent, bool, error) {
	if err := obs.Validate(); err != nil {
		return SunEvent{}, false, err
	}

	for d := 0; d < nextEventScanDays; d++ {
		day := now.In(tz).AddDate(0, 0, d)
		rs := a.FindRiseSet(day, obs, tz, ephem.SunPosition)

		best := SunEvent{}
		found := false
		if rs.HasRise && rs.Rise.After(now) {
			best = SunEvent{Kind: SunEventSunrise, Time: rs.Rise}
			found = true
		}
		if rs.HasSet && rs.Set.After(now) {
			if !found || rs.Set.Before(best.Time) {
				best = SunEvent{Kind: SunEventSunset, Time: rs.Set}
			}
			found = true
		}
		if found {
			return best, true, nil
		}
	}
	return SunEvent{}, false, nil
}

// IsDaylight reports whether now lies within [sunrise, sunset].
func IsDaylight(now, sunrise, sunset time.Time) bool {
	return !now.Before(sunrise) && !now.After(sunset)
}

// DayLength returns the duration between sunrise and sunset.
// Callers must only pass events that actually occurred.
func DayLength(sunrise, sunset time.Time) time.Duration {
	return sunset.Sub(sunrise)
}
