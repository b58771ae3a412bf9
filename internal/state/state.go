// Package state provides thread-safe caching of computed almanac results.
//
// Rise/set results are deterministic and scoped to a (local calendar date,
// observer) pair, so they are memoized and only recomputed when the date or
// the observer changes. Instant-dependent fields (daylight flag, next event,
// lunar phase) are cheap and recomputed on every snapshot, which lets a 1 Hz
// UI countdown run without re-running the solvers.
package state

import (
	"sync"
	"time"

	"github.com/litescript/ls-almanac/internal/almanac"
	"github.com/litescript/ls-almanac/internal/astro"
	"github.com/litescript/ls-almanac/internal/ephem"
)

// dateKeyLayout identifies a local calendar day.
const dateKeyLayout = "2006-01-02"

// Snapshot is an immutable view of the almanac for one instant.
type Snapshot struct {
	Observer astro.Observer
	TimeZone *time.Location
	Now      time.Time

	Sun   almanac.SunTimes
	Moon  almanac.MoonTimes
	Phase almanac.MoonPhase

	NextEvent    almanac.SunEvent
	HasNextEvent bool

	SunTrace  *almanac.AltitudeTrace
	MoonTrace *almanac.AltitudeTrace

	ComputedAt time.Time // when the date-scoped fields were last recomputed
}

// Manager owns the cached almanac state for a single observer.
type Manager struct {
	mu  sync.Mutex
	alm *almanac.Almanac

	obs astro.Observer
	tz  *time.Location

	dateKey string
	cached  Snapshot
	valid   bool
}

// NewManager creates a state manager for an observer and time zone.
func NewManager(alm *almanac.Almanac, obs astro.Observer, tz *time.Location) *Manager {
	return &Manager{alm: alm, obs: obs, tz: tz}
}

// Observer returns the configured observer.
func (m *Manager) Observer() astro.Observer {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.obs
}

// SetObserver replaces the observer and invalidates the cache.
func (m *Manager) SetObserver(obs astro.Observer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.obs = obs
	m.valid = false
}

// Snapshot returns the almanac state at now, recomputing the date-scoped
// rise/set results only when the local calendar day or observer changed.
func (m *Manager) Snapshot(now time.Time) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := now.In(m.tz).Format(dateKeyLayout)
	if !m.valid || key != m.dateKey {
		if err := m.recompute(now); err != nil {
			return Snapshot{}, err
		}
		m.dateKey = key
	}

	snap := m.cached
	snap.Now = now

	// Instant-dependent fields.
	if snap.Sun.HasSunrise && snap.Sun.HasSunset {
		snap.Sun.Daylight = almanac.IsDaylight(now, snap.Sun.Sunrise, snap.Sun.Sunset)
	}
	snap.Phase = almanac.CurrentMoonPhase(now)

	next, ok, err := m.alm.NextSunEvent(now, m.obs, m.tz)
	if err != nil {
		return Snapshot{}, err
	}
	snap.NextEvent = next
	snap.HasNextEvent = ok

	return snap, nil
}

// recompute rebuilds the date-scoped cache. Caller holds the lock.
func (m *Manager) recompute(now time.Time) error {
	sun, err := m.alm.SunTimesFor(now, m.obs, m.tz)
	if err != nil {
		return err
	}
	moon, err := m.alm.MoonTimesFor(now, m.obs, m.tz)
	if err != nil {
		return err
	}

	m.cached = Snapshot{
		Observer:   m.obs,
		TimeZone:   m.tz,
		Sun:        sun,
		Moon:       moon,
		SunTrace:   m.alm.TraceFor("Sun", now, m.obs, m.tz, ephem.SunPosition),
		MoonTrace:  m.alm.TraceFor("Moon", now, m.obs, m.tz, ephem.MoonPosition),
		ComputedAt: now,
	}
	m.valid = true
	return nil
}
