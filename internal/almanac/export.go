package almanac

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/litescript/ls-almanac/internal/astro"
)

// SnapshotExport is the JSON-serializable representation of one day's
// almanac for an observer.
type SnapshotExport struct {
	GeneratedAt time.Time      `json:"generated_at"`
	Observer    ObserverExport `json:"observer"`
	Sun         SunExport      `json:"sun"`
	Moon        MoonExport     `json:"moon"`
	Phase       PhaseExport    `json:"phase"`
}

// ObserverExport is a JSON-friendly observer representation.
type ObserverExport struct {
	Name      string  `json:"name,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	TimeZone  string  `json:"time_zone"`
}

// SunExport holds the day's solar events; absent events are null.
type SunExport struct {
	Sunrise          *time.Time `json:"sunrise"`
	Sunset           *time.Time `json:"sunset"`
	Daylight         bool       `json:"daylight"`
	DayLengthSeconds float64    `json:"day_length_seconds"`
}

// MoonExport holds the day's lunar events; absent events are null.
type MoonExport struct {
	Moonrise *time.Time `json:"moonrise"`
	Moonset  *time.Time `json:"moonset"`
}

// PhaseExport is a JSON-friendly lunar phase representation.
type PhaseExport struct {
	Name               string  `json:"name"`
	Illumination       float64 `json:"illumination"`
	AgeDays            int     `json:"age_days"`
	Waxing             bool    `json:"waxing"`
	NextPhase          string  `json:"next_phase"`
	DaysToNextPhase    int     `json:"days_to_next_phase"`
	DaysToNextFullMoon int     `json:"days_to_next_full_moon"`
}

// ExportSnapshot converts computed almanac values to an exportable format.
func ExportSnapshot(obs astro.Observer, tz *time.Location, now time.Time, sun SunTimes, moon MoonTimes, phase MoonPhase) *SnapshotExport {
	export := &SnapshotExport{
		GeneratedAt: now,
		Observer: ObserverExport{
			Name:      obs.Name,
			Latitude:  obs.LatDeg,
			Longitude: obs.LonDeg,
			TimeZone:  tz.String(),
		},
		Sun: SunExport{
			Daylight:         sun.Daylight,
			DayLengthSeconds: sun.DayLength.Seconds(),
		},
		Phase: PhaseExport{
			Name:               string(phase.Name),
			Illumination:       phase.Illumination,
			AgeDays:            phase.AgeDays,
			Waxing:             phase.Waxing,
			NextPhase:          string(phase.NextPhase),
			DaysToNextPhase:    phase.DaysToNext,
			DaysToNextFullMoon: phase.DaysToFull,
		},
	}

	if sun.HasSunrise {
		t := sun.Sunrise
		export.Sun.Sunrise = &t
	}
	if sun.HasSunset {
		t := sun.Sunset
		export.Sun.Sunset = &t
	}
	if moon.HasMoonrise {
		t := moon.Moonrise
		export.Moon.Moonrise = &t
	}
	if moon.HasMoonset {
		t := moon.Moonset
		export.Moon.Moonset = &t
	}

	return export
}

// WriteJSON writes the snapshot as indented JSON.
func (e *SnapshotExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}

// clockLayout is how event times are rendered in text output.
const clockLayout = "15:04"

// WriteSummary writes a human-readable one-day almanac summary.
func WriteSummary(w io.Writer, obs astro.Observer, tz *time.Location, now time.Time, sun SunTimes, moon MoonTimes, phase MoonPhase) {
	local := now.In(tz)

	name := obs.Name
	if name == "" {
		name = fmt.Sprintf("%.4f, %.4f", obs.LatDeg, obs.LonDeg)
	}

	fmt.Fprintf(w, "Almanac for %s on %s (%s)\n", name, local.Format("2006-01-02"), tz)
	fmt.Fprintf(w, "  Sunrise:  %s\n", eventClock(sun.Sunrise, sun.HasSunrise, tz))
	fmt.Fprintf(w, "  Sunset:   %s\n", eventClock(sun.Sunset, sun.HasSunset, tz))
	if sun.HasSunrise && sun.HasSunset {
		fmt.Fprintf(w, "  Day length: %s\n", formatDuration(sun.DayLength))
	}
	fmt.Fprintf(w, "  Moonrise: %s\n", eventClock(moon.Moonrise, moon.HasMoonrise, tz))
	fmt.Fprintf(w, "  Moonset:  %s\n", eventClock(moon.Moonset, moon.HasMoonset, tz))
	fmt.Fprintf(w, "  Moon: %s, %.0f%% illuminated, %d days old\n",
		phase.Name, phase.Illumination*100, phase.AgeDays)
	fmt.Fprintf(w, "  Next phase: %s in %d days; full moon in %d days\n",
		phase.NextPhase, phase.DaysToNext, phase.DaysToFull)
}

// WriteNowLine writes a single-line countdown to the next sun event.
func WriteNowLine(w io.Writer, now time.Time, tz *time.Location, ev SunEvent, ok bool) {
	if !ok {
		fmt.Fprintln(w, "no sunrise or sunset within the next year")
		return
	}
	remaining := ev.Time.Sub(now).Round(time.Second)
	fmt.Fprintf(w, "%s at %s (in %s)\n",
		ev.Kind, ev.Time.In(tz).Format(clockLayout), formatDuration(remaining))
}

func eventClock(t time.Time, ok bool, tz *time.Location) string {
	if !ok {
		return "--:--"
	}
	return t.In(tz).Format(clockLayout)
}

// formatDuration renders a duration as "12h 08m" or "42m 10s" for short spans.
func formatDuration(d time.Duration) string {
	if d < 0 {
		d = -d
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h == 0 {
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm %02ds", m, s)
	}
	return fmt.Sprintf("%dh %02dm", h, m)
}
