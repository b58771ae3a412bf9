package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/litescript/ls-almanac/internal/almanac"
	"github.com/litescript/ls-almanac/internal/astro"
	"github.com/litescript/ls-almanac/internal/state"
)

var testZone = time.FixedZone("UTC-5", -5*3600)

func testSnapshot() state.Snapshot {
	rise := time.Date(2024, 3, 20, 6, 3, 0, 0, testZone)
	set := time.Date(2024, 3, 20, 18, 3, 0, 0, testZone)
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, testZone)

	return state.Snapshot{
		Observer: astro.Observer{LatDeg: 40.7128, LonDeg: -74.0060, Name: "New York City"},
		TimeZone: testZone,
		Now:      now,
		Sun: almanac.SunTimes{
			Sunrise: rise, Sunset: set,
			HasSunrise: true, HasSunset: true,
			Daylight:  true,
			DayLength: set.Sub(rise),
		},
		Moon: almanac.MoonTimes{
			Moonset:    time.Date(2024, 3, 20, 4, 10, 0, 0, testZone),
			Moonrise:   time.Date(2024, 3, 20, 13, 46, 0, 0, testZone),
			HasMoonset: true, HasMoonrise: true,
		},
		Phase: almanac.MoonPhase{
			Name: almanac.PhaseWaxingGibbous, Illumination: 0.81,
			AgeDays: 10, Waxing: true,
			NextPhase: almanac.PhaseFullMoon, DaysToNext: 5, DaysToFull: 5,
		},
		NextEvent:    almanac.SunEvent{Kind: almanac.SunEventSunset, Time: set},
		HasNextEvent: true,
	}
}

func TestDashboardViewShowsSunAndMoonTimes(t *testing.T) {
	m := NewDashboardModel().UpdateData(testSnapshot())
	view := m.View()

	for _, want := range []string{
		"Sun", "Sunrise", "06:03", "Sunset", "18:03",
		"Day length", "12h 00m",
		"Moon", "Moonrise", "13:46", "Moonset", "04:10",
		"Waxing Gibbous", "81%", "Age 10 days",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("dashboard view missing %q", want)
		}
	}
}

func TestDashboardCountdown(t *testing.T) {
	m := NewDashboardModel().UpdateData(testSnapshot())
	view := m.View()

	// Noon to an 18:03 sunset is 6h 03m away.
	if !strings.Contains(view, "Next sunset at 18:03:00") {
		t.Errorf("countdown line missing, view:\n%s", view)
	}
	if !strings.Contains(view, "6h 03m 00s") {
		t.Errorf("remaining duration missing, view:\n%s", view)
	}
}

func TestDashboardPolarNight(t *testing.T) {
	snap := testSnapshot()
	snap.Sun = almanac.SunTimes{}
	snap.HasNextEvent = false
	snap.NextEvent = almanac.SunEvent{}

	view := NewDashboardModel().UpdateData(snap).View()

	if !strings.Contains(view, "--:--") {
		t.Error("absent rise/set should render as --:--")
	}
	if strings.Contains(view, "Day length") {
		t.Error("day length should be hidden without both sunrise and sunset")
	}
	if !strings.Contains(view, "No sunrise or sunset") {
		t.Error("missing no-event countdown message")
	}
}

func TestDashboardViewBeforeFirstSnapshot(t *testing.T) {
	view := NewDashboardModel().View()
	if !strings.Contains(view, "Computing almanac") {
		t.Errorf("empty model view = %q", view)
	}
}

func TestEventLine(t *testing.T) {
	at := time.Date(2024, 3, 20, 6, 3, 0, 0, testZone)

	got := eventLine("Sunrise", at, true, testZone)
	if !strings.Contains(got, "Sunrise") || !strings.Contains(got, "06:03") {
		t.Errorf("eventLine = %q", got)
	}

	got = eventLine("Sunset", time.Time{}, false, testZone)
	if !strings.Contains(got, "--:--") {
		t.Errorf("absent eventLine = %q", got)
	}
}

func TestFormatHM(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{12 * time.Hour, "12h 00m"},
		{11*time.Hour + 59*time.Minute + 53*time.Second, "11h 59m"},
		{45 * time.Minute, "0h 45m"},
	}
	for _, tt := range tests {
		if got := formatHM(tt.d); got != tt.want {
			t.Errorf("formatHM(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestFormatHMS(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{6*time.Hour + 3*time.Minute, "6h 03m 00s"},
		{42*time.Minute + 10*time.Second, "42m 10s"},
		{-90 * time.Second, "01m 30s"},
	}
	for _, tt := range tests {
		if got := formatHMS(tt.d); got != tt.want {
			t.Errorf("formatHMS(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
