package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-almanac/internal/state"
)

// Styles for the dashboard cards
var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2).
			Width(34)

	cardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	countdownStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("46"))

	absentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Italic(true)
)

// DashboardModel is the sun/moon overview with the live countdown.
type DashboardModel struct {
	width    int
	height   int
	snapshot state.Snapshot
}

// NewDashboardModel creates a new dashboard model.
func NewDashboardModel() DashboardModel {
	return DashboardModel{}
}

// SetSize updates the viewport size.
func (m DashboardModel) SetSize(width, height int) DashboardModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with a new snapshot.
func (m DashboardModel) UpdateData(snapshot state.Snapshot) DashboardModel {
	m.snapshot = snapshot
	return m
}

// View renders the dashboard.
func (m DashboardModel) View() string {
	if m.snapshot.TimeZone == nil {
		return dimStyle.Render("Computing almanac...")
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top, m.sunCard(), " ", m.moonCard())

	var b strings.Builder
	b.WriteString(cards)
	b.WriteString("\n\n")
	b.WriteString(m.renderCountdown())
	return b.String()
}

func (m DashboardModel) sunCard() string {
	snap := m.snapshot
	tz := snap.TimeZone

	var b strings.Builder
	b.WriteString(cardTitleStyle.Render("Sun"))
	b.WriteString("\n")
	b.WriteString(eventLine("Sunrise", snap.Sun.Sunrise, snap.Sun.HasSunrise, tz))
	b.WriteString(eventLine("Sunset", snap.Sun.Sunset, snap.Sun.HasSunset, tz))

	if snap.Sun.HasSunrise && snap.Sun.HasSunset {
		b.WriteString(valueStyle.Render(fmt.Sprintf("Day length  %s", formatHM(snap.Sun.DayLength))))
		b.WriteString("\n")
	}

	if snap.Sun.Daylight {
		b.WriteString(valueStyle.Render("Currently daylight"))
	} else {
		b.WriteString(absentStyle.Render("Currently night"))
	}

	return cardStyle.Render(b.String())
}

func (m DashboardModel) moonCard() string {
	snap := m.snapshot
	tz := snap.TimeZone

	var b strings.Builder
	b.WriteString(cardTitleStyle.Render("Moon"))
	b.WriteString("\n")
	b.WriteString(eventLine("Moonrise", snap.Moon.Moonrise, snap.Moon.HasMoonrise, tz))
	b.WriteString(eventLine("Moonset", snap.Moon.Moonset, snap.Moon.HasMoonset, tz))

	p := snap.Phase
	b.WriteString(valueStyle.Render(fmt.Sprintf("%s  %.0f%%", p.Name, p.Illumination*100)))
	b.WriteString("\n")
	b.WriteString(valueStyle.Render(fmt.Sprintf("Age %d days", p.AgeDays)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%s in %dd, full in %dd", p.NextPhase, p.DaysToNext, p.DaysToFull)))

	return cardStyle.Render(b.String())
}

func (m DashboardModel) renderCountdown() string {
	snap := m.snapshot
	if !snap.HasNextEvent {
		return absentStyle.Render("No sunrise or sunset within the next year")
	}

	remaining := snap.NextEvent.Time.Sub(snap.Now).Round(time.Second)
	at := snap.NextEvent.Time.In(snap.TimeZone).Format("15:04:05")

	return countdownStyle.Render(fmt.Sprintf("Next %s at %s (in %s)",
		snap.NextEvent.Kind, at, formatHMS(remaining)))
}

func eventLine(label string, t time.Time, ok bool, tz *time.Location) string {
	if !ok {
		return absentStyle.Render(fmt.Sprintf("%-9s --:--", label)) + "\n"
	}
	return valueStyle.Render(fmt.Sprintf("%-9s %s", label, t.In(tz).Format("15:04"))) + "\n"
}

func formatHM(d time.Duration) string {
	h := int(d.Hours())
	min := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %02dm", h, min)
}

func formatHMS(d time.Duration) string {
	if d < 0 {
		d = -d
	}
	h := int(d.Hours())
	min := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h == 0 {
		return fmt.Sprintf("%02dm %02ds", min, s)
	}
	return fmt.Sprintf("%dh %02dm %02ds", h, min, s)
}
