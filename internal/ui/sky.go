package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-almanac/internal/almanac"
	"github.com/litescript/ls-almanac/internal/state"
)

// sparklineBlocks are the Unicode block characters for the altitude
// sparkline (0 = lowest, 7 = highest).
var sparklineBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

var (
	aboveHorizonStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	belowHorizonStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	moonTraceStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("117"))
)

// SkyModel renders the day's altitude curves for the Sun and the Moon.
type SkyModel struct {
	width    int
	height   int
	snapshot state.Snapshot
}

// NewSkyModel creates a new sky view model.
func NewSkyModel() SkyModel {
	return SkyModel{}
}

// SetSize updates the viewport size.
func (m SkyModel) SetSize(width, height int) SkyModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with a new snapshot.
func (m SkyModel) UpdateData(snapshot state.Snapshot) SkyModel {
	m.snapshot = snapshot
	return m
}

// View renders both traces with a shared midnight-to-midnight time axis.
func (m SkyModel) View() string {
	if m.snapshot.SunTrace == nil || m.snapshot.MoonTrace == nil {
		return dimStyle.Render("Computing altitude traces...")
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("Altitude across the day"))
	b.WriteString("\n\n")

	b.WriteString(renderTrace("Sun ", m.snapshot.SunTrace, aboveHorizonStyle))
	b.WriteString("\n")
	b.WriteString(renderTrace("Moon", m.snapshot.MoonTrace, moonTraceStyle))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("     00:00" + strings.Repeat(" ", 33) + "23:30"))
	return b.String()
}

// renderTrace maps one altitude trace to a 48-column sparkline. Samples below
// the horizon are dimmed so the lit span reads as the visibility window.
func renderTrace(label string, trace *almanac.AltitudeTrace, lit lipgloss.Style) string {
	var b strings.Builder
	b.WriteString(valueStyle.Render(label))
	b.WriteString(" ")

	for _, s := range trace.Samples {
		b.WriteString(renderSample(s.AltDeg, lit))
	}

	max := trace.Max()
	b.WriteString(dimStyle.Render(fmt.Sprintf("  peak %.0f° at %s",
		max.AltDeg, max.Time.Format("15:04"))))
	return b.String()
}

func renderSample(altDeg float64, lit lipgloss.Style) string {
	// Map [-90, 90] onto the 8 block levels; the horizon sits mid-scale.
	level := int((altDeg + 90) / 180 * float64(len(sparklineBlocks)))
	if level < 0 {
		level = 0
	}
	if level >= len(sparklineBlocks) {
		level = len(sparklineBlocks) - 1
	}

	ch := string(sparklineBlocks[level])
	if altDeg < 0 {
		return belowHorizonStyle.Render(ch)
	}
	return lit.Render(ch)
}
