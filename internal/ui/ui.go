// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-almanac/internal/state"
	"github.com/litescript/ls-almanac/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewDashboard ViewMode = iota
	ViewSky
)

// Msg types for Bubble Tea
type (
	// TickMsg drives the 1 Hz countdown refresh.
	TickMsg time.Time
)

// Model is the root Bubble Tea model.
type Model struct {
	// Dependencies
	state *state.Manager

	// UI state
	viewMode ViewMode
	width    int
	height   int
	ready    bool
	lastErr  error

	// Sub-models
	dashboard DashboardModel
	sky       SkyModel

	// Data snapshot (refreshed on every tick)
	snapshot state.Snapshot
}

// New creates a new root UI model.
func New(stateMgr *state.Manager) Model {
	return Model{
		state:     stateMgr,
		viewMode:  ViewDashboard,
		dashboard: NewDashboardModel(),
		sky:       NewSkyModel(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(refreshNow(), tickCmd())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "1", "d":
			m.viewMode = ViewDashboard
		case "2", "s":
			m.viewMode = ViewSky
		case "tab":
			if m.viewMode == ViewDashboard {
				m.viewMode = ViewSky
			} else {
				m.viewMode = ViewDashboard
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.dashboard = m.dashboard.SetSize(msg.Width, msg.Height)
		m.sky = m.sky.SetSize(msg.Width, msg.Height)

	case TickMsg:
		snap, err := m.state.Snapshot(time.Time(msg))
		m.lastErr = err
		if err == nil {
			m.snapshot = snap
			m.dashboard = m.dashboard.UpdateData(snap)
			m.sky = m.sky.UpdateData(snap)
		}
		return m, tickCmd()
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if m.lastErr != nil {
		b.WriteString(errorStyle.Render("Error: " + m.lastErr.Error()))
		b.WriteString("\n")
	}

	switch m.viewMode {
	case ViewSky:
		b.WriteString(m.sky.View())
	default:
		b.WriteString(m.dashboard.View())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

func (m Model) renderHeader() string {
	title := titleStyle.Render("ls-almanac " + version.Version)

	site := ""
	if m.snapshot.TimeZone != nil {
		obs := m.snapshot.Observer
		name := obs.Name
		if name == "" {
			name = fmt.Sprintf("%.4f, %.4f", obs.LatDeg, obs.LonDeg)
		}
		site = dimStyle.Render(fmt.Sprintf("  %s (%s)", name, m.snapshot.TimeZone))
	}

	return title + site
}

func (m Model) renderFooter() string {
	return dimStyle.Render("[1]dashboard [2]sky [tab]switch [q]quit")
}

// tickCmd schedules the next 1 Hz refresh on a whole-second boundary.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// refreshNow emits an immediate tick so the first frame has data.
func refreshNow() tea.Cmd {
	return func() tea.Msg {
		return TickMsg(time.Now())
	}
}
