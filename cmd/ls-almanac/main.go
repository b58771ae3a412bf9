// Command ls-almanac is a terminal almanac: sun and moon rise/set times,
// lunar phase and a live countdown to the next solar event, computed entirely
// offline for a given location and time zone.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/ls-almanac/internal/almanac"
	"github.com/litescript/ls-almanac/internal/astro"
	"github.com/litescript/ls-almanac/internal/logging"
	"github.com/litescript/ls-almanac/internal/state"
	"github.com/litescript/ls-almanac/internal/ui"
)

// CLI flags for headless modes
var (
	summaryMode   bool
	nowMode       bool
	snapshotPath  string
	watchInterval time.Duration
)

const dateLayout = "2006-01-02"

func main() {
	lat := flag.Float64("lat", 40.7128, "Observer latitude in degrees (north positive)")
	lon := flag.Float64("lon", -74.0060, "Observer longitude in degrees (east positive)")
	siteName := flag.String("name", "", "Optional observer site name")
	tzName := flag.String("tz", "", "IANA time zone (default: system local)")
	dateStr := flag.String("date", "", "Calendar date YYYY-MM-DD (default: today)")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&summaryMode, "summary", false, "Print text summary instead of TUI")
	flag.BoolVar(&nowMode, "now", false, "Single-line countdown to the next sun event")
	flag.StringVar(&snapshotPath, "snapshot-path", "", "Export JSON snapshot to file (use - for stdout)")
	flag.DurationVar(&watchInterval, "watch", 0, "Repeat headless output at interval (e.g. 30s)")
	flag.Parse()

	logger := logging.New(logging.ParseLevel(*logLevel))

	tz := time.Local
	if *tzName != "" {
		loc, err := time.LoadLocation(*tzName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: unknown time zone %q: %v\n", *tzName, err)
			os.Exit(1)
		}
		tz = loc
	}

	obs := astro.Observer{LatDeg: *lat, LonDeg: *lon, Name: *siteName}
	if err := obs.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	date := time.Now()
	if *dateStr != "" {
		parsed, err := time.ParseInLocation(dateLayout, *dateStr, tz)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: bad -date %q: %v\n", *dateStr, err)
			os.Exit(1)
		}
		// Anchor explicit dates at local noon so the daylight flag is
		// evaluated mid-day rather than at midnight.
		date = parsed.Add(12 * time.Hour)
	}

	alm := almanac.New(logger.Named("solver"))

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	headless := summaryMode || nowMode || snapshotPath != ""
	if headless {
		runHeadless(ctx, alm, obs, tz, date, logger)
		return
	}

	stateMgr := state.NewManager(alm, obs, tz)
	model := ui.New(stateMgr)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// runHeadless handles the non-TUI output modes, optionally repeating on a
// watch interval.
func runHeadless(ctx context.Context, alm *almanac.Almanac, obs astro.Observer, tz *time.Location, date time.Time, logger *logging.Logger) {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	outputOnce := func(now time.Time) error {
		sun, err := alm.SunTimesFor(now, obs, tz)
		if err != nil {
			return err
		}
		moon, err := alm.MoonTimesFor(now, obs, tz)
		if err != nil {
			return err
		}
		phase := almanac.CurrentMoonPhase(now)

		if snapshotPath != "" {
			export := almanac.ExportSnapshot(obs, tz, now, sun, moon, phase)
			if snapshotPath == "-" {
				if err := export.WriteJSON(os.Stdout); err != nil {
					return fmt.Errorf("write JSON to stdout: %w", err)
				}
			} else {
				f, err := os.Create(snapshotPath)
				if err != nil {
					return fmt.Errorf("create snapshot file: %w", err)
				}
				defer f.Close()
				if err := export.WriteJSON(f); err != nil {
					return fmt.Errorf("write JSON to file: %w", err)
				}
			}
		}

		if summaryMode {
			almanac.WriteSummary(os.Stdout, obs, tz, now, sun, moon, phase)
		}

		if nowMode {
			ev, ok, err := alm.NextSunEvent(now, obs, tz)
			if err != nil {
				return err
			}
			// On a TTY the watch loop rewrites the countdown in place.
			if isTTY && watchInterval > 0 {
				fmt.Print("\r\033[K")
			}
			almanac.WriteNowLine(os.Stdout, now, tz, ev, ok)
		}

		return nil
	}

	// Single run
	if watchInterval == 0 {
		if err := outputOnce(date); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Watch mode: repeat at interval, tracking the wall clock
	if err := outputOnce(time.Now()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("watch loop shutting down")
			fmt.Println()
			return
		case t := <-ticker.C:
			if summaryMode {
				fmt.Println() // blank line between summaries
			}
			if err := outputOnce(t); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		}
	}
}
