// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Sky view altitude sparklines, moon phase card, -now countdown mode
// 0.2.0 - Moonrise/moonset, lunar phase table, JSON snapshot export
// 0.1.0 - Initial release: sunrise/sunset engine, TUI dashboard, headless summary
