// Package logging assembles structured slog loggers and formatting helpers used
// across bmwoverlay.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context helpers so a render run can tag every log line
// with its run ID. A no-op logger is provided for tests and wiring code that
// cannot fail.
package logging
