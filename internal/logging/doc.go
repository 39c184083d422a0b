// Package logging assembles structured slog loggers and attribute helpers used
// across ridersettings.
//
// It owns the console/JSON handlers, centralizes level and output plumbing,
// and exposes context-aware helpers so every log line from one CLI invocation
// carries the same run_id. The package also provides a no-op logger for tests
// and wiring code that cannot fail.
//
// Warnings go through WarnWithContext so each one names its event type, a
// hint for the user, and the impact.
package logging
