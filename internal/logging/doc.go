// Package logging assembles structured slog loggers and formatting helpers used
// across mirrorsort.
//
// It owns the console/JSON handlers, the fan-out that sends a run's records to
// both its log file and stderr, and context helpers that tag every line with
// the run identifier. Per-run log files are pruned according to the configured
// retention window.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits records with the same shape.
package logging
