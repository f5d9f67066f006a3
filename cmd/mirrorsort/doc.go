// Package main hosts the mirrorsort CLI.
//
// The root command resolves a source and destination folder (arguments,
// flags, environment, config file, or an interactive prompt), runs preflight
// checks, takes the run lock, and hands off to internal/mirror. Each move is
// printed on stdout as "Moved: <from> to <to>"; diagnostics go to stderr and
// the full structured record of the run goes to a per-run log file.
//
// Keep this package thin: behaviour belongs in the internal packages and is
// only surfaced here through commands and flags.
package main
