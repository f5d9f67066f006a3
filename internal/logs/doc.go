// Package logs locates the per-run log files mirrorsort writes and reads back
// their trailing lines. It backs `mirrorsort logs` and run-log retention.
package logs
