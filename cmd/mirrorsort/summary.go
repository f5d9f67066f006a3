package main

import (
	"strconv"
	"strings"
	"time"

	"mirrorsort/internal/mirror"
)

// renderSummary formats the end-of-run tables printed by --summary.
func renderSummary(result mirror.Result, logPath string) string {
	rows := [][]string{
		{"Source", result.Source},
		{"Destination", result.Destination},
		{"Directories created", strconv.Itoa(result.DirsCreated)},
		{"Files scanned", strconv.Itoa(result.FilesScanned)},
		{"Files moved", strconv.Itoa(len(result.Moves))},
		{"Moves failed", strconv.Itoa(len(result.Failures))},
		{"Elapsed", result.Elapsed.Round(time.Millisecond).String()},
		{"Run log", logPath},
	}

	var b strings.Builder
	b.WriteString(renderTable([]string{"Summary", "Value"}, rows, []columnAlignment{alignLeft, alignLeft}))
	b.WriteString("\n")

	if len(result.Failures) > 0 {
		failures := make([][]string, 0, len(result.Failures))
		for _, f := range result.Failures {
			failures = append(failures, []string{f.From, f.To, f.Err.Error()})
		}
		b.WriteString(renderTable([]string{"Not moved", "Target", "Error"}, failures, nil))
		b.WriteString("\n")
	}
	return b.String()
}
