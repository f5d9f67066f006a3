package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"mirrorsort/internal/logs"
)

// PruneRunLogs deletes run logs in dir last modified more than retentionDays
// ago and returns how many were removed. The log of the run doing the pruning
// (current) is never touched, and the newest earlier run log survives so the
// previous run stays inspectable after a long gap. A retentionDays of 0 or
// less disables pruning.
func PruneRunLogs(logger *slog.Logger, dir string, retentionDays int, current string) int {
	if retentionDays <= 0 || dir == "" {
		return 0
	}
	runs, err := logs.List(dir, RunLogPattern)
	if err != nil {
		WarnWithContext(logger, "run log listing failed; nothing pruned", "log_retention_failed",
			String("log_dir", dir),
			Error(err),
		)
		return 0
	}

	currentPath := filepath.Clean(current)
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	keptPrevious := false
	removed := 0
	for _, run := range runs {
		if filepath.Clean(run.Path) == currentPath {
			continue
		}
		if !keptPrevious {
			keptPrevious = true
			continue
		}
		if !run.Modified.Before(cutoff) {
			continue
		}
		if err := os.Remove(run.Path); err != nil {
			WarnWithContext(logger, "run log remove failed; file remains", "log_retention_failed",
				String("path", run.Path),
				Error(err),
				String(FieldErrorHint, "check file permissions and log_dir ownership"),
				String(FieldImpact, "old run log remains on disk"),
			)
			continue
		}
		removed++
	}
	if removed > 0 && logger != nil {
		logger.Debug("old run logs pruned",
			Int("removed", removed),
			Int("retention_days", retentionDays),
			String(FieldEventType, "run_logs_pruned"),
		)
	}
	return removed
}
