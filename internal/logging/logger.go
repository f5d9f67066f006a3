package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"mirrorsort/internal/config"
)

// RunLogPattern matches the per-run log files written by NewRunLogger.
const RunLogPattern = "mirrorsort-*.log"

// RunLogger is the logger for a single mirror run together with the file
// backing it.
type RunLogger struct {
	*slog.Logger
	Path string

	file *os.File
}

// Close flushes and closes the run's log file.
func (r *RunLogger) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// NewRunLogger creates the logger for one run. Records at the configured
// level go to a fresh file under cfg.Paths.LogDir; warnings and errors are
// also echoed to console so failures are visible without opening the file.
// Old run logs are pruned according to cfg.Logging.RetentionDays.
func NewRunLogger(cfg *config.Config, runID string, console io.Writer) (*RunLogger, error) {
	if cfg == nil {
		return nil, fmt.Errorf("run logger requires config")
	}
	logDir := strings.TrimSpace(cfg.Paths.LogDir)
	if logDir == "" {
		return nil, fmt.Errorf("run logger requires paths.log_dir")
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure log directory: %w", err)
	}

	name := fmt.Sprintf("mirrorsort-%s-%s.log", time.Now().Format("20060102-150405"), shortRunID(runID))
	logPath := filepath.Join(logDir, name)
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o664)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", logPath, err)
	}

	level := parseLevel(cfg.Logging.Level)
	fileHandler, err := newHandler(file, cfg.Logging.Format, level, level <= slog.LevelDebug)
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	handlers := []slog.Handler{fileHandler}
	if console != nil {
		handlers = append(handlers, newPrettyHandler(console, slog.LevelWarn, false))
	}

	logger := slog.New(newFanoutHandler(handlers...))
	if runID != "" {
		logger = logger.With(String(FieldRunID, runID))
	}

	PruneRunLogs(logger, logDir, cfg.Logging.RetentionDays, logPath)

	return &RunLogger{Logger: logger, Path: logPath, file: file}, nil
}

func newHandler(w io.Writer, format string, level slog.Leveler, addSource bool) (slog.Handler, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "console":
		return newPrettyHandler(w, level, addSource), nil
	case "json":
		return newJSONHandler(w, level, addSource), nil
	default:
		return nil, fmt.Errorf("log format: unsupported value %q", format)
	}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
