package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"mirrorsort/internal/config"
	"mirrorsort/internal/logging"
)

func newTestRunLogger(t *testing.T, format, level string) *logging.RunLogger {
	t.Helper()
	cfg := config.Default()
	cfg.Paths.LogDir = t.TempDir()
	cfg.Logging.Format = format
	cfg.Logging.Level = level
	runLog, err := logging.NewRunLogger(&cfg, "", nil)
	if err != nil {
		t.Fatalf("NewRunLogger: %v", err)
	}
	return runLog
}

func readRunLog(t *testing.T, runLog *logging.RunLogger) string {
	t.Helper()
	if err := runLog.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	content, err := os.ReadFile(runLog.Path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	return string(content)
}

func TestConsoleLoggerFormatsInfoFields(t *testing.T) {
	runLog := newTestRunLogger(t, "console", "info")

	logger := logging.NewComponentLogger(runLog.Logger, "mirror")
	logger.Info("file moved", logging.String("from", "/dst/report.pdf"), logging.String("event_type", "file_moved"))
	logger.Debug("hidden at info level")

	out := readRunLog(t, runLog)
	if !strings.Contains(out, "INFO [mirror] – file moved") {
		t.Fatalf("expected header with component, got %q", out)
	}
	if !strings.Contains(out, "    - From: /dst/report.pdf") {
		t.Fatalf("expected labelled field, got %q", out)
	}
	if !strings.Contains(out, "    - Event: file_moved") {
		t.Fatalf("expected event label, got %q", out)
	}
	if strings.Contains(out, "hidden at info level") {
		t.Fatalf("debug record leaked at info level: %q", out)
	}
	if strings.Contains(out, ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", out)
	}
}

func TestConsoleLoggerIncludesCallerForDebug(t *testing.T) {
	runLog := newTestRunLogger(t, "console", "debug")

	runLog.Debug("searching destination", logging.String("base_name", "report"))

	out := readRunLog(t, runLog)
	if !strings.Contains(out, "logger_test.go:") {
		t.Fatalf("expected caller information for debug logs, got %q", out)
	}
	if !strings.Contains(out, "    base_name: report") {
		t.Fatalf("expected raw debug key, got %q", out)
	}
}

func TestJSONLoggerUsesShortKeys(t *testing.T) {
	runLog := newTestRunLogger(t, "json", "info")
	runLog.Warn("move skipped", logging.Error(errors.New("permission denied")))

	content := readRunLog(t, runLog)
	var record map[string]any
	if err := json.Unmarshal(bytes.TrimSpace([]byte(content)), &record); err != nil {
		t.Fatalf("decode json log: %v (%q)", err, content)
	}
	if record["level"] != "warn" {
		t.Fatalf("expected lowercase level, got %v", record["level"])
	}
	if _, ok := record["ts"]; !ok {
		t.Fatalf("expected ts key, got %v", record)
	}
	if record["error"] != "permission denied" {
		t.Fatalf("expected error attr, got %v", record["error"])
	}
}

func TestRunLoggerRejectsUnknownFormat(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = t.TempDir()
	cfg.Logging.Format = "xml"
	if _, err := logging.NewRunLogger(&cfg, "", nil); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestRunLoggerWritesFileAndEchoesWarnings(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = t.TempDir()
	cfg.Logging.Level = "info"

	var console bytes.Buffer
	runLog, err := logging.NewRunLogger(&cfg, "0123456789abcdef", &console)
	if err != nil {
		t.Fatalf("NewRunLogger: %v", err)
	}

	runLog.Info("mirror run started")
	runLog.Warn("move failed; skipping file", logging.String("from", "/dst/a.txt"))
	if err := runLog.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if filepath.Dir(runLog.Path) != cfg.Paths.LogDir {
		t.Fatalf("expected log inside log dir, got %q", runLog.Path)
	}
	if !strings.HasSuffix(runLog.Path, "-01234567.log") {
		t.Fatalf("expected short run id in file name, got %q", runLog.Path)
	}
	content, err := os.ReadFile(runLog.Path)
	if err != nil {
		t.Fatalf("read run log: %v", err)
	}
	file := string(content)
	if !strings.Contains(file, "run 01234567 – mirror run started") {
		t.Fatalf("expected info record with run id in file, got %q", file)
	}
	if !strings.Contains(file, "move failed; skipping file") {
		t.Fatalf("expected warning in file, got %q", file)
	}

	echoed := console.String()
	if strings.Contains(echoed, "mirror run started") {
		t.Fatalf("info record should stay out of console, got %q", echoed)
	}
	if !strings.Contains(echoed, "WARN") || !strings.Contains(echoed, "move failed; skipping file") {
		t.Fatalf("expected warning echoed to console, got %q", echoed)
	}
}

func TestRunLoggerPrunesExpiredLogs(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = t.TempDir()
	cfg.Logging.RetentionDays = 7

	stale := filepath.Join(cfg.Paths.LogDir, "mirrorsort-20200101-000000-deadbeef.log")
	fresh := filepath.Join(cfg.Paths.LogDir, "mirrorsort-20990101-000000-cafebabe.log")
	unrelated := filepath.Join(cfg.Paths.LogDir, "notes.txt")
	for _, path := range []string{stale, fresh, unrelated} {
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	old := time.Now().AddDate(0, 0, -30)
	for _, path := range []string{stale, unrelated} {
		if err := os.Chtimes(path, old, old); err != nil {
			t.Fatalf("chtimes %s: %v", path, err)
		}
	}

	runLog, err := logging.NewRunLogger(&cfg, "feedface", nil)
	if err != nil {
		t.Fatalf("NewRunLogger: %v", err)
	}
	defer runLog.Close()

	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Fatalf("expected stale run log removed, stat err=%v", err)
	}
	for _, path := range []string{fresh, unrelated, runLog.Path} {
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("expected %s to remain: %v", path, err)
		}
	}
}

func writeRunLogAged(t *testing.T, dir, name string, age time.Duration) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	stamp := time.Now().Add(-age)
	if err := os.Chtimes(path, stamp, stamp); err != nil {
		t.Fatalf("chtimes %s: %v", path, err)
	}
	return path
}

func TestPruneRunLogsKeepsPreviousRun(t *testing.T) {
	dir := t.TempDir()
	day := 24 * time.Hour
	current := writeRunLogAged(t, dir, "mirrorsort-20240301-000000-cccccccc.log", 0)
	previous := writeRunLogAged(t, dir, "mirrorsort-20240201-000000-bbbbbbbb.log", 40*day)
	oldest := writeRunLogAged(t, dir, "mirrorsort-20240101-000000-aaaaaaaa.log", 60*day)

	if removed := logging.PruneRunLogs(nil, dir, 7, current); removed != 1 {
		t.Fatalf("expected one run log removed, got %d", removed)
	}
	if _, err := os.Stat(oldest); !os.IsNotExist(err) {
		t.Fatalf("expected oldest run log removed, stat err=%v", err)
	}
	for _, path := range []string{current, previous} {
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("expected %s kept: %v", path, err)
		}
	}
}

func TestPruneRunLogsDisabled(t *testing.T) {
	dir := t.TempDir()
	stale := writeRunLogAged(t, dir, "mirrorsort-old.log", 365*24*time.Hour)
	other := writeRunLogAged(t, dir, "mirrorsort-older.log", 400*24*time.Hour)

	if removed := logging.PruneRunLogs(nil, dir, 0, ""); removed != 0 {
		t.Fatalf("expected no pruning when retention is 0, removed %d", removed)
	}
	for _, path := range []string{stale, other} {
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("expected file kept: %v", err)
		}
	}
}

func TestWithContextAddsRunID(t *testing.T) {
	var buf bytes.Buffer
	base := slogToBuffer(t, &buf)
	ctx := logging.WithRunID(context.Background(), "run-42")

	logging.WithContext(ctx, base).Info("hello")

	if !strings.Contains(buf.String(), `"run_id":"run-42"`) {
		t.Fatalf("expected run_id attr, got %q", buf.String())
	}
	if id, ok := logging.RunIDFromContext(ctx); !ok || id != "run-42" {
		t.Fatalf("RunIDFromContext = %q, %v", id, ok)
	}
	if _, ok := logging.RunIDFromContext(context.Background()); ok {
		t.Fatal("expected no run id on bare context")
	}
}

func TestWarnWithContextFillsDefaults(t *testing.T) {
	var buf bytes.Buffer
	logger := slogToBuffer(t, &buf)

	logging.WarnWithContext(logger, "something odd", "odd_event", logging.String(logging.FieldImpact, "nothing moved"))

	out := buf.String()
	for _, want := range []string{`"event_type":"odd_event"`, `"error_hint":"check logs for details"`, `"impact":"nothing moved"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in %q", want, out)
		}
	}
}
