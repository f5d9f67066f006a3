package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"mirrorsort/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("MIRRORSORT_SOURCE", "")
	t.Setenv("MIRRORSORT_DESTINATION", "")
	t.Setenv("MIRRORSORT_LOG_LEVEL", "")
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved != filepath.Join(tempHome, ".config", "mirrorsort", "config.toml") {
		t.Fatalf("unexpected resolved path: %q", resolved)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantLogDir := filepath.Join(tempHome, ".local", "share", "mirrorsort", "logs")
	if cfg.Paths.LogDir != wantLogDir {
		t.Fatalf("unexpected log dir: got %q want %q", cfg.Paths.LogDir, wantLogDir)
	}
	if cfg.Paths.StateDir != filepath.Join(tempHome, ".local", "state", "mirrorsort") {
		t.Fatalf("unexpected state dir: %q", cfg.Paths.StateDir)
	}
	if cfg.Mirror.Source != "" || cfg.Mirror.Destination != "" {
		t.Fatalf("expected no default roots, got %q and %q", cfg.Mirror.Source, cfg.Mirror.Destination)
	}
	if cfg.Mirror.CaseInsensitive {
		t.Fatal("expected exact base name matching by default")
	}
	if cfg.SkipFailedMoves() {
		t.Fatal("expected abort policy by default")
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.LogDir, cfg.Paths.StateDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be directory", dir)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "mirrorsort.toml")
	t.Setenv("MIRRORSORT_SOURCE", "")
	t.Setenv("MIRRORSORT_DESTINATION", "")
	t.Setenv("MIRRORSORT_LOG_LEVEL", "")

	type payload struct {
		Mirror struct {
			Source          string `toml:"source"`
			Destination     string `toml:"destination"`
			CaseInsensitive bool   `toml:"case_insensitive"`
			OnMoveError     string `toml:"on_move_error"`
		} `toml:"mirror"`
		Logging struct {
			Format string `toml:"format"`
			Level  string `toml:"level"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Mirror.Source = filepath.Join(tempDir, "src") + "  "
	custom.Mirror.Destination = filepath.Join(tempDir, "dst")
	custom.Mirror.CaseInsensitive = true
	custom.Mirror.OnMoveError = " Skip "
	custom.Logging.Format = "JSON"
	custom.Logging.Level = "Debug"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Mirror.Source != filepath.Join(tempDir, "src") {
		t.Fatalf("expected trimmed source, got %q", cfg.Mirror.Source)
	}
	if cfg.Mirror.Destination != filepath.Join(tempDir, "dst") {
		t.Fatalf("unexpected destination: %q", cfg.Mirror.Destination)
	}
	if !cfg.Mirror.CaseInsensitive {
		t.Fatal("expected case_insensitive from file")
	}
	if !cfg.SkipFailedMoves() {
		t.Fatalf("expected skip policy, got %q", cfg.Mirror.OnMoveError)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("expected normalized logging values, got %+v", cfg.Logging)
	}
}

func TestLoadEnvOverridesRoots(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("MIRRORSORT_SOURCE", "  ~/reference ")
	t.Setenv("MIRRORSORT_DESTINATION", filepath.Join(tempDir, "unsorted"))
	t.Setenv("MIRRORSORT_LOG_LEVEL", "WARN")

	cfg, _, _, err := config.Load(filepath.Join(tempDir, "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Mirror.Source != filepath.Join(tempDir, "reference") {
		t.Fatalf("expected env source with tilde expanded, got %q", cfg.Mirror.Source)
	}
	if cfg.Mirror.Destination != filepath.Join(tempDir, "unsorted") {
		t.Fatalf("expected env destination, got %q", cfg.Mirror.Destination)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("expected env log level, got %q", cfg.Logging.Level)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "unknown policy",
			body:    "[mirror]\non_move_error = \"retry\"\n",
			wantErr: "mirror.on_move_error",
		},
		{
			name:    "unknown level",
			body:    "[logging]\nlevel = \"verbose\"\n",
			wantErr: "logging.level",
		},
		{
			name:    "same roots",
			body:    "[mirror]\nsource = \"/data/a\"\ndestination = \"/data/a/\"\n",
			wantErr: "must differ",
		},
		{
			name:    "unknown key",
			body:    "[mirror]\nsorce = \"/data/a\"\n",
			wantErr: "parse config",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.body), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestCreateSampleIsLoadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample to exist")
	}
	if cfg.Mirror.OnMoveError != config.OnMoveErrorAbort {
		t.Fatalf("unexpected sample policy: %q", cfg.Mirror.OnMoveError)
	}
}
