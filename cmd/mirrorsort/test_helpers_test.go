package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mirrorsort/internal/config"
	"mirrorsort/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	source     string
	dest       string
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	base := realTempDir(t)
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("MIRRORSORT_SOURCE", "")
	t.Setenv("MIRRORSORT_DESTINATION", "")
	t.Setenv("MIRRORSORT_LOG_LEVEL", "")

	env := &cliTestEnv{
		configPath: filepath.Join(base, "config.toml"),
		source:     filepath.Join(base, "src"),
		dest:       filepath.Join(base, "dst"),
	}
	for _, dir := range []string{env.source, env.dest} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	env.cfg = testsupport.NewConfig(t, opts...)
	testsupport.WriteConfig(t, env.configPath, env.cfg)
	return env
}

// realTempDir resolves symlinks in t.TempDir so it matches the roots a run reports.
func realTempDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("resolve temp dir: %v", err)
	}
	return dir
}

type cliRun struct {
	stdin       string
	interactive bool
}

func runCLI(t *testing.T, env *cliTestEnv, args []string, run cliRun) (string, string, error) {
	t.Helper()

	ctx := newCommandContext()
	ctx.interactive = func(io.Reader) bool { return run.interactive }
	cmd := newRootCommandWithContext(ctx)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(run.stdin))
	cmd.SetArgs(append([]string{"--config", env.configPath}, args...))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected %q to contain %q", haystack, needle)
	}
}

func assertTree(t *testing.T, root string, want ...string) {
	t.Helper()
	got := testsupport.ListTree(t, root)
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Fatalf("tree under %s:\n got %v\nwant %v", root, got, want)
	}
}
