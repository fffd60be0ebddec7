package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/go-options/internal/cli"
	"github.com/MKhiriev/go-options/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"TODO_TODO", "TODO_SILENT", "TODO_SYSLOG", "TODO_CONFIG"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

// captureStdout runs fn with os.Stdout redirected and returns what was
// written to it.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)

	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	done := make(chan []byte)
	go func() {
		data, _ := io.ReadAll(r)
		done <- data
	}()

	fn()
	require.NoError(t, w.Close())
	return string(<-done)
}

// TestRun_Silent verifies that nothing at all is logged to stdout.
func TestRun_Silent(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	out := &bytes.Buffer{}

	var code int
	stdout := captureStdout(t, func() {
		code = run(context.Background(), []string{"--silent"}, out)
	})

	assert.Equal(t, cli.ExitSuccess, code)
	assert.Empty(t, out.String())
	assert.Empty(t, stdout)
}

// TestRun_SilentFalseOverridesFile verifies that --silent=false re-enables
// logging switched off by the config file.
func TestRun_SilentFalseOverridesFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultConfigFile), []byte(`{"silent":true}`), 0o600))

	stdout := captureStdout(t, func() {
		assert.Equal(t, cli.ExitSuccess, run(context.Background(), []string{"--silent=false"}, &bytes.Buffer{}))
	})

	assert.Contains(t, stdout, `"silent":false`)
	assert.NotContains(t, stdout, `"silent":true`)
}

// TestRun_SharedTraceID verifies that process diagnostics and the program's
// sink carry the same trace_id.
func TestRun_SharedTraceID(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	stdout := captureStdout(t, func() {
		assert.Equal(t, cli.ExitSuccess, run(context.Background(), []string{}, &bytes.Buffer{}))
	})

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.GreaterOrEqual(t, len(lines), 2)

	ids := map[string]bool{}
	for _, line := range lines {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		id, _ := entry["trace_id"].(string)
		require.NotEmpty(t, id, line)
		ids[id] = true
	}
	assert.Len(t, ids, 1)
}

// TestRun_SyslogFailure verifies the fatal path: an unusable facility prints
// the notice on stdout and fails the process.
func TestRun_SyslogFailure(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	out := &bytes.Buffer{}

	code := run(context.Background(), []string{"-y", "no-such-facility"}, out)

	assert.Equal(t, cli.ExitFailure, code)
	assert.Equal(t, "Failed to initialise syslog, exiting.\n", out.String())
}

func TestRun_MalformedConfig(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte(`[1,2]`), 0o600))
	out := &bytes.Buffer{}

	code := run(context.Background(), []string{"-s", "-f", "bad.json"}, out)

	assert.Equal(t, cli.ExitFailure, code)
	assert.NotContains(t, out.String(), "Failed to initialise syslog")
}

// TestMain_ExitHook verifies that main hands the exit code to the exit hook.
func TestMain_ExitHook(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	origExit, origArgs := exit, os.Args
	t.Cleanup(func() { exit, os.Args = origExit, origArgs })

	codes := []int{}
	exit = func(code int) { codes = append(codes, code) }
	os.Args = []string{"todo", "--syslog", "no-such-facility"}

	main()

	assert.Equal(t, []int{cli.ExitFailure}, codes)
}
