package script

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/amp-labs/amp-sort/envutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitErrors(t *testing.T) {
	t.Parallel()

	cause := errors.New("output is not sorted")

	tests := []struct {
		name     string
		err      error
		code     int
		expected string
	}{
		{name: "exit 0", err: Exit(0), code: 0, expected: "exit 0"},
		{name: "exit 42", err: Exit(42), code: 42, expected: "exit 42"},
		{name: "with error", err: ExitWithError(cause), code: 1, expected: "exit 1: output is not sorted"},
		{
			name:     "with message",
			err:      ExitWithErrorMessage("bad size: %d", -3),
			code:     1,
			expected: "exit 1: bad size: -3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.err.Error())

			var exitErr *exitError

			require.ErrorAs(t, tt.err, &exitErr)
			assert.Equal(t, tt.code, exitErr.code)
		})
	}

	require.ErrorIs(t, ExitWithError(cause), cause)
}

func newTestScript(t *testing.T, buf *bytes.Buffer, args []string) (*Script, *string) {
	t.Helper()

	fs := flag.NewFlagSet("test-script", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	envFile := fs.String("env-file", "", "env file")

	return New("test-script",
		Flags(fs, args),
		LogOutput(buf),
		WithEnvFileProvider(func() string { return *envFile }),
	), envFile
}

func TestRun(t *testing.T) { //nolint:paralleltest
	tests := []struct {
		name     string
		callback func(ctx context.Context) error
		code     int
		logged   string
	}{
		{name: "success", callback: func(context.Context) error { return nil }, code: 0},
		{name: "nil callback", callback: nil, code: 1, logged: "callback is nil"},
		{
			name:     "plain error",
			callback: func(context.Context) error { return errors.New("boom") },
			code:     1,
			logged:   "boom",
		},
		{name: "silent exit", callback: func(context.Context) error { return Exit(3) }, code: 3},
		{
			name:     "exit with error",
			callback: func(context.Context) error { return ExitWithErrorMessage("invalid input") },
			code:     1,
			logged:   "invalid input",
		},
	}

	for _, tt := range tests { //nolint:paralleltest
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			s, _ := newTestScript(t, &buf, nil)

			assert.Equal(t, tt.code, s.run(t.Context(), tt.callback))

			if tt.logged == "" {
				assert.NotContains(t, buf.String(), "level=ERROR")
			} else {
				assert.Contains(t, buf.String(), tt.logged)
			}
		})
	}
}

func TestRun_Flags(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	t.Run("bad flag", func(t *testing.T) {
		s, _ := newTestScript(t, &buf, []string{"-unknown"})
		assert.Equal(t, 2, s.run(t.Context(), func(context.Context) error { return nil }))
	})

	t.Run("help", func(t *testing.T) {
		s, _ := newTestScript(t, &buf, []string{"-h"})
		assert.Equal(t, 0, s.run(t.Context(), func(context.Context) error {
			t.Fatal("callback must not run")

			return nil
		}))
	})
}

func TestRun_EnvFile(t *testing.T) { //nolint:paralleltest
	path := filepath.Join(t.TempDir(), "bench.env")
	require.NoError(t, os.WriteFile(path, []byte("TEST_SCRIPT_VAR=from-file\n"), 0o600))

	var buf bytes.Buffer

	s, envFile := newTestScript(t, &buf, []string{"-env-file", path, "quick"})

	var seen string

	code := s.run(t.Context(), func(ctx context.Context) error {
		seen = envutil.String(ctx, "TEST_SCRIPT_VAR").ValueOrElse("")

		return nil
	})

	assert.Equal(t, 0, code)
	assert.Equal(t, path, *envFile)
	assert.Equal(t, "from-file", seen)

	s, _ = newTestScript(t, &buf, []string{"-env-file", filepath.Join(t.TempDir(), "missing.env")})
	assert.Equal(t, 1, s.run(t.Context(), func(context.Context) error { return nil }))
}

func TestRun_ContextCanceledWithParent(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	s, _ := newTestScript(t, &buf, nil)

	parent, cancel := context.WithCancel(t.Context())
	cancel()

	code := s.run(parent, func(ctx context.Context) error {
		<-ctx.Done()

		return ctx.Err()
	})

	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), "context canceled")
}
