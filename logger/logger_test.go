package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"log/slog"
	"strings"
	"testing"

	"github.com/amp-labs/amp-sort/envutil"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any

	for line := range strings.Lines(buf.String()) {
		var entry map[string]any

		require.NoError(t, json.Unmarshal([]byte(line), &entry))

		out = append(out, entry)
	}

	return out
}

func TestGet(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{Subsystem: "sortbench", JSON: true, Output: &buf})

	Get().Info("default subsystem")

	ctx := With(WithSubsystem(t.Context(), "bench"), "algorithm", "quick")
	Get(ctx).Info("overridden subsystem", "size", 100)

	Get(WithMuted(ctx, true)).Error("never printed")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)

	assert.Equal(t, "sortbench", lines[0]["subsystem"])
	assert.Equal(t, "bench", lines[1]["subsystem"])
	assert.Equal(t, "quick", lines[1]["algorithm"])
	assert.InDelta(t, 100, lines[1]["size"], 0)
}

func TestLegacy(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		Subsystem:   "test",
		JSON:        true,
		LegacyLevel: slog.LevelWarn,
		Output:      &buf,
	})

	log.Println("from the log package")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "WARN", lines[0]["level"])
	assert.Equal(t, "from the log package", lines[0]["msg"])
}

func TestConfigureLogging(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ctx := envutil.WithEnvOverrides(t.Context(), map[string]string{
		"LOG_JSON":  "true",
		"LOG_LEVEL": "warn",
	})

	ConfigureLogging(ctx, "sortbench", WithOutput(&buf))

	slog.Info("filtered")
	slog.Warn("kept")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "kept", lines[0]["msg"])
}

func TestAnnotateError(t *testing.T) {
	t.Parallel()

	assert.NoError(t, AnnotateError(nil, "key", "value"))

	base := errors.New("output is not sorted")
	err := AnnotateError(base, "algorithm", "heap", "size", 7)

	require.ErrorIs(t, err, base)
	assert.Equal(t, "output is not sorted", err.Error())

	var buf bytes.Buffer

	lg := slog.New(WrapHandler(slog.NewJSONHandler(&buf, nil)))
	lg.Error("trial failed", "error", err, "trial", 3)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "output is not sorted", lines[0]["error"])
	assert.Equal(t, "heap", lines[0]["algorithm"])
	assert.InDelta(t, 7, lines[0]["size"], 0)
	assert.InDelta(t, 3, lines[0]["trial"], 0)
}

func TestWrapHandler_PassesThroughPlainRecords(t *testing.T) {
	t.Parallel()

	lg := slog.New(WrapHandler(slogt.New(t).Handler())).With("subsystem", "test")

	lg.WithGroup("case").Info("plain record", "error", errors.New("not annotated"))
}
