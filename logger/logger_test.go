package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandler_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := slog.New(NewHandler(Options{JSON: true, MinLevel: slog.LevelInfo, Output: &buf}))
	logger.Debug("hidden")
	logger.Info("shown", "arity", 2)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "shown", record["msg"])
	assert.InDelta(t, 2, record["arity"], 0)
}

func TestNewHandler_TextWithoutTerminal(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := slog.New(NewHandler(Options{Color: true, Output: &buf}))
	logger.Info("plain", "tuple", "tup2(x=1, y=2)")

	assert.Contains(t, buf.String(), "plain")
	assert.Contains(t, buf.String(), "tup2(x=1, y=2)")
	assert.NotContains(t, buf.String(), "\x1b[", "no colors when not writing to a terminal")
}

func TestGet(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{Subsystem: "tuple-test", JSON: true, Output: &buf})

	Get().Info("default subsystem")
	Get(WithSubsystem(t.Context(), "overridden")).Info("overridden subsystem")
	Get(WithMuted(t.Context(), true)).Info("muted")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var first, second map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &first))
	require.NoError(t, json.Unmarshal(lines[1], &second))

	assert.Equal(t, "tuple-test", first["subsystem"])
	assert.Equal(t, "overridden", second["subsystem"])
	assert.Equal(t, "tuple-test", GetSubsystem(nil)) //nolint:staticcheck
}

func TestWithLogger(t *testing.T) {
	t.Parallel()

	ctx := WithSubsystem(WithLogger(t.Context(), slogt.New(t)), "stored")

	assert.NotNil(t, Get(ctx))
	Get(ctx).Info("goes to the test log")
	assert.Equal(t, "stored", GetSubsystem(ctx))
}
