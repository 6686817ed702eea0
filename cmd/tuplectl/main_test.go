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

	tuplecli "github.com/amp-labs/amp-tuple/cli"
	"github.com/amp-labs/amp-tuple/envutil"
	"github.com/amp-labs/amp-tuple/hashing"
	"github.com/amp-labs/amp-tuple/inspect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func writeDoc(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tuples.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func run(ctx context.Context, t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	app := newApp(tuplecli.NewPrompter(io.NopCloser(strings.NewReader(stdin)), nopWriteCloser{io.Discard}))

	var out bytes.Buffer
	app.Writer = &out
	app.ErrWriter = io.Discard

	err := app.RunContext(ctx, append([]string{appName}, args...))

	return out.String(), err
}

func TestInspect_JSONOutput(t *testing.T) {
	t.Parallel()

	path := writeDoc(t, "p2: [0.05, 0]\np10: [1, 2, 3]\np1: [0, 0]\n")

	out, err := run(t.Context(), t, "", "inspect", "--output", "json", "--margin", "0.1", "--workers", "2", path)
	require.NoError(t, err)

	var reports []inspect.Report
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 3)

	assert.Equal(t, "p1", reports[0].Name)
	assert.True(t, reports[0].Zero)
	assert.Equal(t, "p2", reports[1].Name)
	assert.False(t, reports[1].Zero)
	assert.True(t, reports[1].WithinMargin)
	assert.Equal(t, "p10", reports[2].Name)
	assert.Equal(t, 3, reports[2].Arity)
}

func TestInspect_SettingsFromEnvironment(t *testing.T) {
	t.Parallel()

	path := writeDoc(t, "p: [0.5, -0.5]\n")

	ctx := envutil.WithEnvOverride(t.Context(), "TUPLE_MARGIN", "0.5")
	ctx = envutil.WithEnvOverride(ctx, "TUPLE_FORMAT", "JSON")

	out, err := run(ctx, t, "", "inspect", path)
	require.NoError(t, err)

	var reports []inspect.Report
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 1)
	assert.True(t, reports[0].WithinMargin)
}

func TestInspect_FlagsOverrideEnvironment(t *testing.T) {
	t.Parallel()

	path := writeDoc(t, "p: [0.5, -0.5]\n")
	ctx := envutil.WithEnvOverride(t.Context(), "TUPLE_FORMAT", "json")

	out, err := run(ctx, t, "", "inspect", "-o", "text", "-m", "0.25", path)
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "1 tuple(s), 0 zero")
	assert.Contains(t, out, "false")
}

func TestInspect_Stdin(t *testing.T) {
	t.Parallel()

	out, err := run(t.Context(), t, `{"q": [0, 0, 0, 0]}`, "inspect", "-o", "yaml", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "name: q")
	assert.Contains(t, out, "zero: true")
}

func TestInspect_Errors(t *testing.T) {
	t.Parallel()

	path := writeDoc(t, "p: [1, 2]\n")

	_, err := run(t.Context(), t, "", "inspect", "--margin", "-1", path)
	require.ErrorIs(t, err, inspect.ErrNegativeMargin)

	_, err = run(t.Context(), t, "", "inspect", "--output", "xml", path)
	require.ErrorIs(t, err, inspect.ErrUnsupportedFormat)

	ctx := envutil.WithEnvOverride(t.Context(), "TUPLE_FORMAT", "csv")
	_, err = run(ctx, t, "", "inspect", path)
	require.ErrorIs(t, err, envutil.ErrInvalidChoice)

	ctx = envutil.WithEnvOverride(t.Context(), "TUPLE_WORKERS", "-3")
	_, err = run(ctx, t, "", "inspect", path)
	require.ErrorIs(t, err, ErrNegativeWorkers)

	_, err = run(t.Context(), t, "", "inspect", filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = run(t.Context(), t, "", "prompt", "--arity", "-2")
	require.ErrorIs(t, err, tuplecli.ErrBadArity)
}

func TestWriteReports(t *testing.T) {
	t.Parallel()

	reports := []inspect.Report{{Name: "a", Arity: 2, Zero: true}, {Name: "b", Arity: 2}}

	var text bytes.Buffer
	require.NoError(t, writeReports(&text, inspect.OutputTypeText, reports))
	assert.Contains(t, text.String(), "2 tuple(s), 1 zero")

	var js bytes.Buffer
	require.NoError(t, writeReports(&js, inspect.OutputTypeJSON, reports))
	assert.NotContains(t, js.String(), "tuple(s)")
}

func TestVersion(t *testing.T) {
	t.Parallel()

	out, err := run(t.Context(), t, "", "-V")
	require.NoError(t, err)
	assert.Contains(t, out, appName+" version ")

	out, err = run(t.Context(), t, "", "--version")
	require.NoError(t, err)
	assert.Contains(t, out, appName+" version ")
}

func TestInspect_HashAlgorithm(t *testing.T) {
	t.Parallel()

	path := writeDoc(t, "p: [1, 2]\n")

	hashes := map[string]string{}

	for _, algo := range []string{"xxh3", "xxhash64", "sha256"} {
		out, err := run(t.Context(), t, "", "inspect", "-o", "json", "--hash", algo, path)
		require.NoError(t, err, algo)

		var reports []inspect.Report
		require.NoError(t, json.Unmarshal([]byte(out), &reports))
		require.Len(t, reports, 1)

		hashes[algo] = reports[0].Hash
	}

	assert.Len(t, hashes["sha256"], 64)
	assert.NotEqual(t, hashes["xxh3"], hashes["xxhash64"])

	ctx := envutil.WithEnvOverride(t.Context(), "TUPLE_HASH", "sha256")
	out, err := run(ctx, t, "", "inspect", "-o", "json", path)
	require.NoError(t, err)
	assert.Contains(t, out, hashes["sha256"])

	_, err = run(t.Context(), t, "", "inspect", "--hash", "md5", path)
	require.ErrorIs(t, err, hashing.ErrUnknownAlgorithm)
}

func TestPrompt_PipedInput(t *testing.T) {
	t.Parallel()

	out, err := run(t.Context(), t, "1.5\n-2\n", "prompt", "--arity", "2", "--name", "a", "-o", "json")
	require.NoError(t, err)

	var reports []inspect.Report
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, "a", reports[0].Name)
	assert.Equal(t, []float64{1.5, -2}, reports[0].Components.ToArray())

	out, err = run(t.Context(), t, "3\n0\n0\n0\n", "prompt", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "name: input")
	assert.Contains(t, out, "arity: 3")
	assert.Contains(t, out, "zero: true")
}

func TestPrompt_Save(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		existing string
		stdin    string
		args     []string
		wantErr  error
		want     []float64
	}{
		{
			name:  "new document",
			stdin: "1.5\n-2\n",
			want:  []float64{1.5, -2},
		},
		{
			name:     "new name in existing document",
			existing: "b: [7, 7]\n",
			stdin:    "1.5\n-2\n",
			want:     []float64{1.5, -2},
		},
		{
			name:     "replace confirmed",
			existing: "a: [9, 9]\n",
			stdin:    "1.5\n-2\ny\n",
			want:     []float64{1.5, -2},
		},
		{
			name:     "replace declined",
			existing: "a: [9, 9]\n",
			stdin:    "1.5\n-2\nn\n",
			wantErr:  ErrAborted,
			want:     []float64{9, 9},
		},
		{
			name:     "replace without answer",
			existing: "a: [9, 9]\n",
			stdin:    "1.5\n-2\n",
			wantErr:  ErrAborted,
			want:     []float64{9, 9},
		},
		{
			name:     "replace with --yes",
			existing: "a: [9, 9]\n",
			stdin:    "1.5\n-2\n",
			args:     []string{"--yes"},
			want:     []float64{1.5, -2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "doc.yaml")
			if tt.existing != "" {
				require.NoError(t, os.WriteFile(path, []byte(tt.existing), 0o600))
			}

			args := append([]string{"prompt", "--arity", "2", "--name", "a", "--save", path}, tt.args...)

			_, err := run(t.Context(), t, tt.stdin, args...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			doc, err := inspect.LoadFile(path)
			require.NoError(t, err)
			require.Contains(t, doc, "a")
			assert.Equal(t, tt.want, doc["a"].ToArray())

			if tt.existing == "b: [7, 7]\n" {
				assert.Equal(t, []float64{7, 7}, doc["b"].ToArray())
			}
		})
	}
}
