package logfilter

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const progressLine = "3/10 VUs, 2 complete and 1 interrupted iterations"

func newTestFilter(t *testing.T) *Filter {
	t.Helper()

	f, err := New(logrus.New(), "")
	require.NoError(t, err)

	return f
}

func TestFilter_Match(t *testing.T) {
	f := newTestFilter(t)

	tests := []struct {
		name     string
		line     string
		expected bool
	}{
		{
			name:     "progress line",
			line:     progressLine,
			expected: true,
		},
		{
			name:     "progress line with k6 prefix",
			line:     "running (0m12.0s), 10/10 VUs, 120 complete and 0 interrupted iterations\n",
			expected: true,
		},
		{
			name:     "unrelated line",
			line:     "unrelated line",
			expected: false,
		},
		{
			name:     "missing interrupted count",
			line:     "3/10 VUs, 2 complete and interrupted iterations",
			expected: false,
		},
		{
			name:     "empty",
			line:     "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, f.Match(tt.line))
		})
	}
}

func TestFilter_Apply(t *testing.T) {
	f := newTestFilter(t)

	tests := []struct {
		name     string
		input    string
		expected string
		result   Result
	}{
		{
			name:     "keeps only matching lines",
			input:    progressLine + "\nunrelated line\n",
			expected: progressLine + "\n",
			result:   Result{Scanned: 2, Matched: 1},
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
			result:   Result{},
		},
		{
			name:     "bare carriage returns split lines",
			input:    "noise\r1/2 VUs, 0 complete and 0 interrupted iterations\rmore noise\r2/2 VUs, 1 complete and 0 interrupted iterations\n",
			expected: "1/2 VUs, 0 complete and 0 interrupted iterations\r2/2 VUs, 1 complete and 0 interrupted iterations\n",
			result:   Result{Scanned: 4, Matched: 2},
		},
		{
			name:     "long unrelated line",
			input:    strings.Repeat("x", 2*1024*1024) + "\n" + progressLine + "\n",
			expected: progressLine + "\n",
			result:   Result{Scanned: 2, Matched: 1},
		},
		{
			name:     "order and terminators preserved",
			input:    "1/2 VUs, 0 complete and 0 interrupted iterations\r\nnoise\n2/2 VUs, 5 complete and 1 interrupted iterations",
			expected: "1/2 VUs, 0 complete and 0 interrupted iterations\r\n2/2 VUs, 5 complete and 1 interrupted iterations",
			result:   Result{Scanned: 3, Matched: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer

			result, err := f.Apply(strings.NewReader(tt.input), &out)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out.String())
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestFilter_ApplyFile(t *testing.T) {
	f := newTestFilter(t)
	dir := t.TempDir()

	in := filepath.Join(dir, "LogReceipt.txt")
	out := filepath.Join(dir, "FilteredLogReceipt.txt")

	require.NoError(t, os.WriteFile(in, []byte(progressLine+"\nunrelated line\n"), 0o600))
	require.NoError(t, os.WriteFile(out, []byte("stale content that must be truncated\n"), 0o600))

	result, err := f.ApplyFile(in, out)
	require.NoError(t, err)
	assert.Equal(t, Result{Scanned: 2, Matched: 1}, result)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, progressLine+"\n", string(data))
}

func TestFilter_ApplyFileEmpty(t *testing.T) {
	f := newTestFilter(t)
	dir := t.TempDir()

	in := filepath.Join(dir, "empty.txt")
	out := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(in, nil, 0o600))

	_, err := f.ApplyFile(in, out)
	require.NoError(t, err)

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestFilter_ApplyFileIdempotent(t *testing.T) {
	f := newTestFilter(t)
	dir := t.TempDir()

	in := filepath.Join(dir, "in.txt")
	first := filepath.Join(dir, "first.txt")
	second := filepath.Join(dir, "second.txt")

	content := strings.Join([]string{
		"running (0m01.0s), 1/10 VUs, 0 complete and 0 interrupted iterations",
		"WARN something happened",
		"running (0m02.0s), 10/10 VUs, 4 complete and 0 interrupted iterations",
		"default ✓ [ 100% ] 10 VUs  30s",
		"running (0m30.0s), 00/10 VUs, 300 complete and 2 interrupted iterations",
	}, "\n")
	require.NoError(t, os.WriteFile(in, []byte(content), 0o600))

	_, err := f.ApplyFile(in, first)
	require.NoError(t, err)
	_, err = f.ApplyFile(first, second)
	require.NoError(t, err)

	firstData, err := os.ReadFile(first)
	require.NoError(t, err)
	secondData, err := os.ReadFile(second)
	require.NoError(t, err)

	assert.Equal(t, firstData, secondData)
	assert.Equal(t, 3, strings.Count(string(firstData), "interrupted iterations"))
}

func TestFilter_ApplyFileErrors(t *testing.T) {
	f := newTestFilter(t)
	dir := t.TempDir()

	t.Run("missing input", func(t *testing.T) {
		_, err := f.ApplyFile(filepath.Join(dir, "missing.txt"), filepath.Join(dir, "out.txt"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})

	t.Run("output directory missing", func(t *testing.T) {
		in := filepath.Join(dir, "in.txt")
		require.NoError(t, os.WriteFile(in, []byte(progressLine), 0o600))

		_, err := f.ApplyFile(in, filepath.Join(dir, "no-such-dir", "out.txt"))
		assert.Error(t, err)
	})
}

func TestNew_InvalidPattern(t *testing.T) {
	_, err := New(logrus.New(), `\d+/(`)
	assert.Error(t, err)
}
