package output

import (
	"strings"
	"testing"

	"github.com/ethpandaops/logtools/internal/duration"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestColorHelper_FormatMatched(t *testing.T) {
	// Disable colors for consistent testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	helper := NewColorHelper()

	assert.Equal(t, "2/5", helper.FormatMatched(2, 5))
	assert.Equal(t, "0/5", helper.FormatMatched(0, 5))
}

func TestColorHelper_ColorsDisabledWhenNoColor(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	helper := NewColorHelper()
	assert.False(t, helper.enabled)

	assert.Equal(t, "test", helper.Success("test"))
	assert.Equal(t, "test", helper.Warning("test"))
	assert.Equal(t, "test", helper.Header("test"))
}

func TestRenderToString(t *testing.T) {
	out := RenderToString([]string{"name", "value"}, [][]string{{"alpha", "1"}, {"beta", "2"}})

	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "beta")
	assert.Less(t, strings.Index(out, "alpha"), strings.Index(out, "beta"))
}

func TestFormatDurationSummary(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	t.Run("with durations", func(t *testing.T) {
		out := FormatDurationSummary("run.txt", duration.Summarize([]int64{10, 20, 30}))

		assert.True(t, strings.HasPrefix(out, "Duration Summary\n"))
		assert.Contains(t, out, "run.txt")
		assert.Contains(t, out, "10 ms")
		assert.Contains(t, out, "30 ms")
		assert.Contains(t, out, "20.0 ms")
	})

	t.Run("without durations", func(t *testing.T) {
		out := FormatDurationSummary("empty.txt", duration.Summarize(nil))

		assert.Contains(t, out, "0 ms")
		assert.NotContains(t, out, "0.0 ms")
		assert.Contains(t, out, "-")
	})
}
