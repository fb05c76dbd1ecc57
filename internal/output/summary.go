package output

import (
	"fmt"
	"strconv"

	"github.com/ethpandaops/logtools/internal/duration"
)

// FormatDurationSummary renders duration statistics as a two column table.
func FormatDurationSummary(source string, summary duration.Summary) string {
	colors := NewColorHelper()

	count := strconv.Itoa(summary.Count)
	minValue, maxValue, meanValue := "-", "-", "0"
	if summary.Count > 0 {
		meanValue = duration.FormatAverage(summary.Mean)
		minValue = fmt.Sprintf("%d ms", summary.Min)
		maxValue = fmt.Sprintf("%d ms", summary.Max)
	} else {
		count = colors.Warning(count)
	}

	rows := [][]string{
		{"Source", source},
		{"Durations", count},
		{"Total", fmt.Sprintf("%d ms", summary.Sum)},
		{"Min", minValue},
		{"Max", maxValue},
		{"Mean", colors.Success(meanValue + " ms")},
	}

	return colors.Header("Duration Summary") + "\n" + RenderToString([]string{"Metric", "Value"}, rows)
}
