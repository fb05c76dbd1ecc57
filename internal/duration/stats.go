package duration

import (
	"strconv"
	"strings"
)

// Summary holds aggregate statistics over a set of durations.
type Summary struct {
	Count int
	Sum   int64
	Min   int64
	Max   int64
	Mean  float64
}

// Average returns the arithmetic mean of durations, or 0 when there are none.
func Average(durations []int64) float64 {
	if len(durations) == 0 {
		return 0
	}

	var sum float64
	for _, d := range durations {
		sum += float64(d)
	}

	return sum / float64(len(durations))
}

// Summarize computes count, sum, min, max and mean of durations.
func Summarize(durations []int64) Summary {
	summary := Summary{
		Count: len(durations),
		Mean:  Average(durations),
	}

	for i, d := range durations {
		summary.Sum += d
		if i == 0 || d < summary.Min {
			summary.Min = d
		}
		if i == 0 || d > summary.Max {
			summary.Max = d
		}
	}

	return summary
}

// FormatAverage renders v the way a float is usually printed: the shortest
// decimal that round-trips, with a ".0" suffix on whole values (20 -> "20.0"),
// switching to exponent form below 1e-4 and from 1e16 up (1e16 -> "1e+16").
func FormatAverage(v float64) string {
	exp := strconv.FormatFloat(v, 'e', -1, 64)
	exponent, err := strconv.Atoi(exp[strings.IndexByte(exp, 'e')+1:])
	if err == nil && v != 0 && (exponent >= 16 || exponent < -4) {
		return exp
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// FormatMean renders the mean of durations, or a plain "0" when there are
// none.
func FormatMean(durations []int64) string {
	if len(durations) == 0 {
		return "0"
	}
	return FormatAverage(Average(durations))
}

// FormatLine renders the line printed by the average command.
func FormatLine(durations []int64) string {
	return "Average time: " + FormatMean(durations)
}
