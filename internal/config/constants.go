package config

import "time"

const (
	// DefaultDurationFile is the log file read by the duration averager.
	DefaultDurationFile = "./0_run_3.txt"
	// DefaultDurationPattern matches a millisecond duration marker and captures its digits.
	DefaultDurationPattern = `TIME\(ms\) => (\d+)`
	// DefaultFilterInput is the log file read by the line filter.
	DefaultFilterInput = "LogReceipt.txt"
	// DefaultFilterOutput is the file the line filter writes matching lines to.
	DefaultFilterOutput = "FilteredLogReceipt.txt"
	// DefaultFilterPattern matches k6 iteration progress lines.
	DefaultFilterPattern = `\d+/\d+ VUs, \d+ complete and \d+ interrupted iterations`
	// DefaultWindowStartOffset is added to the current time for the first window line.
	DefaultWindowStartOffset time.Duration = 0
	// DefaultWindowEndOffset is added to the current time for the second window line.
	DefaultWindowEndOffset = time.Hour + 5*time.Minute
	// TimestampLayout renders instants as YYYY-MM-DDTHH:MMZ.
	TimestampLayout = "2006-01-02T15:04Z"
)
