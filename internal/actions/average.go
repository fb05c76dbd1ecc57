// Package actions contains the core logic behind each logtools command
package actions

import (
	"fmt"
	"io"

	"github.com/ethpandaops/logtools/internal/duration"
	"github.com/ethpandaops/logtools/internal/output"
	"github.com/sirupsen/logrus"
)

// AverageOptions selects the log file and marker for Average.
type AverageOptions struct {
	File    string
	Pattern string
	// Summary renders a statistics table after the average line.
	Summary bool
}

// Average parses the durations in opts.File, writes the average line to w and
// returns the mean.
func Average(log logrus.FieldLogger, w io.Writer, opts AverageOptions) (float64, error) {
	parser, err := duration.NewParser(log, opts.Pattern)
	if err != nil {
		return 0, err
	}

	durations, err := parser.ParseFile(opts.File)
	if err != nil {
		return 0, err
	}

	mean := duration.Average(durations)
	fmt.Fprintln(w, duration.FormatLine(durations))

	if opts.Summary {
		fmt.Fprint(w, output.FormatDurationSummary(opts.File, duration.Summarize(durations)))
	}

	return mean, nil
}
