package actions

import (
	"github.com/ethpandaops/logtools/internal/logfilter"
	"github.com/sirupsen/logrus"
)

// FilterOptions selects the files and pattern for Filter.
type FilterOptions struct {
	Input   string
	Output  string
	Pattern string
}

// Filter copies the matching lines of opts.Input into opts.Output.
func Filter(log logrus.FieldLogger, opts FilterOptions) (logfilter.Result, error) {
	filter, err := logfilter.New(log, opts.Pattern)
	if err != nil {
		return logfilter.Result{}, err
	}

	result, err := filter.ApplyFile(opts.Input, opts.Output)
	if err != nil {
		return result, err
	}

	log.WithFields(logrus.Fields{
		"input":   opts.Input,
		"output":  opts.Output,
		"matched": result.Matched,
	}).Info("Filtered log lines")

	return result, nil
}
