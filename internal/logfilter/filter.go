// Package logfilter copies log lines matching a pattern into a new file.
package logfilter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/ethpandaops/logtools/internal/config"
	"github.com/ethpandaops/logtools/internal/lines"
	"github.com/sirupsen/logrus"
)

// Result counts the lines seen and kept by a filter run.
type Result struct {
	Scanned int
	Matched int
}

// Filter keeps the lines of a log that match a pattern.
type Filter struct {
	log     logrus.FieldLogger
	pattern *regexp.Regexp
}

// New compiles pattern into a Filter. An empty pattern selects the default
// k6 iteration progress pattern.
func New(log logrus.FieldLogger, pattern string) (*Filter, error) {
	if pattern == "" {
		pattern = config.DefaultFilterPattern
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid filter pattern: %w", err)
	}

	return &Filter{
		log:     log.WithField("component", "logfilter"),
		pattern: re,
	}, nil
}

// Match reports whether the pattern occurs anywhere in line. A trailing line
// terminator is ignored.
func (f *Filter) Match(line string) bool {
	return f.pattern.MatchString(lines.TrimTerminator(line))
}

// Apply writes every line of r that matches to w, verbatim and in order,
// keeping each line's own terminator (\n, \r\n or \r).
func (f *Filter) Apply(r io.Reader, w io.Writer) (Result, error) {
	var result Result

	reader := lines.NewReader(r)
	writer := bufio.NewWriter(w)

	for {
		line, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return result, fmt.Errorf("failed to read log: %w", err)
		}
		result.Scanned++

		if !f.Match(line) {
			continue
		}

		if _, err := writer.WriteString(line); err != nil {
			return result, fmt.Errorf("failed to write line %d: %w", result.Scanned, err)
		}
		result.Matched++
	}

	if err := writer.Flush(); err != nil {
		return result, fmt.Errorf("failed to flush output: %w", err)
	}

	return result, nil
}

// ApplyFile filters inPath into outPath. The output file is created or
// truncated before any line is read.
func (f *Filter) ApplyFile(inPath, outPath string) (result Result, err error) {
	in, err := os.Open(inPath)
	if err != nil {
		return result, fmt.Errorf("failed to open input file: %w", err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return result, fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	result, err = f.Apply(in, out)
	if err != nil {
		return result, err
	}

	f.log.WithFields(logrus.Fields{
		"input":   inPath,
		"output":  outPath,
		"scanned": result.Scanned,
		"matched": result.Matched,
	}).Debug("Filtered log file")

	return result, nil
}
