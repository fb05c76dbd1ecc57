// Package duration extracts millisecond durations from log files and averages them.
package duration

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	"github.com/ethpandaops/logtools/internal/config"
	"github.com/ethpandaops/logtools/internal/lines"
	"github.com/sirupsen/logrus"
)

// ErrNoCaptureGroup is returned when a duration pattern does not capture the digits.
var ErrNoCaptureGroup = errors.New("duration pattern must have exactly one capture group")

// Parser extracts durations from log lines matching a marker pattern.
type Parser struct {
	log     logrus.FieldLogger
	pattern *regexp.Regexp
}

// NewParser compiles pattern into a Parser. An empty pattern selects the
// default TIME(ms) marker.
func NewParser(log logrus.FieldLogger, pattern string) (*Parser, error) {
	if pattern == "" {
		pattern = config.DefaultDurationPattern
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid duration pattern: %w", err)
	}

	if re.NumSubexp() != 1 {
		return nil, fmt.Errorf("%w: %q has %d", ErrNoCaptureGroup, pattern, re.NumSubexp())
	}

	return &Parser{
		log:     log.WithField("component", "duration.parser"),
		pattern: re,
	}, nil
}

// Parse returns the durations found in r, in line order. Lines end at \n,
// \r\n or a bare \r; lines without the marker are skipped.
func (p *Parser) Parse(r io.Reader) ([]int64, error) {
	durations := make([]int64, 0)
	reader := lines.NewReader(r)

	lineNumber := 0
	for {
		line, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read log: %w", err)
		}
		lineNumber++

		matches := p.pattern.FindStringSubmatch(lines.TrimTerminator(line))
		if matches == nil {
			continue
		}

		value, err := strconv.ParseInt(matches[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid duration %q: %w", lineNumber, matches[1], err)
		}

		durations = append(durations, value)
	}

	p.log.WithFields(logrus.Fields{
		"lines":     lineNumber,
		"durations": len(durations),
	}).Debug("Parsed durations")

	return durations, nil
}

// ParseFile opens path and parses it. Filesystem errors are wrapped, so
// errors.Is(err, fs.ErrNotExist) holds for a missing file.
func (p *Parser) ParseFile(path string) ([]int64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer file.Close()

	durations, err := p.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return durations, nil
}
