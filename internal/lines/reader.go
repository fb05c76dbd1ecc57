// Package lines reads text one line at a time, accepting \n, \r\n and a bare
// \r as line terminators.
package lines

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Reader yields the lines of an underlying reader with their terminators.
// Line length is unbounded.
type Reader struct {
	r *bufio.Reader
}

// NewReader wraps r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// Next returns the next line including its terminator. A final line without
// a terminator is returned as is. Next returns io.EOF once no input is left.
func (l *Reader) Next() (string, error) {
	var line []byte

	for {
		c, err := l.r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && len(line) > 0 {
				return string(line), nil
			}
			return "", err
		}

		line = append(line, c)

		switch c {
		case '\n':
			return string(line), nil
		case '\r':
			if next, peekErr := l.r.Peek(1); peekErr == nil && next[0] == '\n' {
				_, _ = l.r.ReadByte()
				line = append(line, '\n')
			}
			return string(line), nil
		}
	}
}

// TrimTerminator strips the line terminator returned by Next.
func TrimTerminator(line string) string {
	return strings.TrimRight(line, "\r\n")
}
