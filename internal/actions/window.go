package actions

import (
	"fmt"
	"io"
	"time"

	"github.com/ethpandaops/logtools/internal/timewindow"
)

// Window reads clock once and writes the start and end of the window to w,
// one per line.
func Window(w io.Writer, clock timewindow.Clock, startOffset, endOffset time.Duration) timewindow.Window {
	window := timewindow.Compute(clock.Now(), startOffset, endOffset)

	for _, line := range window.Lines() {
		fmt.Fprintln(w, line)
	}

	return window
}
