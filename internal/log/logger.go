// Package log provides the verbose diagnostic logger shared by the corpus
// pipelines. Progress users always see goes through fmt in the CLI; this
// logger carries the optional detail behind --verbose.
package log

import (
	"fmt"
	"io"
)

// Logger writes verbose diagnostic messages when Enabled is true.
// Output goes to the configured writer (typically stderr).
// A nil Logger is a valid no-op.
type Logger struct {
	Enabled bool
	W       io.Writer
}

// Printf writes a formatted message to W when the logger is non-nil and
// enabled.
func (l *Logger) Printf(format string, args ...any) {
	if l == nil || !l.Enabled {
		return
	}
	_, _ = fmt.Fprintf(l.W, format+"\n", args...)
}
