// Package diag provides ad hoc diagnostic output in the same style the
// rest of the engine uses: prefixed fmt.Fprintf calls to stderr, not a
// structured logging framework.
package diag

import (
	"fmt"
	"os"
)

// Infof prints an informational message prefixed with the given tag, e.g.
// diag.Infof("Scheduler", "render started: %dx%d", w, h).
func Infof(tag, format string, args ...any) {
	fmt.Fprintf(os.Stderr, "[%s] %s\n", tag, fmt.Sprintf(format, args...))
}

// Warnf prints a warning message prefixed with the given tag.
func Warnf(tag, format string, args ...any) {
	fmt.Fprintf(os.Stderr, "[%s] WARN: %s\n", tag, fmt.Sprintf(format, args...))
}
