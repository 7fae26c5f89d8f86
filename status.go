package sout

import (
	"fmt"
	"sync/atomic"

	"github.com/fatih/color"
)

// Status line palettes, shared across calls
var (
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
)

// Overrides for the status helper destinations; nil selects the standard
// streams.
var (
	statusStdout atomic.Pointer[WriterConfig]
	statusStderr atomic.Pointer[WriterConfig]
)

// SetStatusOutput redirects the status helpers to custom configs. Passing
// nil for either restores the corresponding standard stream. Safe to call
// while other goroutines are printing.
func SetStatusOutput(out, errOut *WriterConfig) {
	statusStdout.Store(out)
	statusStderr.Store(errOut)
}

func statusOut() *WriterConfig {
	if c := statusStdout.Load(); c != nil {
		return c
	}
	return Stdout()
}

func statusErr() *WriterConfig {
	if c := statusStderr.Load(); c != nil {
		return c
	}
	return Stderr()
}

// statusLine renders one line through c's critical section, colorized only
// when the destination supports it. Best effort: a failed write is
// discarded, so status output can never crash the caller.
func statusLine(c *WriterConfig, col *color.Color, format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if col != nil && c.Mode().Color {
		// Work on a copy; the shared palette value keeps fatih/color's own
		// TTY autodetection untouched for other users.
		enabled := *col
		enabled.EnableColor()
		msg = enabled.Sprint(msg)
	}
	_ = c.Println(msg)
}

// Successf prints a green status line to standard output.
func Successf(format string, a ...any) {
	statusLine(statusOut(), successColor, format, a...)
}

// Infof prints a plain status line to standard output.
func Infof(format string, a ...any) {
	statusLine(statusOut(), nil, format, a...)
}

// Warnf prints a yellow warning line to standard error.
func Warnf(format string, a ...any) {
	statusLine(statusErr(), warnColor, format, a...)
}

// Errorf prints a red error line to standard error.
func Errorf(format string, a ...any) {
	statusLine(statusErr(), errorColor, format, a...)
}
