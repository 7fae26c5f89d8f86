package sout

import (
	"github.com/rs/zerolog"
)

// NewLogger returns a structured logger whose output is serialized through
// c's lock. zerolog emits one Write call per event, so log lines and print
// calls against the same config never interleave.
//
// The print operations themselves never log; this binding exists for
// application code that wants its logger and its console output to share
// one critical section.
func NewLogger(c *WriterConfig) zerolog.Logger {
	return zerolog.New(c.Writer()).With().Timestamp().Logger()
}

// NewConsoleLogger is NewLogger with human-readable console formatting.
// Color tracks the config's resolved output mode.
func NewConsoleLogger(c *WriterConfig) zerolog.Logger {
	cw := zerolog.ConsoleWriter{
		Out:     c.Writer(),
		NoColor: !c.Mode().Color,
	}
	return zerolog.New(cw).With().Timestamp().Logger()
}
