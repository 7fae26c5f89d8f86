package sout

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Environment variables controlling colored output.
//
// Precedence (highest first):
//  1. NO_COLOR    -> disable color
//  2. FORCE_COLOR -> enable color
//  3. TTY detection on the destination
const (
	EnvNoColor    = "NO_COLOR"
	EnvForceColor = "FORCE_COLOR"
)

// OutputMode describes what kind of output a destination can render.
type OutputMode struct {
	Color bool
}

// ResolveMode resolves the effective output mode for a writer. Only *os.File
// destinations can be terminals; nil and non-file writers (in-memory
// buffers, pipes wrapped in custom types) resolve to plain output.
func ResolveMode(out io.Writer) OutputMode {
	if os.Getenv(EnvNoColor) != "" {
		return OutputMode{}
	}
	if os.Getenv(EnvForceColor) != "" {
		return OutputMode{Color: true}
	}
	f, ok := out.(*os.File)
	if !ok || f == nil {
		return OutputMode{}
	}
	fd := f.Fd()
	return OutputMode{Color: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)}
}
