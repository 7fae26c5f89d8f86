package sout

import (
	"bufio"
	"os"
	"sync"
)

// Process-wide standard-stream configs. Each pairs a dedicated lock with a
// dedicated fixed-size buffer over the corresponding OS stream; built once,
// never reassigned, alive for the whole process.
var (
	stdOnce   sync.Once
	stdoutCfg *WriterConfig
	stderrCfg *WriterConfig
)

func ensureStd() {
	stdOnce.Do(func() {
		stdoutCfg = &WriterConfig{
			mu:   &ReentrantMutex{},
			sink: bufio.NewWriterSize(os.Stdout, defaultBufferSize),
			raw:  os.Stdout,
			name: "stdout",
		}
		stderrCfg = &WriterConfig{
			mu:   &ReentrantMutex{},
			sink: bufio.NewWriterSize(os.Stderr, defaultBufferSize),
			raw:  os.Stderr,
			name: "stderr",
		}
	})
}

// Stdout returns the process-wide synchronized standard output config.
func Stdout() *WriterConfig {
	ensureStd()
	return stdoutCfg
}

// Stderr returns the process-wide synchronized standard error config.
func Stderr() *WriterConfig {
	ensureStd()
	return stderrCfg
}

// Printf writes formatted output to standard output as one atomic unit.
func Printf(format string, a ...any) error {
	return Fprintf(Stdout(), format, a...)
}

// ErrPrintf writes formatted output to standard error as one atomic unit.
func ErrPrintf(format string, a ...any) error {
	return Fprintf(Stderr(), format, a...)
}

// DebugPrintf is Printf with the error discarded. Best-effort diagnostic
// output: a failed write (closed terminal, broken pipe) must never crash or
// propagate into caller logic.
func DebugPrintf(format string, a ...any) {
	_ = Printf(format, a...)
}

// DebugErrPrintf is ErrPrintf with the error discarded.
func DebugErrPrintf(format string, a ...any) {
	_ = ErrPrintf(format, a...)
}
