package sout

import (
	"bufio"
	"io"
)

// defaultBufferSize is the sink buffer size used by the standard-stream
// configs and by NewBufferedConfig when no explicit size is given.
const defaultBufferSize = 1024

// WriterConfig is an immutable pairing of a re-entrant lock with the
// buffered sink it guards. The sink is only ever mutated while the lock is
// held, and both are unexported so callers cannot write to the sink while
// bypassing synchronization.
//
// The lock must outlive every use of the sink through this config. A single
// lock may back several configs; writes across those configs then serialize
// with each other.
type WriterConfig struct {
	mu   *ReentrantMutex
	sink *bufio.Writer
	raw  io.Writer // underlying destination, nil when unknown
	name string    // stream label used in errors
}

// NewWriterConfig pairs an existing lock with an existing buffered sink.
// It is a pure data constructor: the caller guarantees both references are
// non-nil and that the sink is never touched except through this config.
func NewWriterConfig(mu *ReentrantMutex, sink *bufio.Writer) *WriterConfig {
	return &WriterConfig{
		mu:   mu,
		sink: sink,
		name: "custom",
	}
}

// NewBufferedConfig wraps w in a buffered sink guarded by a fresh lock.
// bufSize <= 0 selects the default 1024-byte buffer. This is the intended
// way to build configs over files, pipes and in-memory buffers.
func NewBufferedConfig(w io.Writer, bufSize int) *WriterConfig {
	if bufSize <= 0 {
		bufSize = defaultBufferSize
	}
	return &WriterConfig{
		mu:   &ReentrantMutex{},
		sink: bufio.NewWriterSize(w, bufSize),
		raw:  w,
		name: "custom",
	}
}

// Mode resolves the output capabilities of the config's underlying
// destination. Configs built over an unknown destination resolve to plain
// output.
func (c *WriterConfig) Mode() OutputMode {
	return ResolveMode(c.raw)
}

// lockedWriter exposes a config as an io.Writer. Each Write call is one
// complete lock-write-flush unit, so line-oriented producers (one Write per
// line) stay contiguous alongside concurrent print calls.
type lockedWriter struct {
	c *WriterConfig
}

func (lw lockedWriter) Write(p []byte) (int, error) {
	lw.c.mu.Lock()
	defer lw.c.mu.Unlock()
	n, err := lw.c.sink.Write(p)
	if err != nil {
		return n, newWriteError("write", lw.c.name, err)
	}
	if err := lw.c.sink.Flush(); err != nil {
		return n, newWriteError("flush", lw.c.name, err)
	}
	return n, nil
}

// Writer returns an io.Writer view of the config sharing its critical
// section. Useful for handing the config to loggers and other writers that
// emit whole lines per Write call.
func (c *WriterConfig) Writer() io.Writer {
	return lockedWriter{c: c}
}
