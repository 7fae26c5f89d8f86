package sout

import (
	"fmt"
	"io"
)

// do runs emit against the sink and flushes, all inside one critical
// section. The lock is released on every exit path, including write and
// flush failures, so an erroring sink can never leak the lock.
func (c *WriterConfig) do(emit func(w io.Writer) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := emit(c.sink); err != nil {
		return newWriteError("write", c.name, err)
	}
	if err := c.sink.Flush(); err != nil {
		return newWriteError("flush", c.name, err)
	}
	return nil
}

// Fprintf performs one synchronized formatted write against c: it acquires
// the config's lock, formats into the buffered sink, flushes the buffer to
// the underlying destination, and releases the lock. Bytes of one call are
// contiguous on the destination; two concurrent calls never interleave.
//
// The lock is re-entrant, so a formatting argument whose String method
// prints through the same config does not deadlock.
//
// No retry is attempted on failure; the returned *WriteError wraps the
// sink's error and the caller decides.
func Fprintf(c *WriterConfig, format string, a ...any) error {
	return c.do(func(w io.Writer) error {
		_, err := fmt.Fprintf(w, format, a...)
		return err
	})
}

// DebugFprintf is Fprintf with the error discarded, for best-effort output
// against custom sinks.
func DebugFprintf(c *WriterConfig, format string, a ...any) {
	_ = Fprintf(c, format, a...)
}

// Printf formats and writes to the config's sink as one atomic unit.
func (c *WriterConfig) Printf(format string, a ...any) error {
	return Fprintf(c, format, a...)
}

// Print writes its operands in fmt.Fprint style as one atomic unit.
func (c *WriterConfig) Print(a ...any) error {
	return c.do(func(w io.Writer) error {
		_, err := fmt.Fprint(w, a...)
		return err
	})
}

// Println writes its operands in fmt.Fprintln style as one atomic unit.
func (c *WriterConfig) Println(a ...any) error {
	return c.do(func(w io.Writer) error {
		_, err := fmt.Fprintln(w, a...)
		return err
	})
}
