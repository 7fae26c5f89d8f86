package sout

import (
	"bytes"
	"sync"
)

// Thread-safe in-memory sink for concurrent output tests
type ThreadSafeBuffer struct {
	buf   bytes.Buffer
	mutex sync.Mutex
}

func (t *ThreadSafeBuffer) Write(p []byte) (n int, err error) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.buf.Write(p)
}

func (t *ThreadSafeBuffer) String() string {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.buf.String()
}

func (t *ThreadSafeBuffer) Len() int {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.buf.Len()
}
