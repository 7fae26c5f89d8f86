package main

import (
	"bytes"
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"

	sout "github.com/coffyg/sout"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	writers           = 64
	messagesPerWriter = 5000
	payload           = "0123456789abcdef0123456789abcdef"
)

func main() {
	// Create logger for harness diagnostics
	logger := zerolog.New(zerolog.NewConsoleWriter())

	// Set GOMAXPROCS to match available cores for accurate measurement
	numCPU := runtime.NumCPU()
	runtime.GOMAXPROCS(numCPU)
	fmt.Printf("Running with GOMAXPROCS=%d\n", numCPU)
	fmt.Printf("Writers: %d, messages per writer: %d\n", writers, messagesPerWriter)

	// One shared config over an in-memory sink. The sink itself is not
	// thread-safe; exclusive access is entirely the config's job.
	var buf bytes.Buffer
	cfg := sout.NewBufferedConfig(&buf, 0)

	// Measure memory usage before the run
	var m1, m2 runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&m1)

	// Give every writer goroutine a unique identity so corrupted or
	// interleaved lines are attributable afterwards
	ids := make([]string, writers)
	for i := range ids {
		ids[i] = uuid.New().String()
	}

	start := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(writerID string) {
			defer wg.Done()
			for n := 0; n < messagesPerWriter; n++ {
				if err := cfg.Printf("writer=%s seq=%d payload=%s\n", writerID, n, payload); err != nil {
					logger.Error().Err(err).Str("writer", writerID).Msg("[stress] write failed")
					return
				}
			}
		}(ids[i])
	}
	wg.Wait()
	elapsed := time.Since(start)

	runtime.ReadMemStats(&m2)

	total := writers * messagesPerWriter
	fmt.Printf("Wrote %d messages in %s (%.0f msg/s, %.2f MB/s)\n",
		total, elapsed,
		float64(total)/elapsed.Seconds(),
		float64(buf.Len())/elapsed.Seconds()/(1<<20))

	heapDiff := int64(m2.HeapAlloc) - int64(m1.HeapAlloc)
	fmt.Println("Memory Stats:")
	fmt.Printf("  Heap Growth: %d bytes\n", heapDiff)
	fmt.Printf("  Total Alloc: %d bytes\n", m2.TotalAlloc-m1.TotalAlloc)
	fmt.Printf("  Sys: %d bytes\n", m2.Sys)

	// Verify that no line was interleaved or corrupted
	if err := verify(buf.String(), ids); err != nil {
		logger.Error().Err(err).Msg("[stress] output verification FAILED")
		return
	}
	fmt.Printf("Verified %d lines: no interleaving, no corruption\n", total)
}

// verify checks that the output consists of exactly writers*messagesPerWriter
// intact lines and that every writer's sequence is complete.
func verify(out string, ids []string) error {
	known := make(map[string]int, len(ids))
	for _, id := range ids {
		known[id] = 0
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != writers*messagesPerWriter {
		return fmt.Errorf("expected %d lines, got %d", writers*messagesPerWriter, len(lines))
	}

	for i, line := range lines {
		var id string
		var seq int
		var pl string
		if _, err := fmt.Sscanf(line, "writer=%s seq=%d payload=%s", &id, &seq, &pl); err != nil {
			return fmt.Errorf("line %d corrupted: %q: %w", i, line, err)
		}
		count, ok := known[id]
		if !ok {
			return fmt.Errorf("line %d has unknown writer id %q", i, id)
		}
		if pl != payload {
			return fmt.Errorf("line %d has corrupted payload %q", i, pl)
		}
		// Each goroutine emits seq 0..M-1 in order and calls are serialized,
		// so a writer's lines must appear in exactly that order
		if seq != count {
			return fmt.Errorf("line %d: writer %s emitted seq %d, expected %d", i, id, seq, count)
		}
		known[id] = count + 1
	}

	for id, count := range known {
		if count != messagesPerWriter {
			return fmt.Errorf("writer %s wrote %d messages, expected %d", id, count, messagesPerWriter)
		}
	}
	return nil
}
