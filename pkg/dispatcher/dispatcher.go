// Package dispatcher implements the span queue and worker pool of spec
// §4.9/§5: a bounded FIFO queue of contiguous pixel spans drained by a
// fixed pool of goroutines, each with its own seeded RNG.
package dispatcher

import (
	"runtime"
	"sync"

	"github.com/df07/go-pathtrace/pkg/pmath"
)

// DefaultSpanSize is the default number of pixels per dispatched span.
const DefaultSpanSize = 256

// minQueueCapacity is the dispatcher's queue capacity clamp (spec §5):
// the channel backing the span queue is never sized below this, even if
// the image is small enough to need fewer spans.
const minQueueCapacity = 128

// Span is a contiguous half-open range [Start, End) of flat pixel indices
// into a width*height image.
type Span struct {
	Start, End int
}

// WorkFunc processes every pixel index in a span, drawing samples with
// the given per-worker RNG and writing results into the caller's
// framebuffer. It is called once per span, synchronously, by a worker.
type WorkFunc func(span Span, rng *pmath.RNG)

// Run partitions [0, width*height) into contiguous spans of spanSize
// pixels, then drains them with numWorkers goroutines, each seeded
// independently from seed plus its worker index (spec §5's "per-thread
// RNG... seeded independently" recommendation). Run blocks until every
// span has been processed.
func Run(width, height, spanSize, numWorkers int, seed int64, work WorkFunc) {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if spanSize <= 0 {
		spanSize = DefaultSpanSize
	}

	total := width * height
	spans := partitionSpans(total, spanSize)

	queueCap := len(spans)
	if queueCap < minQueueCapacity {
		queueCap = minQueueCapacity
	}

	queue := make(chan Span, queueCap)
	for _, s := range spans {
		queue <- s
	}
	close(queue)

	var wg sync.WaitGroup
	for worker := 0; worker < numWorkers; worker++ {
		wg.Add(1)
		rng := pmath.NewRNG(seed + int64(worker))
		go func(rng *pmath.RNG) {
			defer wg.Done()
			for span := range queue {
				work(span, rng)
			}
		}(rng)
	}
	wg.Wait()
}

// partitionSpans splits [0, total) into contiguous, disjoint spans of at
// most spanSize pixels each, covering every index exactly once.
func partitionSpans(total, spanSize int) []Span {
	if total <= 0 {
		return nil
	}
	spans := make([]Span, 0, (total+spanSize-1)/spanSize)
	for start := 0; start < total; start += spanSize {
		end := start + spanSize
		if end > total {
			end = total
		}
		spans = append(spans, Span{Start: start, End: end})
	}
	return spans
}
