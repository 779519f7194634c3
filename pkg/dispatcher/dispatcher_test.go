package dispatcher

import (
	"sync"
	"testing"
	"time"

	"github.com/df07/go-pathtrace/pkg/pmath"
)

func TestPartitionSpansCoversEveryIndexExactlyOnce(t *testing.T) {
	spans := partitionSpans(1000, 64)

	covered := make([]bool, 1000)
	for _, s := range spans {
		if s.End <= s.Start {
			t.Fatalf("degenerate span %+v", s)
		}
		for i := s.Start; i < s.End; i++ {
			if covered[i] {
				t.Fatalf("index %d covered by more than one span", i)
			}
			covered[i] = true
		}
	}
	for i, ok := range covered {
		if !ok {
			t.Fatalf("index %d not covered by any span", i)
		}
	}
}

func TestPartitionSpansHandlesNonMultipleTotal(t *testing.T) {
	spans := partitionSpans(10, 3)
	want := []Span{{0, 3}, {3, 6}, {6, 9}, {9, 10}}
	if len(spans) != len(want) {
		t.Fatalf("got %d spans, want %d: %+v", len(spans), len(want), spans)
	}
	for i, s := range spans {
		if s != want[i] {
			t.Errorf("span %d = %+v, want %+v", i, s, want[i])
		}
	}
}

func TestPartitionSpansEmptyTotal(t *testing.T) {
	if spans := partitionSpans(0, 64); spans != nil {
		t.Errorf("expected nil spans for total=0, got %v", spans)
	}
}

// TestRunProcessesEveryPixelExactlyOnce exercises the full dispatcher: a
// small image, several workers, and a work function that records which
// flat pixel indices it saw, guarded by a mutex since spans from
// different goroutines may run concurrently (only the accounting here
// needs synchronization, not the span partition itself).
func TestRunProcessesEveryPixelExactlyOnce(t *testing.T) {
	width, height := 37, 29
	total := width * height

	var mu sync.Mutex
	seen := make(map[int]bool, total)

	Run(width, height, 16, 4, 42, func(span Span, rng *pmath.RNG) {
		if rng == nil {
			t.Error("worker RNG must not be nil")
		}
		mu.Lock()
		defer mu.Unlock()
		for i := span.Start; i < span.End; i++ {
			if seen[i] {
				t.Errorf("index %d processed more than once", i)
			}
			seen[i] = true
		}
	})

	if len(seen) != total {
		t.Errorf("processed %d pixels, want %d", len(seen), total)
	}
}

func TestRunUsesDistinctSeedsPerWorker(t *testing.T) {
	var mu sync.Mutex
	draws := make(map[*pmath.RNG]pmath.Float)

	Run(8, 8, 4, 4, 1, func(span Span, rng *pmath.RNG) {
		// Hold each span briefly so one goroutine cannot drain the whole
		// queue before the other workers have started.
		time.Sleep(time.Millisecond)
		mu.Lock()
		defer mu.Unlock()
		if _, ok := draws[rng]; !ok {
			draws[rng] = pmath.RandomFloat(rng)
		}
	})

	if len(draws) < 2 {
		t.Errorf("expected multiple distinct worker RNGs to be exercised, got %d", len(draws))
	}
}
