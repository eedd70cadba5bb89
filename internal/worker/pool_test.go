package worker_test

import (
	"testing"

	"github.com/gugulethu-mngomezulu/Interview-Prep-AI/internal/worker"
)

func TestPool_DeliversAllResults(t *testing.T) {
	pool := worker.NewPool[int](3, 8)

	// Submit from another goroutine: the buffers are smaller than the
	// job count, so the submitter blocks until results are consumed.
	go func() {
		for i := 0; i < 20; i++ {
			n := i
			pool.Submit("job", func() int { return n * 2 })
		}
	}()

	seen := make(map[int]bool)
	for i := 0; i < 20; i++ {
		result := <-pool.Results()
		seen[result.Output] = true
	}

	for i := 0; i < 20; i++ {
		if !seen[i*2] {
			t.Errorf("missing result %d", i*2)
		}
	}
}

func TestPool_CloseDrainsResults(t *testing.T) {
	pool := worker.NewPool[string](2, 4)

	pool.Submit("a", func() string { return "a" })
	pool.Submit("b", func() string { return "b" })

	done := make(chan struct{})
	got := 0
	go func() {
		defer close(done)
		for range pool.Results() {
			got++
		}
	}()

	pool.Close()
	<-done

	if got != 2 {
		t.Errorf("expected 2 results before close, got %d", got)
	}
}
