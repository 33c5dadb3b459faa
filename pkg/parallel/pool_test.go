package parallel

import (
	"strings"
	"sync/atomic"
	"testing"
)

func TestPool_ForRunsEveryTask(t *testing.T) {
	pool := NewPool(4)
	if pool.NumThreads() != 4 {
		t.Fatalf("expected 4 threads, got %d", pool.NumThreads())
	}

	var ran [16]atomic.Int32
	err := pool.For(16, func(i int) {
		ran[i].Add(1)
	})
	if err != nil {
		t.Fatalf("For failed: %v", err)
	}
	for i := range ran {
		if ran[i].Load() != 1 {
			t.Errorf("task %d ran %d times", i, ran[i].Load())
		}
	}
}

func TestPool_ForAggregatesPanics(t *testing.T) {
	pool := NewPool(4)

	var completed atomic.Int32
	err := pool.For(8, func(i int) {
		if i == 2 {
			panic("boom")
		}
		completed.Add(1)
	})

	if err == nil {
		t.Fatal("expected an error from the panicking task")
	}
	if !strings.Contains(err.Error(), "task 2") || !strings.Contains(err.Error(), "boom") {
		t.Errorf("unexpected error: %v", err)
	}
	// Siblings run to completion despite the failure.
	if completed.Load() != 7 {
		t.Errorf("expected 7 completed siblings, got %d", completed.Load())
	}
}

func TestPool_DefaultWorkerCount(t *testing.T) {
	if NewPool(0).NumThreads() <= 0 {
		t.Error("expected a positive default worker count")
	}
	if Default().NumThreads() <= 0 {
		t.Error("expected a positive default pool worker count")
	}
}

func TestForFor_SurfacesTaskFailure(t *testing.T) {
	arrays := []ints{{1, 2, 3, 4, 5, 6, 7, 8}}
	err := ForFor(NewPool(4), arrays, 1, func(a ints, r Range, base int) {
		if base == 0 {
			panic("kernel failure")
		}
	})
	if err == nil {
		t.Fatal("expected kernel panic to surface as an error")
	}
	if !strings.Contains(err.Error(), "kernel failure") {
		t.Errorf("unexpected error: %v", err)
	}
}
