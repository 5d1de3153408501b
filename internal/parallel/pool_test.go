package parallel

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestPool_Create(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
	if !pool.IsRunning() {
		t.Error("Pool should be running after creation")
	}
}

func TestPool_CreateDefaultWorkers(t *testing.T) {
	for _, n := range []int{0, -5} {
		pool := NewPool(n)
		if pool.Workers() != runtime.GOMAXPROCS(0) {
			t.Errorf("NewPool(%d).Workers() = %d, want GOMAXPROCS", n, pool.Workers())
		}
		pool.Close()
	}
}

func TestPool_RangeVisitsEveryIndexOnce(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		n       int
	}{
		{"empty", 4, 0},
		{"single", 4, 1},
		{"fewer than workers", 8, 3},
		{"uneven", 4, 103},
		{"one worker", 1, 50},
		{"many", 16, 10000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(tt.workers)
			defer pool.Close()

			hits := make([]atomic.Int32, tt.n)
			pool.Range(tt.n, func(i int) { hits[i].Add(1) })

			for i := range hits {
				if got := hits[i].Load(); got != 1 {
					t.Fatalf("index %d visited %d times, want 1", i, got)
				}
			}
		})
	}
}

func TestPool_RangeAfterClose(t *testing.T) {
	pool := NewPool(4)
	pool.Close()

	if pool.IsRunning() {
		t.Error("Pool should not be running after Close")
	}

	var count atomic.Int32
	pool.Range(10, func(int) { count.Add(1) })
	if count.Load() != 10 {
		t.Errorf("Range after Close ran %d items, want 10", count.Load())
	}
}

func TestPool_CloseIdempotent(t *testing.T) {
	pool := NewPool(2)
	pool.Close()
	pool.Close()
}

func TestPool_ConcurrentRange(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	var total atomic.Int64
	done := make(chan struct{})
	for range 8 {
		go func() {
			pool.Range(100, func(int) { total.Add(1) })
			done <- struct{}{}
		}()
	}
	for range 8 {
		<-done
	}
	if total.Load() != 800 {
		t.Errorf("total = %d, want 800", total.Load())
	}
}

func BenchmarkPool_Range(b *testing.B) {
	pool := NewPool(0)
	defer pool.Close()

	var sink atomic.Int64
	for b.Loop() {
		pool.Range(1000, func(i int) { sink.Add(int64(i)) })
	}
}
