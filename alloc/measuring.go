package alloc

// Stats is a snapshot of allocator activity.
type Stats struct {
	Allocs   int // calls to Allocate
	Releases int // calls to Release
	Live     int // element slots currently held by callers
	Peak     int // maximum of Live over the allocator's lifetime
}

// Measuring wraps an allocator and counts slot traffic. It is meant for
// tests and benchmarks that want to observe a container's growth behavior,
// e.g. that Reserve avoids repeated reallocation during bulk insertion.
type Measuring[T any] struct {
	inner Allocator[T]
	stats Stats
}

// NewMeasuring wraps inner with counters. A nil inner defaults to Heap.
func NewMeasuring[T any](inner Allocator[T]) *Measuring[T] {
	if inner == nil {
		inner = Heap[T]{}
	}
	return &Measuring[T]{inner: inner}
}

// Allocate counts n slots as live and delegates to the wrapped allocator.
func (a *Measuring[T]) Allocate(n int) []T {
	a.stats.Allocs++
	a.stats.Live += n
	if a.stats.Live > a.stats.Peak {
		a.stats.Peak = a.stats.Live
	}
	return a.inner.Allocate(n)
}

// Release returns the slice's capacity to the counter and delegates.
func (a *Measuring[T]) Release(buf []T) {
	a.stats.Releases++
	a.stats.Live -= cap(buf)
	a.inner.Release(buf)
}

// Stats returns the current counter snapshot.
func (a *Measuring[T]) Stats() Stats { return a.stats }
