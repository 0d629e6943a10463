package vmap

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/vmap/alloc"
)

func TestNewEmptyMap(t *testing.T) {
	m := New[int, string]()
	if !m.IsEmpty() || m.Len() != 0 {
		t.Fatalf("expected fresh map to be empty, got len=%d", m.Len())
	}
	if err := m.Check(); err != nil {
		t.Fatalf("expected empty map to validate, got %v", err)
	}
}

func TestNewWithCapacity(t *testing.T) {
	m := New(WithCapacity[int, int](16))
	if m.Len() != 0 {
		t.Fatalf("capacity must not change length, got %d", m.Len())
	}
	if m.Cap() < 16 {
		t.Fatalf("expected capacity >= 16, got %d", m.Cap())
	}
}

func TestFromPairsFirstWins(t *testing.T) {
	m := FromPairs([]Pair[string, int]{
		{"b", 2},
		{"a", 1},
		{"b", 99},
		{"c", 3},
	})
	if m.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", m.Len())
	}
	if v, _ := m.Get("b"); v != 2 {
		t.Fatalf("expected first pair to win for key b, got %d", v)
	}
	if err := m.Check(); err != nil {
		t.Fatalf("invariants violated: %v", err)
	}
}

func TestFromSeq(t *testing.T) {
	src := FromPairs([]Pair[int, int]{{1, 10}, {2, 20}, {3, 30}})
	m := FromSeq(src.All())
	if !Equal(src, m) {
		t.Fatalf("expected map built from sequence to equal its source")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	m := FromPairs([]Pair[int, int]{{1, 1}, {2, 2}})
	clone := m.Clone()
	clone.Set(1, 99)
	clone.Insert(3, 3)
	if v, _ := m.Get(1); v != 1 {
		t.Fatalf("mutating the clone changed the original, got %d", v)
	}
	if m.Len() != 2 || clone.Len() != 3 {
		t.Fatalf("unexpected lengths: original=%d clone=%d", m.Len(), clone.Len())
	}
}

func TestSwapExchangesContents(t *testing.T) {
	a := FromPairs([]Pair[int, int]{{1, 1}})
	b := FromPairs([]Pair[int, int]{{2, 2}, {3, 3}})
	before := a.Begin()
	a.Swap(b)
	if a.Len() != 2 || b.Len() != 1 {
		t.Fatalf("swap did not exchange contents: a=%d b=%d", a.Len(), b.Len())
	}
	if _, ok := a.Get(2); !ok {
		t.Fatalf("expected key 2 in a after swap")
	}
	if before.Valid() {
		t.Fatalf("cursors must not survive a swap")
	}
}

func TestClearRetainsCapacity(t *testing.T) {
	m := New(WithCapacity[int, int](8))
	for i := range 8 {
		m.Insert(i, i)
	}
	capBefore := m.Cap()
	m.Clear()
	if m.Len() != 0 {
		t.Fatalf("expected empty map after clear, got len=%d", m.Len())
	}
	if m.Cap() != capBefore {
		t.Fatalf("clear must retain capacity, had %d, got %d", capBefore, m.Cap())
	}
}

func TestReserveAvoidsReallocation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vmap")
	defer teardown()

	meter := alloc.NewMeasuring[Pair[int, int]](nil)
	m := NewFunc[int, int](func(a, b int) bool { return a < b },
		WithAllocator[int, int](meter))
	m.Reserve(100)
	allocsAfterReserve := meter.Stats().Allocs
	for i := range 100 {
		m.Insert(i, i)
	}
	if got := meter.Stats().Allocs; got != allocsAfterReserve {
		t.Fatalf("expected no reallocation after Reserve(100), got %d extra",
			got-allocsAfterReserve)
	}
	if m.Len() != 100 {
		t.Fatalf("expected 100 entries, got %d", m.Len())
	}
}

func TestAmortizedGrowthReleasesOldStorage(t *testing.T) {
	meter := alloc.NewMeasuring[Pair[int, int]](nil)
	m := NewFunc[int, int](func(a, b int) bool { return a < b },
		WithAllocator[int, int](meter))
	for i := range 1000 {
		m.Insert(i, i)
	}
	stats := meter.Stats()
	if stats.Allocs <= 1 {
		t.Fatalf("expected amortized growth with several allocations, got %d", stats.Allocs)
	}
	if stats.Allocs > 20 {
		t.Fatalf("growth is not amortized: %d allocations for 1000 inserts", stats.Allocs)
	}
	if stats.Releases != stats.Allocs-1 {
		t.Fatalf("expected every superseded buffer to be released: allocs=%d releases=%d",
			stats.Allocs, stats.Releases)
	}
	if stats.Live != m.Cap() {
		t.Fatalf("live slots %d do not match map capacity %d", stats.Live, m.Cap())
	}
}

func TestIterationOrder(t *testing.T) {
	m := FromPairs([]Pair[int, string]{{3, "c"}, {1, "a"}, {2, "b"}})
	var keys []int
	for k := range m.Keys() {
		keys = append(keys, k)
	}
	if len(keys) != 3 || keys[0] != 1 || keys[1] != 2 || keys[2] != 3 {
		t.Fatalf("unexpected key order: %v", keys)
	}
	var vals []string
	for v := range m.Values() {
		vals = append(vals, v)
	}
	if len(vals) != 3 || vals[0] != "a" || vals[2] != "c" {
		t.Fatalf("unexpected value order: %v", vals)
	}
}

// The sequence of operations from the container's acceptance scenario.
func TestScenarioInsertAccessErase(t *testing.T) {
	m := New[int, int]()
	m.Reserve(4)
	m.InsertPairs(Pair[int, int]{1, 2}, Pair[int, int]{3, 4}, Pair[int, int]{5, 6})
	if m.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", m.Len())
	}
	if v := *m.Ref(3); v != 4 {
		t.Fatalf("expected m[3] == 4, got %d", v)
	}
	if removed := m.Delete(3); removed != 1 {
		t.Fatalf("expected erase of key 3 to remove 1 entry, got %d", removed)
	}
	if _, found := m.Find(3); found {
		t.Fatalf("key 3 still present after erase")
	}
	c := m.LowerBound(4)
	e, err := c.Entry()
	if err != nil {
		t.Fatalf("lower_bound(4) not dereferenceable: %v", err)
	}
	if e.Key != 5 || e.Value != 6 {
		t.Fatalf("expected lower_bound(4) at (5,6), got (%d,%d)", e.Key, e.Value)
	}
}
