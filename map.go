package vmap

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"iter"

	"github.com/npillmayer/vmap/alloc"
)

// Pair is a stored key/value entry.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// Map is an ordered map over a single sorted contiguous sequence of entries.
//
// Entries are kept sorted by key under the map's comparator at all times;
// there is never more than one entry per key, where "per key" means
// equivalence under the comparator, not value identity.
//
// A Map must be created with New, NewFunc or one of the From constructors;
// the zero value has no comparator and is unusable.
type Map[K, V any] struct {
	entries []Pair[K, V]
	less    func(K, K) bool
	storage alloc.Allocator[Pair[K, V]]
	gen     uint64 // bumped by every structural mutation; validates cursors
}

type config[K, V any] struct {
	capacity int
	storage  alloc.Allocator[Pair[K, V]]
}

// Option configures a map at construction time.
type Option[K, V any] func(*config[K, V])

// WithCapacity pre-allocates backing storage for at least n entries.
func WithCapacity[K, V any](n int) Option[K, V] {
	return func(cfg *config[K, V]) { cfg.capacity = n }
}

// WithAllocator injects the backing-storage allocator for this map instance.
func WithAllocator[K, V any](a alloc.Allocator[Pair[K, V]]) Option[K, V] {
	return func(cfg *config[K, V]) { cfg.storage = a }
}

// New creates an empty map ordered by the natural ascending order of K.
func New[K cmp.Ordered, V any](opts ...Option[K, V]) *Map[K, V] {
	return NewFunc[K, V](cmp.Less[K], opts...)
}

// NewFunc creates an empty map ordered by less, which must be a strict weak
// order over K (irreflexive, asymmetric, transitive).
func NewFunc[K, V any](less func(K, K) bool, opts ...Option[K, V]) *Map[K, V] {
	assert(less != nil, "NewFunc requires an ordering predicate")
	cfg := config[K, V]{storage: alloc.Heap[Pair[K, V]]{}}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.storage == nil {
		cfg.storage = alloc.Heap[Pair[K, V]]{}
	}
	m := &Map[K, V]{less: less, storage: cfg.storage}
	if cfg.capacity > 0 {
		m.entries = m.storage.Allocate(cfg.capacity)
	}
	return m
}

// FromPairs creates a map from pairs with natural key order. Later pairs with
// a key equivalent to an earlier one are dropped (first wins); use Set for
// last-wins semantics.
func FromPairs[K cmp.Ordered, V any](pairs []Pair[K, V], opts ...Option[K, V]) *Map[K, V] {
	return FromPairsFunc(cmp.Less[K], pairs, opts...)
}

// FromPairsFunc creates a map from pairs ordered by less. Duplicates follow
// the first-wins policy of FromPairs.
func FromPairsFunc[K, V any](less func(K, K) bool, pairs []Pair[K, V], opts ...Option[K, V]) *Map[K, V] {
	m := NewFunc[K, V](less, opts...)
	m.InsertPairs(pairs...)
	return m
}

// FromSeq creates a map with natural key order from a key/value sequence,
// dropping later duplicates (first wins).
func FromSeq[K cmp.Ordered, V any](seq iter.Seq2[K, V], opts ...Option[K, V]) *Map[K, V] {
	m := New[K, V](opts...)
	m.InsertSeq(seq)
	return m
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// IsEmpty reports whether the map has no entries.
func (m *Map[K, V]) IsEmpty() bool { return m.Len() == 0 }

// Cap returns the entry capacity of the backing storage.
func (m *Map[K, V]) Cap() int {
	if m == nil {
		return 0
	}
	return cap(m.entries)
}

// KeyCompare returns the map's ordering predicate.
func (m *Map[K, V]) KeyCompare() func(K, K) bool { return m.less }

// Clone returns a deep copy of the map: the entry sequence is duplicated via
// the map's allocator, and comparator and allocator are shared with the copy.
func (m *Map[K, V]) Clone() *Map[K, V] {
	if m == nil {
		return nil
	}
	clone := &Map[K, V]{less: m.less, storage: m.storage}
	if len(m.entries) > 0 {
		buf := m.storage.Allocate(len(m.entries))
		clone.entries = buf[:len(m.entries)]
		copy(clone.entries, m.entries)
	}
	return clone
}

// Swap exchanges backing storage, comparator and allocator of two maps in
// O(1). No entry is copied. All cursors into either map are invalidated.
//
// Swapping with a fresh empty map is the idiom for moving a map's contents.
func (m *Map[K, V]) Swap(other *Map[K, V]) {
	m.entries, other.entries = other.entries, m.entries
	m.less, other.less = other.less, m.less
	m.storage, other.storage = other.storage, m.storage
	m.gen++
	other.gen++
}

// Clear removes all entries. Backing capacity is retained.
func (m *Map[K, V]) Clear() {
	clear(m.entries)
	m.entries = m.entries[:0]
	m.gen++
}

// Reserve grows the backing storage to hold at least n entries, so that a
// following bulk insertion of up to n entries does not reallocate. Reserve
// never shrinks and does not change Len. Cursors are invalidated.
func (m *Map[K, V]) Reserve(n int) {
	if n <= cap(m.entries) {
		return
	}
	m.reallocate(n)
	m.gen++
}

// grow makes room for at least need entries, doubling capacity amortized.
func (m *Map[K, V]) grow(need int) {
	if need <= cap(m.entries) {
		return
	}
	newcap := cap(m.entries) * 2
	if newcap < 4 {
		newcap = 4
	}
	if newcap < need {
		newcap = need
	}
	m.reallocate(newcap)
}

func (m *Map[K, V]) reallocate(capacity int) {
	assert(m.storage != nil, "map has no allocator; was it created with New?")
	buf := m.storage.Allocate(capacity)
	buf = buf[:len(m.entries)]
	copy(buf, m.entries)
	old := m.entries
	m.entries = buf
	if cap(old) > 0 {
		m.storage.Release(old[:0])
	}
	tracer().Debugf("vmap: reallocated backing storage to %d entry slots", capacity)
}

// All returns a key/value iterator over the entries in ascending key order.
//
// The map must not be mutated during iteration.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil {
			return
		}
		for i := range m.entries {
			if !yield(m.entries[i].Key, m.entries[i].Value) {
				return
			}
		}
	}
}

// Keys returns an iterator over the keys in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		if m == nil {
			return
		}
		for i := range m.entries {
			if !yield(m.entries[i].Key) {
				return
			}
		}
	}
}

// Values returns an iterator over the values, ordered by their keys.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		if m == nil {
			return
		}
		for i := range m.entries {
			if !yield(m.entries[i].Value) {
				return
			}
		}
	}
}
