package vmap

// Binary-search internals. All public lookups funnel through lowerBound /
// upperBound / findIndex so that the ordering invariant is consulted in
// exactly one place.

// lowerBound returns the first index whose key is not less than key,
// or len(entries) if there is none.
func (m *Map[K, V]) lowerBound(key K) int {
	lo, hi := 0, len(m.entries)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if m.less(m.entries[mid].Key, key) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// upperBound returns the first index whose key is strictly greater than key,
// or len(entries) if there is none.
func (m *Map[K, V]) upperBound(key K) int {
	lo, hi := 0, len(m.entries)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if m.less(key, m.entries[mid].Key) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// findIndex returns the position of the entry equivalent to key, or the
// insertion position for key when absent.
func (m *Map[K, V]) findIndex(key K) (int, bool) {
	i := m.lowerBound(key)
	if i < len(m.entries) && !m.less(key, m.entries[i].Key) {
		return i, true
	}
	return i, false
}

// equivalent reports whether a and b are the same key for map purposes,
// i.e. neither strictly precedes the other.
func (m *Map[K, V]) equivalent(a, b K) bool {
	return !m.less(a, b) && !m.less(b, a)
}

// entryLess compares two entries by their keys. Used wherever search or
// comparison operates entry-to-entry rather than entry-to-key.
func (m *Map[K, V]) entryLess(a, b Pair[K, V]) bool {
	return m.less(a.Key, b.Key)
}

// Get returns the value stored for key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	if i, found := m.findIndex(key); found {
		return m.entries[i].Value, true
	}
	var zero V
	return zero, false
}

// At returns the value stored for key, failing with ErrKeyNotFound when key
// has no entry. Absence is a hard contract violation for At; use Get or Find
// when absence is an expected outcome.
func (m *Map[K, V]) At(key K) (V, error) {
	if v, ok := m.Get(key); ok {
		return v, nil
	}
	var zero V
	return zero, ErrKeyNotFound
}

// Contains reports whether an entry equivalent to key exists.
func (m *Map[K, V]) Contains(key K) bool {
	if m == nil {
		return false
	}
	_, found := m.findIndex(key)
	return found
}

// Count returns the number of entries for key, which is 0 or 1.
func (m *Map[K, V]) Count(key K) int {
	if m.Contains(key) {
		return 1
	}
	return 0
}

// Find returns a cursor at the entry for key, or an invalid position flag.
// The cursor is valid until the next mutation of the map.
func (m *Map[K, V]) Find(key K) (Cursor[K, V], bool) {
	if m == nil {
		return Cursor[K, V]{}, false
	}
	if i, found := m.findIndex(key); found {
		return m.cursorAt(i), true
	}
	return m.End(), false
}

// LowerBound returns a cursor at the first entry whose key is not less than
// key, or End if there is none.
func (m *Map[K, V]) LowerBound(key K) Cursor[K, V] {
	return m.cursorAt(m.lowerBound(key))
}

// UpperBound returns a cursor at the first entry whose key is strictly
// greater than key, or End if there is none.
func (m *Map[K, V]) UpperBound(key K) Cursor[K, V] {
	return m.cursorAt(m.upperBound(key))
}

// EqualRange returns the half-open cursor range of entries equivalent to
// key. Because keys are unique the range spans at most one entry; the
// operation exists to mirror ordered-map semantics.
func (m *Map[K, V]) EqualRange(key K) (Cursor[K, V], Cursor[K, V]) {
	return m.LowerBound(key), m.UpperBound(key)
}
