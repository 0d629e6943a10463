package vmap

import "cmp"

// Whole-map comparison. Two maps compare like the sorted sequences of their
// (key, value) entries: position by position, keys first, values as the
// tie-break. Keys compare under the receiver's ordering predicate, so maps
// with equivalent-but-not-identical keys (e.g. case-insensitive ordering)
// can still be equal.

// EqualFunc reports whether m and other hold entries with pairwise
// equivalent keys and values equal under eqValue.
func (m *Map[K, V]) EqualFunc(other *Map[K, V], eqValue func(V, V) bool) bool {
	assert(eqValue != nil, "EqualFunc requires a value equality predicate")
	if m.Len() != other.Len() {
		return false
	}
	for i := range m.entries {
		if !m.equivalent(m.entries[i].Key, other.entries[i].Key) {
			return false
		}
		if !eqValue(m.entries[i].Value, other.entries[i].Value) {
			return false
		}
	}
	return true
}

// CompareFunc orders m against other lexicographically over (key, value)
// positions: the first differing position decides, keys under the map's
// predicate, equivalent keys tie-broken by cmpValue. The shorter map
// precedes when one is a prefix of the other. The result is -1, 0 or +1.
func (m *Map[K, V]) CompareFunc(other *Map[K, V], cmpValue func(V, V) int) int {
	assert(cmpValue != nil, "CompareFunc requires a value ordering")
	n := min(m.Len(), other.Len())
	for i := 0; i < n; i++ {
		a, b := m.entries[i], other.entries[i]
		if m.less(a.Key, b.Key) {
			return -1
		}
		if m.less(b.Key, a.Key) {
			return +1
		}
		if c := cmpValue(a.Value, b.Value); c != 0 {
			return c
		}
	}
	return cmp.Compare(m.Len(), other.Len())
}

// Equal reports whether two maps with comparable values hold the same
// entries. See Map.EqualFunc.
func Equal[K any, V comparable](a, b *Map[K, V]) bool {
	return a.EqualFunc(b, func(x, y V) bool { return x == y })
}

// Compare orders two maps with naturally ordered values. See
// Map.CompareFunc.
func Compare[K any, V cmp.Ordered](a, b *Map[K, V]) int {
	return a.CompareFunc(b, cmp.Compare[V])
}
