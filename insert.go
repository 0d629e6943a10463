package vmap

import "iter"

// Insert adds the entry (key, value) unless an entry equivalent to key is
// already present. It returns a cursor at the inserted or existing entry and
// reports whether an insertion happened. An existing entry keeps its value
// (first wins); Set is the replacing variant.
//
// All other insertion variants reduce to this operation.
func (m *Map[K, V]) Insert(key K, value V) (Cursor[K, V], bool) {
	i, found := m.findIndex(key)
	if found {
		return m.cursorAt(i), false
	}
	m.insertAt(i, Pair[K, V]{Key: key, Value: value})
	return m.cursorAt(i), true
}

// Set stores value for key, replacing the value of an existing equivalent
// entry (last wins). Replacing does not count as a structural mutation;
// inserting does.
func (m *Map[K, V]) Set(key K, value V) {
	i, found := m.findIndex(key)
	if found {
		m.entries[i].Value = value
		return
	}
	m.insertAt(i, Pair[K, V]{Key: key, Value: value})
}

// Ref returns a pointer to the value stored for key, inserting an entry with
// the zero value first when key is absent.
//
// The pointer aims into the backing storage: it follows the same lifetime
// rule as a cursor and must not be retained across a structural mutation.
func (m *Map[K, V]) Ref(key K) *V {
	i, found := m.findIndex(key)
	if !found {
		m.insertAt(i, Pair[K, V]{Key: key})
	}
	return &m.entries[i].Value
}

// Emplace adds an entry for key with a value built by construct, unless an
// equivalent entry is present. construct runs only when the entry is
// actually inserted, so a rejected duplicate costs no value construction;
// a nil construct inserts the zero value.
func (m *Map[K, V]) Emplace(key K, construct func() V) (Cursor[K, V], bool) {
	i, found := m.findIndex(key)
	if found {
		return m.cursorAt(i), false
	}
	m.insertAt(i, m.buildEntry(key, construct))
	return m.cursorAt(i), true
}

// InsertHint inserts (key, value) like Insert, using hint as a proposed
// insertion position. A usable hint skips the binary search; an unusable
// hint (wrong position, stale, or foreign) silently falls back to the full
// Insert path and never corrupts ordering.
func (m *Map[K, V]) InsertHint(hint Cursor[K, V], key K, value V) Cursor[K, V] {
	if m.hintAdmits(hint, key) {
		m.insertAt(hint.index, Pair[K, V]{Key: key, Value: value})
		return m.cursorAt(hint.index)
	}
	c, _ := m.Insert(key, value)
	return c
}

// EmplaceHint is Emplace with InsertHint's hinted placement. construct runs
// only when an entry is inserted.
func (m *Map[K, V]) EmplaceHint(hint Cursor[K, V], key K, construct func() V) Cursor[K, V] {
	if m.hintAdmits(hint, key) {
		m.insertAt(hint.index, m.buildEntry(key, construct))
		return m.cursorAt(hint.index)
	}
	c, _ := m.Emplace(key, construct)
	return c
}

// InsertPairs inserts each pair via Insert and returns the number of entries
// actually inserted. Pairs with keys equivalent to earlier pairs — or to
// entries already present — are dropped (first wins).
func (m *Map[K, V]) InsertPairs(pairs ...Pair[K, V]) int {
	inserted := 0
	m.grow(len(m.entries) + len(pairs))
	for _, p := range pairs {
		if _, ok := m.Insert(p.Key, p.Value); ok {
			inserted++
		}
	}
	return inserted
}

// InsertSeq inserts each element of a key/value sequence via Insert,
// returning the number of entries actually inserted (first wins).
func (m *Map[K, V]) InsertSeq(seq iter.Seq2[K, V]) int {
	inserted := 0
	for k, v := range seq {
		if _, ok := m.Insert(k, v); ok {
			inserted++
		}
	}
	return inserted
}

// hintAdmits reports whether hint proposes a position at which inserting key
// preserves the ordering invariant. The hint must be current for this map,
// the key before the hint (if any) must strictly precede key, and key must
// strictly precede the key at the hint (if any).
func (m *Map[K, V]) hintAdmits(hint Cursor[K, V], key K) bool {
	if !hint.current(m) {
		return false
	}
	var before, at *K
	if hint.index > 0 {
		before = &m.entries[hint.index-1].Key
	}
	if hint.index < len(m.entries) {
		at = &m.entries[hint.index].Key
	}
	return hintOrdered(m.less, before, key, at)
}

// hintOrdered is the pure ordering condition behind hint validation: with
// neighbor keys before and at (either may be absent), inserting key between
// them keeps the sequence sorted iff before < key < at holds where the
// neighbors exist.
func hintOrdered[K any](less func(K, K) bool, before *K, key K, at *K) bool {
	if before != nil && !less(*before, key) {
		return false
	}
	if at != nil && !less(key, *at) {
		return false
	}
	return true
}

func (m *Map[K, V]) buildEntry(key K, construct func() V) Pair[K, V] {
	e := Pair[K, V]{Key: key}
	if construct != nil {
		e.Value = construct()
	}
	return e
}

// insertAt places e at index i, shifting subsequent entries right and
// growing the backing storage when needed. Callers guarantee that i is the
// ordered position for e's key.
func (m *Map[K, V]) insertAt(i int, e Pair[K, V]) {
	m.grow(len(m.entries) + 1)
	m.entries = m.entries[:len(m.entries)+1]
	copy(m.entries[i+1:], m.entries[i:])
	m.entries[i] = e
	m.gen++
}
