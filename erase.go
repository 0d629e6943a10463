package vmap

// Delete removes the entry equivalent to key and returns the number of
// entries removed (0 or 1).
func (m *Map[K, V]) Delete(key K) int {
	i, found := m.findIndex(key)
	if !found {
		return 0
	}
	m.removeRange(i, i+1)
	return 1
}

// Erase removes the entry at the cursor position and returns a cursor at
// the following entry (or the end position). Erasing the end position fails
// with ErrIndexOutOfBounds; a stale cursor fails with ErrInvalidCursor.
func (m *Map[K, V]) Erase(c Cursor[K, V]) (Cursor[K, V], error) {
	if !c.current(m) {
		return Cursor[K, V]{}, ErrInvalidCursor
	}
	if c.index >= len(m.entries) {
		return Cursor[K, V]{}, ErrIndexOutOfBounds
	}
	m.removeRange(c.index, c.index+1)
	return m.cursorAt(c.index), nil
}

// EraseRange removes the half-open cursor range [first, last) in a single
// shift and returns a cursor at the entry that followed last. Both cursors
// must be current for this map and first must not come after last.
func (m *Map[K, V]) EraseRange(first, last Cursor[K, V]) (Cursor[K, V], error) {
	if !first.current(m) || !last.current(m) {
		return Cursor[K, V]{}, ErrInvalidCursor
	}
	if first.index > last.index || last.index > len(m.entries) {
		return Cursor[K, V]{}, ErrIndexOutOfBounds
	}
	if first.index == last.index {
		return m.cursorAt(first.index), nil
	}
	m.removeRange(first.index, last.index)
	return m.cursorAt(first.index), nil
}

// removeRange deletes entries [i, j), shifting the tail left in place.
// Capacity is retained.
func (m *Map[K, V]) removeRange(i, j int) {
	assert(0 <= i && i <= j && j <= len(m.entries), "removeRange bounds outside entry sequence")
	n := copy(m.entries[i:], m.entries[j:])
	tail := m.entries[i+n:]
	clear(tail)
	m.entries = m.entries[:i+n]
	m.gen++
}
