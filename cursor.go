package vmap

// Cursor is a positional handle into a map's entry sequence.
//
// A cursor denotes the structural index it was issued for, tagged with the
// map's generation at issuance. Every structural mutation (insert, erase,
// clear, swap, reserve) bumps the generation, so a retained cursor turns
// stale and its accessors fail with ErrInvalidCursor. This is deliberate:
// in a contiguous container a mutation may shift or reallocate every entry,
// and a positional handle silently pointing at a shifted neighbor would be
// a debugging nightmare.
//
// A cursor at index Len denotes the end position: a valid insertion hint,
// but not dereferenceable.
type Cursor[K, V any] struct {
	m     *Map[K, V]
	index int
	gen   uint64
}

func (m *Map[K, V]) cursorAt(i int) Cursor[K, V] {
	assert(i >= 0 && i <= len(m.entries), "cursor index outside entry sequence")
	return Cursor[K, V]{m: m, index: i, gen: m.gen}
}

// Begin returns a cursor at the smallest entry, or the end position for an
// empty map.
func (m *Map[K, V]) Begin() Cursor[K, V] { return m.cursorAt(0) }

// End returns the cursor one past the largest entry.
func (m *Map[K, V]) End() Cursor[K, V] { return m.cursorAt(len(m.entries)) }

// current reports whether c belongs to m and was issued for m's present
// generation.
func (c Cursor[K, V]) current(m *Map[K, V]) bool {
	return c.m == m && m != nil && c.gen == m.gen
}

// Valid reports whether the cursor may still be used with its map, i.e. no
// mutation happened since it was issued.
func (c Cursor[K, V]) Valid() bool { return c.current(c.m) }

// AtEnd reports whether the cursor denotes the end position.
func (c Cursor[K, V]) AtEnd() bool { return c.m != nil && c.index == len(c.m.entries) }

// Index returns the structural position the cursor was issued for.
func (c Cursor[K, V]) Index() int { return c.index }

// Entry returns the entry at the cursor position.
func (c Cursor[K, V]) Entry() (Pair[K, V], error) {
	var zero Pair[K, V]
	if !c.Valid() {
		return zero, ErrInvalidCursor
	}
	if c.index >= len(c.m.entries) {
		return zero, ErrIndexOutOfBounds
	}
	return c.m.entries[c.index], nil
}

// Key returns the key at the cursor position.
func (c Cursor[K, V]) Key() (K, error) {
	e, err := c.Entry()
	return e.Key, err
}

// Value returns the value at the cursor position.
func (c Cursor[K, V]) Value() (V, error) {
	e, err := c.Entry()
	return e.Value, err
}

// SetValue replaces the value at the cursor position in place. Replacing a
// value is not a structural mutation: no entry moves and no cursor is
// invalidated.
func (c Cursor[K, V]) SetValue(v V) error {
	if !c.Valid() {
		return ErrInvalidCursor
	}
	if c.index >= len(c.m.entries) {
		return ErrIndexOutOfBounds
	}
	c.m.entries[c.index].Value = v
	return nil
}

// Next returns a cursor at the following entry. Advancing from the last
// entry yields the end position; advancing from the end position fails with
// ErrIndexOutOfBounds.
func (c Cursor[K, V]) Next() (Cursor[K, V], error) {
	if !c.Valid() {
		return Cursor[K, V]{}, ErrInvalidCursor
	}
	if c.index >= len(c.m.entries) {
		return Cursor[K, V]{}, ErrIndexOutOfBounds
	}
	return c.m.cursorAt(c.index + 1), nil
}

// Prev returns a cursor at the preceding entry. Stepping before the first
// entry fails with ErrIndexOutOfBounds.
func (c Cursor[K, V]) Prev() (Cursor[K, V], error) {
	if !c.Valid() {
		return Cursor[K, V]{}, ErrInvalidCursor
	}
	if c.index == 0 {
		return Cursor[K, V]{}, ErrIndexOutOfBounds
	}
	return c.m.cursorAt(c.index - 1), nil
}
