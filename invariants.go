package vmap

import "fmt"

// Check validates the structural invariants of the map:
//
//  1. the entry sequence is sorted under the ordering predicate,
//  2. no two entries carry mutually equivalent keys,
//  3. capacity covers the entry count.
//
// This checker is intentionally strict and is meant for tests; a violation
// points either at corrupted internal state or at a comparator which is not
// a strict weak order.
func (m *Map[K, V]) Check() error {
	if m == nil {
		return fmt.Errorf("%w: nil map", ErrInvalidConfig)
	}
	if m.less == nil {
		return fmt.Errorf("%w: map has no ordering predicate", ErrInvalidConfig)
	}
	if cap(m.entries) < len(m.entries) {
		return fmt.Errorf("%w: capacity %d below entry count %d", ErrInvariant,
			cap(m.entries), len(m.entries))
	}
	for i := 1; i < len(m.entries); i++ {
		prev, cur := m.entries[i-1], m.entries[i]
		if m.entryLess(cur, prev) {
			return fmt.Errorf("%w: entries %d and %d out of order", ErrInvariant, i-1, i)
		}
		if !m.entryLess(prev, cur) {
			return fmt.Errorf("%w: entries %d and %d have equivalent keys", ErrInvariant, i-1, i)
		}
	}
	return nil
}
