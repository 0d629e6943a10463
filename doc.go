/*
Package vmap implements an ordered map backed by a single sorted slice.

Maps from the standard library and the usual balanced-tree containers pay a
per-entry price: hash buckets, tree nodes, parent pointers. On small devices
and for small to medium entry counts this overhead dominates the payload.
vmap stores all entries in one contiguous, capacity-amortized sequence, kept
fully sorted by key at all times, and locates keys by binary search. Nothing
is allocated per entry.

The trade-off is classic:

	Operation     |   vmap          |  balanced tree
	--------------+-----------------+---------------
	Find          |   O(log n)      |   O(log n)
	Insert        |   O(n)          |   O(log n)
	Delete        |   O(n)          |   O(log n)
	Iterate       |   O(n)          |   O(n)
	Memory/entry  |   payload only  |   payload + node

Insertion and erasure shift entries, so vmap is the right choice when lookups
dominate mutations, or when entry counts stay moderate.

# Cursors are positional

A Cursor denotes a position in the entry sequence, not an entry identity.
Any insertion or erasure may shift or reallocate the backing storage, which
invalidates every previously issued cursor — unlike a node-based map, where
only cursors to removed nodes die. Cursors carry a generation tag, so using a
stale cursor fails with ErrInvalidCursor instead of silently reading a
shifted entry. Callers porting code from node-based maps must not retain
cursors (or Ref pointers) across mutation.

# Ordering

A map orders its keys by a strict-weak-order predicate less(a, b). Two keys
are treated as the same key iff neither precedes the other under the
predicate; value identity plays no role. The predicate must be irreflexive,
asymmetric and transitive — the map cannot detect a broken comparator, and
the ordering invariant is void with one.

A map instance is meant for single-threaded use; there is no internal
synchronization.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package vmap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'vmap'
func tracer() tracing.Trace {
	return tracing.Select("vmap")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
