package vmap

import "errors"

var (
	// ErrKeyNotFound signals that a checked accessor was called for an absent key.
	ErrKeyNotFound = errors.New("vmap: key not found")
	// ErrInvalidCursor signals use of a cursor issued before the last mutation.
	ErrInvalidCursor = errors.New("vmap: cursor invalidated by mutation")
	// ErrIndexOutOfBounds signals dereferencing or erasing the end position.
	ErrIndexOutOfBounds = errors.New("vmap: index out of bounds")
	// ErrInvalidConfig signals an invalid map configuration.
	ErrInvalidConfig = errors.New("vmap: invalid configuration")
	// ErrInvariant signals a violated ordering or uniqueness invariant,
	// usually caused by a comparator which is not a strict weak order.
	ErrInvariant = errors.New("vmap: ordering invariant violated")
)
