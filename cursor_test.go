package vmap

import (
	"errors"
	"testing"
)

func TestCursorWalk(t *testing.T) {
	m := numberMap(t, 1, 2, 3)
	var keys []int
	for c := m.Begin(); !c.AtEnd(); {
		k, err := c.Key()
		if err != nil {
			t.Fatalf("unexpected cursor error: %v", err)
		}
		keys = append(keys, k)
		next, err := c.Next()
		if err != nil {
			t.Fatalf("unexpected cursor error: %v", err)
		}
		c = next
	}
	if len(keys) != 3 || keys[0] != 1 || keys[2] != 3 {
		t.Fatalf("unexpected walk order: %v", keys)
	}
}

func TestCursorPrevFromEnd(t *testing.T) {
	m := numberMap(t, 1, 2)
	c, err := m.End().Prev()
	if err != nil {
		t.Fatalf("unexpected cursor error: %v", err)
	}
	if k, _ := c.Key(); k != 2 {
		t.Fatalf("expected largest entry before end, got %d", k)
	}
	_, err = m.Begin().Prev()
	if !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds before begin, got %v", err)
	}
}

func TestEndCursorIsNotDereferenceable(t *testing.T) {
	m := numberMap(t, 1)
	_, err := m.End().Entry()
	if !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds, got %v", err)
	}
	_, err = m.End().Next()
	if !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds past end, got %v", err)
	}
}

func TestAnyMutationInvalidatesCursors(t *testing.T) {
	m := numberMap(t, 1, 2, 3)
	c, _ := m.Find(1) // not even close to the insertion point below
	m.Insert(99, 990)
	if c.Valid() {
		t.Fatalf("cursor survived an insertion; positional cursors must not")
	}
	_, err := c.Key()
	if !errors.Is(err, ErrInvalidCursor) {
		t.Fatalf("expected ErrInvalidCursor, got %v", err)
	}
}

func TestForeignCursorIsRejected(t *testing.T) {
	a := numberMap(t, 1, 2)
	b := numberMap(t, 1, 2)
	c, _ := a.Find(1)
	_, err := b.Erase(c)
	if !errors.Is(err, ErrInvalidCursor) {
		t.Fatalf("expected ErrInvalidCursor for foreign cursor, got %v", err)
	}
}

func TestCursorSetValue(t *testing.T) {
	m := numberMap(t, 1)
	c, _ := m.Find(1)
	if err := c.SetValue(77); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, _ := m.Get(1); v != 77 {
		t.Fatalf("SetValue not visible, got %d", v)
	}
	if !c.Valid() {
		t.Fatalf("value replacement must not invalidate the cursor")
	}
	if err := m.End().SetValue(1); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds at end, got %v", err)
	}
}
