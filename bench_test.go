package vmap

import (
	"math/rand"
	"testing"
)

const benchSize = 1000

func BenchmarkInsertAscending(b *testing.B) {
	for b.Loop() {
		m := New[int, int]()
		for k := range benchSize {
			m.Insert(k, k)
		}
	}
}

func BenchmarkInsertAscendingReserved(b *testing.B) {
	for b.Loop() {
		m := New(WithCapacity[int, int](benchSize))
		for k := range benchSize {
			m.Insert(k, k)
		}
	}
}

func BenchmarkInsertRandom(b *testing.B) {
	keys := rand.New(rand.NewSource(1)).Perm(benchSize)
	b.ResetTimer()
	for b.Loop() {
		m := New[int, int]()
		for _, k := range keys {
			m.Insert(k, k)
		}
	}
}

func BenchmarkInsertHintAscending(b *testing.B) {
	for b.Loop() {
		m := New(WithCapacity[int, int](benchSize))
		hint := m.End()
		for k := range benchSize {
			hint = m.InsertHint(hint, k, k)
			hint, _ = hint.Next()
		}
	}
}

func BenchmarkFind(b *testing.B) {
	m := New(WithCapacity[int, int](benchSize))
	for k := range benchSize {
		m.Insert(k, k)
	}
	b.ResetTimer()
	for b.Loop() {
		if _, found := m.Find(benchSize / 2); !found {
			b.Fatal("key vanished")
		}
	}
}

func BenchmarkGetVsGoMap(b *testing.B) {
	b.Run("vmap", func(b *testing.B) {
		m := New(WithCapacity[int, int](benchSize))
		for k := range benchSize {
			m.Insert(k, k)
		}
		b.ResetTimer()
		for b.Loop() {
			m.Get(benchSize - 1)
		}
	})
	b.Run("gomap", func(b *testing.B) {
		m := make(map[int]int, benchSize)
		for k := range benchSize {
			m[k] = k
		}
		b.ResetTimer()
		for b.Loop() {
			_ = m[benchSize-1]
		}
	})
}
