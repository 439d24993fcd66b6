package slab

import (
	"testing"
	"unsafe"
)

func TestArenaAllocRoundTrip(t *testing.T) {
	a := ArenaNew()
	defer ArenaFree(a)

	// Interleave two allocations and write distinct patterns to each; a
	// write through one must not corrupt the other.
	p0 := ArenaMalloc(a, 64)
	p1 := ArenaMalloc(a, 64)
	b0 := unsafe.Slice((*byte)(p0), 64)
	b1 := unsafe.Slice((*byte)(p1), 64)

	for i := range b0 {
		b0[i] = 0xAA
	}
	for i := range b1 {
		b1[i] = 0x55
	}

	for i := range b0 {
		if b0[i] != 0xAA {
			t.Fatalf("TestArenaAllocRoundTrip: allocation 0 byte %d: got %#x, want 0xaa", i, b0[i])
		}
	}
	for i := range b1 {
		if b1[i] != 0x55 {
			t.Fatalf("TestArenaAllocRoundTrip: allocation 1 byte %d: got %#x, want 0x55", i, b1[i])
		}
	}
}

func TestArenaAlignment(t *testing.T) {
	a := ArenaNew()
	defer ArenaFree(a)

	// Odd-sized allocations must not break the alignment of the next one.
	for _, size := range []int{1, 3, 7, 9, 64, 1000} {
		p := ArenaMalloc(a, size)
		if uintptr(p)%MallocAlign != 0 {
			t.Fatalf("TestArenaAlignment(size %d): pointer %#x not aligned to %d", size, uintptr(p), MallocAlign)
		}
	}
}

func TestArenaReallocPreservesPrefix(t *testing.T) {
	a := ArenaNew()
	defer ArenaFree(a)

	p := ArenaMalloc(a, 16)
	b := unsafe.Slice((*byte)(p), 16)
	for i := range b {
		b[i] = byte(i)
	}

	// Grow. The old pointer is zapped; only the new region may be read.
	p = ArenaRealloc(a, p, 16, 128)
	b = unsafe.Slice((*byte)(p), 128)
	for i := 0; i < 16; i++ {
		if b[i] != byte(i) {
			t.Fatalf("TestArenaReallocPreservesPrefix(grow): byte %d: got %d, want %d", i, b[i], i)
		}
	}

	// Shrink. The overlapping prefix survives again.
	p = ArenaRealloc(a, p, 128, 8)
	b = unsafe.Slice((*byte)(p), 8)
	for i := 0; i < 8; i++ {
		if b[i] != byte(i) {
			t.Fatalf("TestArenaReallocPreservesPrefix(shrink): byte %d: got %d, want %d", i, b[i], i)
		}
	}
}

func TestArenaReallocAcrossChunks(t *testing.T) {
	a := ArenaNew()
	defer ArenaFree(a)

	p := ArenaMalloc(a, 32)
	b := unsafe.Slice((*byte)(p), 32)
	for i := range b {
		b[i] = 0x7F
	}

	// Force the realloc destination into a fresh chunk.
	ArenaMalloc(a, minChunk)

	p = ArenaRealloc(a, p, 32, maxChunk*2)
	b = unsafe.Slice((*byte)(p), maxChunk*2)
	for i := 0; i < 32; i++ {
		if b[i] != 0x7F {
			t.Fatalf("TestArenaReallocAcrossChunks: byte %d: got %#x, want 0x7f", i, b[i])
		}
	}
}

func TestArenaFreeTwicePanics(t *testing.T) {
	a := ArenaNew()
	ArenaFree(a)

	defer func() {
		if recover() == nil {
			t.Fatalf("TestArenaFreeTwicePanics: got no panic, want panic")
		}
	}()
	ArenaFree(a)
}

func TestArenaUseAfterFreePanics(t *testing.T) {
	a := ArenaNew()
	ArenaFree(a)

	defer func() {
		if recover() == nil {
			t.Fatalf("TestArenaUseAfterFreePanics: got no panic, want panic")
		}
	}()
	ArenaMalloc(a, 8)
}

func BenchmarkArenaMalloc(b *testing.B) {
	b.ReportAllocs()
	a := ArenaNew()
	for i := 0; i < b.N; i++ {
		ArenaMalloc(a, 48)
	}
}
