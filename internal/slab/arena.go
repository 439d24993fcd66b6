// Package slab implements the arena-first native engine. All message, array
// and map storage is carved from an Arena that grows in chunks and releases
// everything at once. The exported functions are the engine's entry point
// set: the kernel layer treats their contracts as trusted preconditions and
// never re-validates them.
package slab

import (
	"unsafe"
)

const (
	// MallocAlign is the fixed allocation alignment of the engine. Callers
	// must never require coarser alignment than this.
	MallocAlign = 8

	// minChunk is the size of the first chunk in a fresh arena.
	minChunk = 1 << 10
	// maxChunk caps geometric chunk growth.
	maxChunk = 1 << 16
)

// chunk is a single block of backing memory inside an arena.
type chunk struct {
	buf []byte
	off int
}

// Arena is a chunked bump allocator. Individual allocations are never freed;
// the whole arena is released at once by ArenaFree. Not safe for concurrent
// use.
//
// Every pointer handed out stays valid and address-stable until ArenaFree,
// with one exception: ArenaRealloc may relocate an allocation's content, and
// the old pointer is zapped the moment it returns.
type Arena struct {
	chunks []chunk
	// last remembers the most recent allocation so ArenaRealloc can grow it
	// in place when it is still at the top of the current chunk.
	last     unsafe.Pointer
	lastSize int
}

// ArenaNew allocates a fresh arena. It never returns nil: if the process
// cannot allocate the first chunk there is no allocation substrate left to
// continue on, and the Go runtime aborts.
func ArenaNew() *Arena {
	a := &Arena{chunks: make([]chunk, 0, 4)}
	a.grow(minChunk)
	arenaCreated()
	return a
}

// ArenaFree releases every allocation the arena ever made in one bulk
// operation and poisons the arena against further use.
func ArenaFree(a *Arena) {
	if a.chunks == nil {
		panic("slab: arena freed twice")
	}
	a.chunks = nil
	a.last = nil
	a.lastSize = 0
}

// ArenaMalloc returns a pointer to size uninitialized bytes aligned to
// MallocAlign. It never returns nil.
func ArenaMalloc(a *Arena, size int) unsafe.Pointer {
	if a.chunks == nil {
		panic("slab: arena used after free")
	}
	if size == 0 {
		size = 1
	}

	c := &a.chunks[len(a.chunks)-1]
	off := align(c.off)
	if off+size > len(c.buf) {
		a.grow(size)
		c = &a.chunks[len(a.chunks)-1]
		off = 0
	}
	c.off = off + size

	p := unsafe.Pointer(&c.buf[off])
	a.last = p
	a.lastSize = size
	return p
}

// ArenaRealloc grows or shrinks a previous allocation. ptr must be the
// pointer returned by a prior ArenaMalloc or ArenaRealloc on this arena and
// oldSize the size it was made with. The old pointer is invalid the instant
// this returns; the overlapping prefix of the old content is preserved in
// the returned allocation.
func ArenaRealloc(a *Arena, ptr unsafe.Pointer, oldSize, newSize int) unsafe.Pointer {
	if a.chunks == nil {
		panic("slab: arena used after free")
	}
	if newSize <= oldSize {
		a.last = ptr
		a.lastSize = newSize
		return ptr
	}

	// Extend in place when ptr is the top allocation of the current chunk.
	if ptr == a.last && oldSize == a.lastSize {
		c := &a.chunks[len(a.chunks)-1]
		base := unsafe.Pointer(&c.buf[0])
		off := int(uintptr(ptr) - uintptr(base))
		if off >= 0 && off+oldSize == c.off && off+newSize <= len(c.buf) {
			c.off = off + newSize
			a.lastSize = newSize
			return ptr
		}
	}

	np := ArenaMalloc(a, newSize)
	copy(unsafe.Slice((*byte)(np), oldSize), unsafe.Slice((*byte)(ptr), oldSize))
	return np
}

// grow appends a chunk big enough for need bytes.
func (a *Arena) grow(need int) {
	size := minChunk << len(a.chunks)
	if size > maxChunk {
		size = maxChunk
	}
	if size < need {
		size = align(need)
	}
	a.chunks = append(a.chunks, chunk{buf: make([]byte, size)})
	arenaGrew(size)
}

// align rounds n up to the next MallocAlign boundary.
func align(n int) int {
	return (n + MallocAlign - 1) &^ (MallocAlign - 1)
}
