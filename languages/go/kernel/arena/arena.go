// Package arena is the arena-first kernel: the memory-ownership surface that
// generated message code uses when talon runs over the engine that carves
// all message memory from an explicit arena.
//
// This is not a safe package per se. The allocation functions still have
// sharp edges (see their doc comments), and the handle types uphold memory
// safety only under the mutation invariants documented on MutatorMessageRef.
// Violating those invariants is undefined behavior, not a catchable error.
// THIS PACKAGE IS PUBLIC ONLY OUT OF NECESSITY: it is the boundary between
// generated code and the native engine, not an API for humans.
package arena

import (
	"unsafe"

	"github.com/bearlytools/talon/internal/slab"
)

// MallocAlign is the engine's fixed allocation alignment. Alloc and Resize
// reject requests for anything coarser.
const MallocAlign = slab.MallocAlign

// Arena is an owning wrapper over the engine's arena. Allocations stay valid
// and address-stable until Free, which releases everything at once. An Arena
// is not safe for concurrent use and must be freed exactly once.
type Arena struct {
	raw *slab.Arena
}

// New allocates a fresh arena. Failure to produce one is not a recoverable
// condition: a program whose allocation substrate is gone cannot safely
// continue, so the process aborts rather than returning an error.
func New() *Arena {
	return &Arena{raw: slab.ArenaNew()}
}

// Raw returns the engine-managed arena handle.
func (a *Arena) Raw() *slab.Arena {
	return a.raw
}

// Alloc allocates size bytes on the arena. The contents are unspecified,
// never guaranteed zero. align must be no coarser than MallocAlign. On true
// allocation failure the process aborts; Alloc never returns nil storage.
func (a *Arena) Alloc(size, align int) []byte {
	if align > MallocAlign {
		panic("arena: alignment coarser than MallocAlign requested")
	}
	p := slab.ArenaMalloc(a.raw, size)
	return unsafe.Slice((*byte)(p), size)
}

// Resize grows or shrinks a previous allocation. old must be exactly the
// slice returned by a prior Alloc or Resize on this arena. The old slice is
// zapped the instant this returns: reading or writing through it afterward
// is undefined behavior. The overlapping prefix of the old contents is
// preserved in the returned slice.
func (a *Arena) Resize(old []byte, newSize, align int) []byte {
	if align > MallocAlign {
		panic("arena: alignment coarser than MallocAlign requested")
	}
	if len(old) == 0 {
		// A zero-length allocation has no storage to carry over, so the
		// resize degenerates to a fresh allocation.
		return a.Alloc(newSize, align)
	}
	p := slab.ArenaRealloc(a.raw, unsafe.Pointer(&old[0]), len(old), newSize)
	return unsafe.Slice((*byte)(p), newSize)
}

// Free releases the entire arena in one bulk operation. Every pointer and
// handle derived from this arena is invalid afterward. Freeing twice is a
// programming error and panics.
func (a *Arena) Free() {
	slab.ArenaFree(a.raw)
}

// SerializedData is serialized message output whose bytes live in an arena
// that this value owns. Ownership is linear: pass SerializedData by move,
// never use two copies, and call Free on exactly one of them.
type SerializedData struct {
	arena *Arena
	data  []byte
}

// SerializedDataFromRawParts constructs SerializedData from its owning arena
// and a byte view.
//
// Unsafe preconditions the caller attests to: data was allocated by arena,
// and nothing mutates data while the SerializedData exists.
func SerializedDataFromRawParts(arena *Arena, data []byte) SerializedData {
	return SerializedData{arena: arena, data: data}
}

// Bytes returns the serialized bytes as an immutable view. The view is only
// valid until Free.
func (s *SerializedData) Bytes() []byte {
	return s.data
}

// Len returns the byte length of the serialized data.
func (s *SerializedData) Len() int {
	return len(s.data)
}

// Free releases the owned arena, and with it the bytes. Exactly-once: a
// second Free panics via the arena's own double-free check.
func (s *SerializedData) Free() {
	s.arena.Free()
	s.data = nil
}
