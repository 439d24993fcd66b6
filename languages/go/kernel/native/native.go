// Package native is the engine-owned kernel: the memory-ownership surface
// that generated message code uses when talon runs over the engine that
// allocates and frees message memory itself. The Arena type here exists only
// to keep the two kernels API-symmetric; its allocation methods are
// unreachable in correct programs and fail loudly if reached.
//
// The handle types uphold memory safety only under the mutation invariants
// documented on MutatorMessageRef. Violating those invariants is undefined
// behavior, not a catchable error. THIS PACKAGE IS PUBLIC ONLY OUT OF
// NECESSITY: it is the boundary between generated code and the native
// engine, not an API for humans.
package native

// Arena is an API-symmetric husk. Messages on this kernel are allocated and
// freed by the engine, never through this type.
type Arena struct{}

// New returns the placeholder arena.
func New() *Arena {
	return &Arena{}
}

// Alloc must never be called on this kernel. It panics immediately rather
// than silently producing memory the engine does not track.
func (a *Arena) Alloc(size, align int) []byte {
	panic("native: Alloc called on the engine-owned kernel's placeholder arena")
}

// Resize must never be called on this kernel. It panics immediately rather
// than silently producing memory the engine does not track.
func (a *Arena) Resize(old []byte, newSize, align int) []byte {
	panic("native: Resize called on the engine-owned kernel's placeholder arena")
}

// Free is a no-op. Teardown of message memory is driven by the messages
// themselves on this kernel.
func (a *Arena) Free() {}

// SerializedData is serialized message output that owns its bytes through
// the engine's allocator. Ownership is linear: pass SerializedData by move,
// never use two copies, and call Free on exactly one of them.
type SerializedData struct {
	data []byte
	live bool
}

// SerializedDataFromRawParts constructs owned serialized data from a byte
// buffer.
//
// Unsafe preconditions the caller attests to: data is exclusively owned by
// the new value, and nothing mutates it while the SerializedData exists.
func SerializedDataFromRawParts(data []byte) SerializedData {
	return SerializedData{data: data, live: true}
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

// Free releases the owned bytes back to the engine exactly once. A second
// Free is a programming error and panics.
func (s *SerializedData) Free() {
	if !s.live {
		panic("native: SerializedData freed twice")
	}
	s.live = false
	s.data = nil
}
