package arena

import (
	"github.com/bearlytools/talon/internal/conversions"
	"github.com/bearlytools/talon/internal/slab"
	"github.com/bearlytools/talon/languages/go/mapping"
)

// MessageInner is the raw contents of every generated message on this
// kernel: the engine message handle plus the arena that owns its memory.
type MessageInner struct {
	Msg   *slab.Message
	Arena *Arena
}

// NewMessageInner creates a message with numFields field slots allocated
// from a fresh arena that the message owns.
func NewMessageInner(numFields int) MessageInner {
	a := New()
	return MessageInner{Msg: slab.MessageNew(a.Raw(), numFields), Arena: a}
}

// NewMessageInnerOf creates a message laid out per the mapping, one slot per
// descriptor entry.
func NewMessageInnerOf(m *mapping.Map) MessageInner {
	return NewMessageInner(len(m.Fields))
}

// SetOneofMember marks slot f present and clears the other members of f's
// oneof group. The mapping must be the one the message was laid out with.
func SetOneofMember(msgRef MutatorMessageRef, m *mapping.Map, f int) {
	for _, sib := range m.OneofSiblings(f) {
		slab.MessageClear(msgRef.msg, sib)
	}
	slab.MessageMarkSet(msgRef.msg, f)
}

// MutatorMessageRef is the capability a field mutator needs to reach into
// its message: the message handle and, because this engine requires explicit
// allocation for any by-value field write, the message's arena.
//
// Even though this type is freely copyable, it should only be copied by
// talon internals that can maintain the mutation invariants:
//
//   - No concurrent mutation of any two fields in a message from different
//     goroutines.
//   - If there are multiple live mutators into a single message at a time,
//     they must be for different fields, and not in the same oneof group. A
//     mutator must therefore never be duplicated while live; it may only be
//     narrowed, by deriving a shorter-lived mutator from exclusive access to
//     the original.
type MutatorMessageRef struct {
	msg   *slab.Message
	arena *Arena
}

// NewMutatorMessageRef builds the ref for one mutation call site. Sound
// construction requires exclusive access to the message, which is why this
// takes the inner by pointer.
func NewMutatorMessageRef(inner *MessageInner) MutatorMessageRef {
	return MutatorMessageRef{msg: inner.Msg, arena: inner.Arena}
}

// Msg returns the engine message handle.
func (r MutatorMessageRef) Msg() *slab.Message {
	return r.msg
}

// Arena returns the arena owning the message's memory.
func (r MutatorMessageRef) Arena() *Arena {
	return r.arena
}

// CopyBytesInArenaIfNeeded materializes val into memory owned by the
// message's arena and returns a view into that new allocation. This engine
// has no per-field string bookkeeping, so every assigned byte sequence must
// be copied in immediately; the returned view then lives exactly as long as
// the arena.
func CopyBytesInArenaIfNeeded(msgRef MutatorMessageRef, val []byte) []byte {
	newAlloc := msgRef.arena.Alloc(len(val), 1)
	copy(newAlloc, val)
	return newAlloc
}

// CopyStringInArenaIfNeeded is CopyBytesInArenaIfNeeded for string values.
// The returned string's storage is arena memory.
func CopyStringInArenaIfNeeded(msgRef MutatorMessageRef, val string) string {
	b := CopyBytesInArenaIfNeeded(msgRef, conversions.UnsafeGetBytes(val))
	return conversions.ByteSlice2String(b)
}
