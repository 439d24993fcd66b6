package native

import (
	"github.com/bearlytools/talon/internal/heap"
	"github.com/bearlytools/talon/languages/go/mapping"
)

// MessageInner is the raw contents of every generated message on this
// kernel. The engine manages the message's memory, so there is no arena to
// carry.
type MessageInner struct {
	Msg *heap.Message
}

// NewMessageInner creates a message with numFields field slots. The engine
// owns the block; free it with Free when the message is destroyed.
func NewMessageInner(numFields int) MessageInner {
	return MessageInner{Msg: heap.MessageNew(numFields)}
}

// Free returns the message block to the engine. The engine-owned teardown
// path: no arena is involved.
func (m *MessageInner) Free() {
	heap.MessageFree(m.Msg)
	m.Msg = nil
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
		heap.MessageClear(msgRef.msg, sib)
	}
	heap.MessageMarkSet(msgRef.msg, f)
}

// MutatorMessageRef is the capability a field mutator needs to reach into
// its message. The engine manages its own memory, so this is just the
// message handle; no arena reference is required.
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
	msg *heap.Message
}

// NewMutatorMessageRef builds the ref for one mutation call site. Sound
// construction requires exclusive access to the message, which is why this
// takes the inner by pointer.
func NewMutatorMessageRef(inner *MessageInner) MutatorMessageRef {
	return MutatorMessageRef{msg: inner.Msg}
}

// NewMutatorMessageRefRaw builds the ref directly from an engine handle.
func NewMutatorMessageRefRaw(msg *heap.Message) MutatorMessageRef {
	return MutatorMessageRef{msg: msg}
}

// Msg returns the engine message handle.
func (r MutatorMessageRef) Msg() *heap.Message {
	return r.msg
}

// CopyBytesInArenaIfNeeded is an identity pass-through on this kernel: the
// engine already owns and manages the message's variable-length storage, so
// there is nothing to copy in.
func CopyBytesInArenaIfNeeded(msgRef MutatorMessageRef, val []byte) []byte {
	return val
}

// CopyStringInArenaIfNeeded is the string form of the identity
// pass-through.
func CopyStringInArenaIfNeeded(msgRef MutatorMessageRef, val string) string {
	return val
}
