package heap

import (
	"github.com/bearlytools/talon/internal/binary"
	"github.com/bearlytools/talon/languages/go/value"
	"github.com/gostdlib/base/concurrency/sync"
	"github.com/gostdlib/base/context"
)

// Message is the engine's per-message field slot block. Unlike the slab
// engine there is no arena: the block is engine-owned heap memory that is
// recycled through a pool when the message is freed.
type Message struct {
	scalars []byte
	present []byte
	objs    []any
}

// msgPool recycles message blocks. Blocks are sized up on Get as needed and
// zeroed on Put, so a pooled block is indistinguishable from a fresh one.
var msgPool = sync.NewPool[*Message](
	context.Background(),
	"talon_heap_message_pool",
	func() *Message {
		return &Message{}
	},
)

// MessageNew returns a message block with numFields field slots, all absent.
func MessageNew(numFields int) *Message {
	m := msgPool.Get(context.Background())
	m.ensure(numFields)
	return m
}

// MessageFree releases the block back to the engine. The handle must not be
// used afterward. This is the engine-owned teardown path: the message frees
// its own storage, no arena is involved.
func MessageFree(m *Message) {
	m.reset()
	msgPool.Put(context.Background(), m)
}

// MessageFromZeroedBlock views block as a message whose every slot reads as
// absent/zero. The block must be zero filled and must never be written; the
// message built over it must never be passed to a mutator or to MessageFree.
func MessageFromZeroedBlock(block []byte) *Message {
	// 8 scalar bytes plus 1 presence bit per field; size the field count so
	// both regions fit in the block with room to spare.
	numFields := len(block) / 9
	scalarBytes := numFields * 8
	return &Message{
		scalars: block[:scalarBytes],
		present: block[scalarBytes:],
		objs:    make([]any, numFields),
	}
}

func (m *Message) ensure(numFields int) {
	scalarBytes := numFields * 8
	bitmapBytes := (numFields + 7) / 8
	if cap(m.scalars) < scalarBytes {
		m.scalars = make([]byte, scalarBytes)
	} else {
		m.scalars = m.scalars[:scalarBytes]
	}
	if cap(m.present) < bitmapBytes {
		m.present = make([]byte, bitmapBytes)
	} else {
		m.present = m.present[:bitmapBytes]
	}
	if cap(m.objs) < numFields {
		m.objs = make([]any, numFields)
	} else {
		m.objs = m.objs[:numFields]
	}
}

func (m *Message) reset() {
	for i := range m.scalars {
		m.scalars[i] = 0
	}
	for i := range m.present {
		m.present[i] = 0
	}
	for i := range m.objs {
		m.objs[i] = nil
	}
}

// MessageHas reports whether field slot f has been set.
func MessageHas(m *Message, f int) bool {
	return m.present[f/8]&(1<<(f%8)) != 0
}

// MessageClear marks field slot f absent and drops any handle it held.
func MessageClear(m *Message, f int) {
	m.present[f/8] &^= 1 << (f % 8)
	binary.Put(m.scalars[f*8:f*8+8], uint64(0))
	m.objs[f] = nil
}

// MessageMarkSet marks field slot f present without touching its storage.
func MessageMarkSet(m *Message, f int) {
	m.present[f/8] |= 1 << (f % 8)
}

// MessageSetScalar stores packed scalar bits in field slot f.
func MessageSetScalar(m *Message, f int, v value.Value) {
	binary.Put(m.scalars[f*8:f*8+8], v.Bits)
	m.present[f/8] |= 1 << (f % 8)
}

// MessageGetScalar loads the packed scalar bits of field slot f. An absent
// slot reads as the zero value.
func MessageGetScalar(m *Message, f int) value.Value {
	return value.Value{Bits: binary.Get[uint64](m.scalars[f*8 : f*8+8])}
}

// MessageSetBytes stores a bytes value in field slot f. The engine owns the
// message's variable-length storage, so the bytes are stored as given; the
// kernel's copy-in operation is an identity pass-through for this engine.
func MessageSetBytes(m *Message, f int, b []byte) {
	m.objs[f] = b
	m.present[f/8] |= 1 << (f % 8)
}

// MessageGetBytes returns the bytes value of field slot f, or nil if absent.
func MessageGetBytes(m *Message, f int) []byte {
	b, _ := m.objs[f].([]byte)
	return b
}

// MessageSetObj stores a container or nested message handle at field slot f.
func MessageSetObj(m *Message, f int, obj any) {
	m.objs[f] = obj
	m.present[f/8] |= 1 << (f % 8)
}

// MessageGetObj returns the handle at field slot f, or nil if absent.
func MessageGetObj(m *Message, f int) any {
	return m.objs[f]
}
