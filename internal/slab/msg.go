package slab

import (
	"github.com/bearlytools/talon/internal/binary"
	"github.com/bearlytools/talon/internal/conversions"
	"github.com/bearlytools/talon/languages/go/value"
)

// Message is the engine's per-message field slot block. Scalar storage and
// the presence bitmap are carved from the message's arena; container handles
// (arrays, maps, nested messages, bytes views) are Go references because
// arena memory must never hold pointers the garbage collector cannot see.
type Message struct {
	scalars []byte // 8 bytes per field; arena memory
	present []byte // 1 bit per field; arena memory
	objs    []any  // *Array, *Map, *Message or []byte per field
}

// MessageNew creates a message block with numFields field slots, all absent.
func MessageNew(a *Arena, numFields int) *Message {
	scalarBytes := numFields * 8
	bitmapBytes := (numFields + 7) / 8

	p := ArenaMalloc(a, scalarBytes+bitmapBytes)
	block := conversions.Slice(p, scalarBytes+bitmapBytes)
	for i := range block {
		block[i] = 0
	}

	return &Message{
		scalars: block[:scalarBytes],
		present: block[scalarBytes:],
		objs:    make([]any, numFields),
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
// slot reads as the zero value; the block is zeroed at creation and on clear.
func MessageGetScalar(m *Message, f int) value.Value {
	return value.Value{Bits: binary.Get[uint64](m.scalars[f*8 : f*8+8])}
}

// MessageSetBytes stores a bytes view in field slot f. The view must point
// into memory owned by this message's arena; the kernel's copy-in operation
// guarantees that.
func MessageSetBytes(m *Message, f int, b []byte) {
	m.objs[f] = b
	m.present[f/8] |= 1 << (f % 8)
}

// MessageGetBytes returns the bytes view of field slot f, or nil if absent.
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
