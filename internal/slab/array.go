package slab

import (
	"unsafe"

	"github.com/bearlytools/talon/internal/binary"
	"github.com/bearlytools/talon/internal/conversions"
	"github.com/bearlytools/talon/languages/go/field"
	"github.com/bearlytools/talon/languages/go/value"
)

// Array is the engine's growable element storage for a repeated field. The
// header lives on the Go heap, the element storage is carved from the arena
// that created the array. Elements are stored little endian at the fixed
// width of the element tag, so copying between two arrays of the same tag is
// a plain memory move.
type Array struct {
	data []byte // element storage; arena memory
	len  int    // elements in use
	cap  int    // elements data can hold
	tag  field.Type
	elem int // element size in bytes
}

// ArrayNew creates an empty array whose storage will be carved from a.
func ArrayNew(a *Arena, tag field.Type) *Array {
	return &Array{tag: tag, elem: field.Size(tag)}
}

// ArraySize returns the number of elements in use.
func ArraySize(arr *Array) int {
	return arr.len
}

// ArrayGet returns element i. i must be < ArraySize(arr); the kernel layer
// performs the bounds decision, not the engine.
func ArrayGet(arr *Array, i int) value.Value {
	return value.Value{Bits: arr.load(i)}
}

// ArraySet overwrites element i in place. Same precondition as ArrayGet.
func ArraySet(arr *Array, i int, v value.Value) {
	arr.store(i, v.Bits)
}

// ArrayAppend appends v, growing the storage from a if needed. Growth can
// relocate the element storage: any data pointer previously returned by
// ArrayDataPtr is invalidated.
func ArrayAppend(arr *Array, v value.Value, a *Arena) {
	if arr.len == arr.cap {
		arr.reserve(arr.len+1, a)
	}
	arr.len++
	arr.store(arr.len-1, v.Bits)
}

// ArrayResize sets the element count to n, growing storage from a if
// needed. Elements added by growth are zero filled so stale storage never
// leaks back out through ArrayGet.
func ArrayResize(arr *Array, n int, a *Arena) {
	if n > arr.cap {
		arr.reserve(n, a)
	}
	if n > arr.len {
		grown := arr.data[arr.len*arr.elem : n*arr.elem]
		for i := range grown {
			grown[i] = 0
		}
	}
	arr.len = n
}

// ArrayDataPtr returns the raw element storage pointer, valid until the next
// growth operation on arr or until the arena is freed, whichever is first.
func ArrayDataPtr(arr *Array) unsafe.Pointer {
	if len(arr.data) == 0 {
		return nil
	}
	return unsafe.Pointer(&arr.data[0])
}

// ArrayCopy replaces dst's contents with src's. dst and src must have the
// same element tag and must not be the same array.
func ArrayCopy(dst, src *Array, a *Arena) {
	ArrayResize(dst, src.len, a)
	copy(dst.data[:dst.len*dst.elem], src.data[:src.len*src.elem])
}

// reserve grows element storage to hold at least n elements.
func (arr *Array) reserve(n int, a *Arena) {
	newCap := arr.cap * 2
	if newCap < 4 {
		newCap = 4
	}
	if newCap < n {
		newCap = n
	}

	oldBytes := arr.cap * arr.elem
	newBytes := newCap * arr.elem
	var p unsafe.Pointer
	if oldBytes == 0 {
		p = ArenaMalloc(a, newBytes)
	} else {
		p = ArenaRealloc(a, unsafe.Pointer(&arr.data[0]), oldBytes, newBytes)
	}
	arr.data = conversions.Slice(p, newBytes)
	arr.cap = newCap
}

func (arr *Array) load(i int) uint64 {
	b := arr.data[i*arr.elem:]
	switch arr.elem {
	case 1:
		return uint64(binary.Get[uint8](b[:1]))
	case 4:
		return uint64(binary.Get[uint32](b[:4]))
	}
	return binary.Get[uint64](b[:8])
}

func (arr *Array) store(i int, bits uint64) {
	b := arr.data[i*arr.elem:]
	switch arr.elem {
	case 1:
		binary.Put(b[:1], uint8(bits))
	case 4:
		binary.Put(b[:4], uint32(bits))
	default:
		binary.Put(b[:8], bits)
	}
}
