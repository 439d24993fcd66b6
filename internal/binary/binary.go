// Package binary replaces the encoding/binary package in the standard library
// for little endian encoding using generics. The slab engine stores all
// element and key storage little endian so that bulk copies between arrays
// are plain memory moves.
package binary

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/exp/constraints"
)

var Enc = binary.LittleEndian

// Get gets any integer size from a []byte slice.
func Get[T constraints.Integer](b []byte) T {
	_ = b[len(b)-1] // bounds check hint to compiler; see golang.org/issue/14808

	var r T // This is only used for type detection.
	switch any(r).(type) {
	case int8:
		return T(int8(b[0]))
	case uint8:
		return T(b[0])
	case int32:
		return T(int32(binary.LittleEndian.Uint32(b)))
	case uint32:
		return T(binary.LittleEndian.Uint32(b))
	case int64:
		return T(int64(binary.LittleEndian.Uint64(b)))
	case uint64:
		return T(binary.LittleEndian.Uint64(b))
	}
	panic(fmt.Sprintf("unsupported type that passed the type constraint %T", r))
}

// Put puts any integer size into a []byte slice.
func Put[T constraints.Integer](b []byte, v T) {
	switch any(v).(type) {
	case int8, uint8:
		b[0] = byte(v)
		return
	case int32, uint32:
		binary.LittleEndian.PutUint32(b, uint32(v))
		return
	}
	binary.LittleEndian.PutUint64(b, uint64(v))
}
