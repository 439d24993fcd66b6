// Package value provides the tagged union value representation that both
// talon kernels speak across their entry point boundary. Every array and map
// entry point takes and returns a Value; the generic pack/unpack functions in
// this package are the only places that translate between Go scalar types and
// that union. There is one generic implementation over the closed scalar set
// instead of a hand-copied implementation per type.
package value

import (
	"cmp"
	"fmt"
	"reflect"
	"unsafe"

	"github.com/bearlytools/talon/languages/go/field"
)

// Scalar is the closed set of fixed-width scalar types that repeated field
// and map handles can be instantiated with. Defined types over these
// (generated enums and the like) are admitted and behave as their underlying
// type. This set cannot grow without extending both native engines.
type Scalar interface {
	~bool | ~int32 | ~uint32 | ~int64 | ~uint64 | ~float32 | ~float64
}

// MapKey is the subset of Scalar usable as a scalar map key. Floats are
// excluded because NaN breaks key equality.
type MapKey interface {
	~bool | ~int32 | ~uint32 | ~int64 | ~uint64
}

// Value is the union representation of a single element or map entry as it
// crosses a kernel entry point. Fixed-width scalars are packed into Bits.
// String and bytes values use Data. Only one of the two is ever meaningful
// for a given field type; the entry point's tag decides which.
type Value struct {
	// Bits holds a packed scalar. The bit pattern for a type is its raw
	// storage representation zero-extended to 64 bits.
	Bits uint64
	// Data holds string/bytes payloads. It is a borrow, not a copy.
	Data []byte
}

// Pack packs a scalar into a Value. Dispatch is on storage width, not on the
// exact Go type, so defined types pack identically to their underlying type.
func Pack[T Scalar](v T) Value {
	switch unsafe.Sizeof(v) {
	case 1:
		return Value{Bits: uint64(*(*uint8)(unsafe.Pointer(&v)))}
	case 4:
		return Value{Bits: uint64(*(*uint32)(unsafe.Pointer(&v)))}
	}
	return Value{Bits: *(*uint64)(unsafe.Pointer(&v))}
}

// Unpack unpacks a scalar from a Value. The Value's active representation
// must match T's width; the entry point that produced the Value guarantees
// this.
func Unpack[T Scalar](v Value) T {
	var r T
	switch unsafe.Sizeof(r) {
	case 1:
		*(*uint8)(unsafe.Pointer(&r)) = uint8(v.Bits)
	case 4:
		*(*uint32)(unsafe.Pointer(&r)) = uint32(v.Bits)
	default:
		*(*uint64)(unsafe.Pointer(&r)) = v.Bits
	}
	return r
}

// PackBytes wraps a byte slice in a Value without copying.
func PackBytes(b []byte) Value {
	return Value{Data: b}
}

// TypeOf reports the field type tag for T. This is how a generic handle
// tells an entry point which element representation it is operating on.
// Defined types report the tag of their underlying type: the engines store
// representations, not Go types.
func TypeOf[T Scalar]() field.Type {
	var r T
	switch any(r).(type) {
	case bool:
		return field.FTBool
	case int32:
		return field.FTInt32
	case uint32:
		return field.FTUint32
	case int64:
		return field.FTInt64
	case uint64:
		return field.FTUint64
	case float32:
		return field.FTFloat32
	case float64:
		return field.FTFloat64
	}
	// Defined types fall through the exact-type switch; dispatch on the
	// underlying kind. Handle construction is not a hot path.
	switch reflect.TypeOf(r).Kind() {
	case reflect.Bool:
		return field.FTBool
	case reflect.Int32:
		return field.FTInt32
	case reflect.Uint32:
		return field.FTUint32
	case reflect.Int64:
		return field.FTInt64
	case reflect.Uint64:
		return field.FTUint64
	case reflect.Float32:
		return field.FTFloat32
	case reflect.Float64:
		return field.FTFloat64
	}
	panic(fmt.Sprintf("unsupported type that passed the type constraint %T", r))
}

// Zero returns the designated zero value for T. The engines use it to seed
// out-parameters when probing for presence so that a miss never leaks
// uninitialized data.
func Zero[T Scalar]() T {
	var z T
	return z
}

// CompareKeyBits orders two packed map keys under the key tag's value
// semantics. Signed tags must not be compared as raw bits or negative keys
// sort last. The arena engine keeps its map keys ordered by this function.
func CompareKeyBits(tag field.Type, a, b uint64) int {
	switch tag {
	case field.FTInt32:
		return cmp.Compare(int32(uint32(a)), int32(uint32(b)))
	case field.FTInt64:
		return cmp.Compare(int64(a), int64(b))
	}
	// Bool, Uint32 and Uint64 order correctly as raw bits.
	return cmp.Compare(a, b)
}

// CompareKeys orders two map keys; bool orders false before true.
func CompareKeys[K MapKey](a, b K) int {
	return CompareKeyBits(TypeOf[K](), Pack(a).Bits, Pack(b).Bits)
}
