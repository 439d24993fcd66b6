// Package field details the field value types understood by both talon kernels.
package field

//go:generate stringer -type=Type -linecomment

// Type represents the type of data held in a message field. The numeric
// values are part of the kernel entry point contract: both native engines
// key their array and map entry points on these exact tags, so they must
// never be renumbered.
type Type uint8

const (
	FTUnknown Type = 0  // Unknown
	FTBool    Type = 1  // bool
	FTFloat32 Type = 2  // float32
	FTInt32   Type = 3  // int32
	FTUint32  Type = 4  // uint32
	FTEnum    Type = 5  // enum
	FTMessage Type = 6  // message
	FTFloat64 Type = 7  // float64
	FTInt64   Type = 8  // int64
	FTUint64  Type = 9  // uint64
	FTString  Type = 10 // string
	FTBytes   Type = 11 // bytes
)

// ScalarTypes is the closed set of fixed-width scalar types. These are the
// only types a repeated field handle or scalar map handle can be
// instantiated with.
var ScalarTypes = []Type{
	FTBool,
	FTFloat32,
	FTInt32,
	FTUint32,
	FTFloat64,
	FTInt64,
	FTUint64,
}

// MapKeyTypes is the subset of ScalarTypes that may key a scalar map.
// Floats are excluded because NaN breaks key equality.
var MapKeyTypes = []Type{
	FTBool,
	FTInt32,
	FTUint32,
	FTInt64,
	FTUint64,
}

// IsScalar determines if a Type is in the fixed-width scalar set.
func IsScalar(ft Type) bool {
	switch ft {
	case FTBool, FTFloat32, FTInt32, FTUint32, FTFloat64, FTInt64, FTUint64:
		return true
	}
	return false
}

// IsMapKey determines if a Type may be used as a scalar map key.
func IsMapKey(ft Type) bool {
	switch ft {
	case FTBool, FTInt32, FTUint32, FTInt64, FTUint64:
		return true
	}
	return false
}

// Size returns the storage size in bytes of a fixed-width scalar type.
// It panics for non-scalar types, as those never reach element storage.
func Size(ft Type) int {
	switch ft {
	case FTBool:
		return 1
	case FTFloat32, FTInt32, FTUint32, FTEnum:
		return 4
	case FTFloat64, FTInt64, FTUint64:
		return 8
	}
	panic("field.Size() called with non-scalar type " + ft.String())
}

// TypeToString returns the type as a string WITHOUT the leading "FT".
func TypeToString(t Type) string {
	return t.String()
}
