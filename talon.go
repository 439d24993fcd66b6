// Package talon is the memory-ownership and field-access runtime that sits
// between generated message types and two interchangeable native
// serialization engines. Generated code links against exactly one of the two
// kernel packages:
//
//   - languages/go/kernel/arena: all message memory is carved from an
//     explicit Arena the caller owns and frees in bulk.
//   - languages/go/kernel/native: the engine allocates and frees message
//     memory itself; the Arena type is an API-symmetric placeholder.
//
// The two kernels expose the same handle surface (scalar/bytes mutators,
// repeated field handles, map handles) so generated accessors are written
// once. Memory safety rests on the aliasing contract documented on each
// kernel's MutatorMessageRef: at most one live mutator per field, and no
// mutator live concurrently with any handle in the same oneof group. The
// contract is enforced by API design only; there are no runtime checks on
// the access path, and violations are undefined behavior.
package talon

import (
	"github.com/bearlytools/talon/languages/go/field"
)

// FieldType represents the type of data that is held in a message field.
type FieldType = field.Type

const (
	FTUnknown = field.FTUnknown
	FTBool    = field.FTBool
	FTFloat32 = field.FTFloat32
	FTInt32   = field.FTInt32
	FTUint32  = field.FTUint32
	FTEnum    = field.FTEnum
	FTMessage = field.FTMessage
	FTFloat64 = field.FTFloat64
	FTInt64   = field.FTInt64
	FTUint64  = field.FTUint64
	FTString  = field.FTString
	FTBytes   = field.FTBytes
)
