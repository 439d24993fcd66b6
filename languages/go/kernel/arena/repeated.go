package arena

import (
	"github.com/bearlytools/talon/internal/slab"
	"github.com/bearlytools/talon/languages/go/value"
)

// RepeatedFieldInner contains the engine array handle plus a reference to an
// Arena, most likely that of the containing message. This engine requires an
// arena to perform any growth operation on a repeated field.
//
// See the MutatorMessageRef comment for when this type may be copied.
type RepeatedFieldInner struct {
	Raw   *slab.Array
	Arena *Arena
}

// RepeatedView is the read-only capability over one repeated field slot of
// one message. Views are freely copyable; any number may be live at once.
type RepeatedView[T value.Scalar] struct {
	inner RepeatedFieldInner
}

// RepeatedViewOfInner wraps a raw inner in a typed view.
func RepeatedViewOfInner[T value.Scalar](inner RepeatedFieldInner) RepeatedView[T] {
	return RepeatedView[T]{inner: inner}
}

// Len returns the current element count.
func (v RepeatedView[T]) Len() int {
	return slab.ArraySize(v.inner.Raw)
}

// IsEmpty reports whether the field has no elements.
func (v RepeatedView[T]) IsEmpty() bool {
	return v.Len() == 0
}

// Get returns the element at index. An out-of-range index is not a fault:
// it reports absent, because callers independently track valid lengths and
// the accessor path stays branch-minimal.
func (v RepeatedView[T]) Get(index int) (T, bool) {
	if index < 0 || index >= v.Len() {
		var zero T
		return zero, false
	}
	return value.Unpack[T](slab.ArrayGet(v.inner.Raw, index)), true
}

// RepeatedField is the exclusive mutator capability over one repeated field
// slot of one message. At most one may be live per field at a time; it must
// never be duplicated while live, only narrowed with Borrow. See
// MutatorMessageRef for the full mutation invariants.
type RepeatedField[T value.Scalar] struct {
	inner RepeatedFieldInner
}

// NewRepeatedField creates a field whose storage is carved from a. Normal
// pathways obtain existing repeated fields from their containing message;
// this exists for tests and for the shared empty containers.
func NewRepeatedField[T value.Scalar](a *Arena) RepeatedField[T] {
	return RepeatedField[T]{inner: RepeatedFieldInner{
		Raw:   slab.ArrayNew(a.Raw(), value.TypeOf[T]()),
		Arena: a,
	}}
}

// RepeatedFieldOfInner wraps a raw inner in a typed mutator.
func RepeatedFieldOfInner[T value.Scalar](inner RepeatedFieldInner) RepeatedField[T] {
	return RepeatedField[T]{inner: inner}
}

// Inner returns the raw inner.
func (f *RepeatedField[T]) Inner() RepeatedFieldInner {
	return f.inner
}

// AsView narrows the mutator to a read-only view.
func (f *RepeatedField[T]) AsView() RepeatedView[T] {
	return RepeatedView[T]{inner: f.inner}
}

// Borrow reborrows the mutator: the returned mutator must go dead before f
// is used again. This is the only sanctioned way to hand the capability to
// a callee.
func (f *RepeatedField[T]) Borrow() RepeatedField[T] {
	return RepeatedField[T]{inner: f.inner}
}

// Len returns the current element count.
func (f *RepeatedField[T]) Len() int {
	return slab.ArraySize(f.inner.Raw)
}

// IsEmpty reports whether the field has no elements.
func (f *RepeatedField[T]) IsEmpty() bool {
	return f.Len() == 0
}

// Get returns the element at index, or absent if index is out of range.
func (f *RepeatedField[T]) Get(index int) (T, bool) {
	return f.AsView().Get(index)
}

// Set overwrites the element at index in place. An out-of-range index is
// silently ignored, mirroring Get's tolerance.
func (f *RepeatedField[T]) Set(index int, val T) {
	if index < 0 || index >= f.Len() {
		return
	}
	slab.ArraySet(f.inner.Raw, index, value.Pack(val))
}

// Push appends val. This can grow the backing store, which consumes arena
// memory and invalidates any raw data pointer previously taken into the
// array. Element values previously copied out are unaffected.
func (f *RepeatedField[T]) Push(val T) {
	slab.ArrayAppend(f.inner.Raw, value.Pack(val), f.inner.Arena.Raw())
}

// CopyFrom replaces this field's entire contents with a copy of src's: the
// backing store is resized to src.Len() and the element storage is copied
// in bulk. src must name a different field slot than f.
func (f *RepeatedField[T]) CopyFrom(src RepeatedView[T]) {
	slab.ArrayCopy(f.inner.Raw, src.inner.Raw, f.inner.Arena.Raw())
}
