package arena

import (
	"github.com/bearlytools/talon/internal/slab"
	"github.com/bearlytools/talon/languages/go/value"
)

// MapInner contains the engine map handle plus a reference to an Arena,
// most likely that of the containing message. Insertion can grow the map's
// internal storage, which requires the arena.
//
// See the MutatorMessageRef comment for when this type may be copied.
type MapInner struct {
	Raw   *slab.Map
	Arena *Arena
}

// MapView is the read-only capability over one map field slot of one
// message. Views are freely copyable; any number may be live at once.
type MapView[K value.MapKey, V value.Scalar] struct {
	inner MapInner
}

// MapViewOfInner wraps a raw inner in a typed view.
func MapViewOfInner[K value.MapKey, V value.Scalar](inner MapInner) MapView[K, V] {
	return MapView[K, V]{inner: inner}
}

// Len returns the number of entries.
func (v MapView[K, V]) Len() int {
	return slab.MapSize(v.inner.Raw)
}

// IsEmpty reports whether the map has no entries.
func (v MapView[K, V]) IsEmpty() bool {
	return v.Len() == 0
}

// Get returns the value stored under key, or absent. Get never allocates.
func (v MapView[K, V]) Get(key K) (V, bool) {
	out := value.Pack(value.Zero[V]())
	if !slab.MapGet(v.inner.Raw, value.Pack(key), &out) {
		var zero V
		return zero, false
	}
	return value.Unpack[V](out), true
}

// Map is the exclusive mutator capability over one map field slot of one
// message. At most one may be live per field at a time; it must never be
// duplicated while live, only narrowed with Borrow. See MutatorMessageRef
// for the full mutation invariants.
type Map[K value.MapKey, V value.Scalar] struct {
	inner MapInner
}

// NewMap creates a map whose storage is carved from a. Normal pathways
// obtain existing maps from their containing message; this exists for tests
// and for the shared empty containers.
func NewMap[K value.MapKey, V value.Scalar](a *Arena) Map[K, V] {
	return Map[K, V]{inner: MapInner{
		Raw:   slab.MapNew(a.Raw(), value.TypeOf[K](), value.TypeOf[V]()),
		Arena: a,
	}}
}

// MapOfInner wraps a raw inner in a typed mutator.
func MapOfInner[K value.MapKey, V value.Scalar](inner MapInner) Map[K, V] {
	return Map[K, V]{inner: inner}
}

// Inner returns the raw inner.
func (m *Map[K, V]) Inner() MapInner {
	return m.inner
}

// AsView narrows the mutator to a read-only view.
func (m *Map[K, V]) AsView() MapView[K, V] {
	return MapView[K, V]{inner: m.inner}
}

// Borrow reborrows the mutator: the returned mutator must go dead before m
// is used again.
func (m *Map[K, V]) Borrow() Map[K, V] {
	return Map[K, V]{inner: m.inner}
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return slab.MapSize(m.inner.Raw)
}

// IsEmpty reports whether the map has no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.Len() == 0
}

// Get returns the value stored under key, or absent.
func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.AsView().Get(key)
}

// Insert inserts or overwrites the entry for key. It reports success, which
// is true for fresh inserts and overwrites alike: growth draws from the
// arena, and arena exhaustion aborts the process rather than failing here.
func (m *Map[K, V]) Insert(key K, val V) bool {
	return slab.MapSet(m.inner.Raw, value.Pack(key), value.Pack(val), m.inner.Arena.Raw())
}

// Remove removes the entry for key, returning the prior value if one was
// present. Removing an absent key reports absent. Remove never allocates.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	out := value.Pack(value.Zero[V]())
	if !slab.MapDelete(m.inner.Raw, value.Pack(key), &out) {
		var zero V
		return zero, false
	}
	return value.Unpack[V](out), true
}

// Clear removes every entry.
func (m *Map[K, V]) Clear() {
	slab.MapClear(m.inner.Raw)
}
