// Package heap implements the engine-owned native engine. Containers and
// message blocks live on the Go heap and the engine alone manages their
// lifetime; callers hold opaque handles and never see an arena. The exported
// functions are the engine's entry point set: the kernel layer treats their
// contracts as trusted preconditions and never re-validates them.
package heap

import (
	"github.com/bearlytools/talon/languages/go/field"
	"github.com/bearlytools/talon/languages/go/value"
)

// Repeated is the engine's growable element storage for a repeated field.
// Elements are stored as packed scalar bits; the tag records which scalar
// representation is active.
type Repeated struct {
	tag  field.Type
	vals []uint64
}

// RepeatedNew creates an empty repeated container owned by the engine.
func RepeatedNew(tag field.Type) *Repeated {
	return &Repeated{tag: tag}
}

// RepeatedFree releases the container's storage. The handle must not be
// used afterward.
func RepeatedFree(r *Repeated) {
	r.vals = nil
}

// RepeatedSize returns the number of elements in use.
func RepeatedSize(r *Repeated) int {
	return len(r.vals)
}

// RepeatedGet returns element i. i must be < RepeatedSize(r); the kernel
// layer performs the bounds decision, not the engine.
func RepeatedGet(r *Repeated, i int) value.Value {
	return value.Value{Bits: r.vals[i]}
}

// RepeatedSet overwrites element i in place. Same precondition as
// RepeatedGet.
func RepeatedSet(r *Repeated, i int, v value.Value) {
	r.vals[i] = v.Bits
}

// RepeatedAppend appends v. The engine grows its own storage.
func RepeatedAppend(r *Repeated, v value.Value) {
	r.vals = append(r.vals, v.Bits)
}

// RepeatedCopy replaces dst's contents with src's. dst and src must have the
// same element tag and must not be the same container.
func RepeatedCopy(dst, src *Repeated) {
	if cap(dst.vals) < len(src.vals) {
		dst.vals = make([]uint64, len(src.vals))
	} else {
		dst.vals = dst.vals[:len(src.vals)]
	}
	copy(dst.vals, src.vals)
}

// Map is the engine's scalar map storage, an engine-owned Go map keyed by
// packed key bits.
type Map struct {
	ktag    field.Type
	vtag    field.Type
	entries map[uint64]uint64
}

// MapNew creates an empty map owned by the engine.
func MapNew(keyTag, valTag field.Type) *Map {
	return &Map{ktag: keyTag, vtag: valTag, entries: map[uint64]uint64{}}
}

// MapFree releases the map's storage. The handle must not be used afterward.
func MapFree(m *Map) {
	m.entries = nil
}

// MapSize returns the number of entries.
func MapSize(m *Map) int {
	return len(m.entries)
}

// MapGet looks up key and writes the stored value into out if present. It
// never allocates.
func MapGet(m *Map, key value.Value, out *value.Value) bool {
	bits, ok := m.entries[key.Bits]
	if !ok {
		return false
	}
	out.Bits = bits
	return true
}

// MapSet inserts or overwrites an entry. It reports success, which for an
// engine-owned map is always true.
func MapSet(m *Map, key, val value.Value) bool {
	m.entries[key.Bits] = val.Bits
	return true
}

// MapDelete removes key, writing the removed value into out if the key was
// present. It never allocates.
func MapDelete(m *Map, key value.Value, out *value.Value) bool {
	bits, ok := m.entries[key.Bits]
	if !ok {
		return false
	}
	out.Bits = bits
	delete(m.entries, key.Bits)
	return true
}

// MapClear removes every entry but keeps the map alive.
func MapClear(m *Map) {
	clear(m.entries)
}
