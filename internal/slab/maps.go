package slab

import (
	"github.com/bearlytools/talon/languages/go/field"
	"github.com/bearlytools/talon/languages/go/value"
)

// Map is the engine's scalar map storage: two parallel arena arrays, keys
// kept sorted so lookups are a binary search and iteration order is
// deterministic. Keys and values are fixed-width scalars only.
type Map struct {
	keys *Array
	vals *Array
	ktag field.Type
}

// MapNew creates an empty map whose storage will be carved from a.
func MapNew(a *Arena, keyTag, valTag field.Type) *Map {
	return &Map{
		keys: ArrayNew(a, keyTag),
		vals: ArrayNew(a, valTag),
		ktag: keyTag,
	}
}

// MapSize returns the number of entries.
func MapSize(m *Map) int {
	return m.keys.len
}

// MapGet looks up key and writes the stored value into out if present. It
// never allocates.
func MapGet(m *Map, key value.Value, out *value.Value) bool {
	i, found := m.search(key.Bits)
	if !found {
		return false
	}
	out.Bits = m.vals.load(i)
	return true
}

// MapSet inserts or overwrites an entry, growing storage from a if needed.
// It reports success; with an arena attached, growth cannot fail short of
// the process aborting, so this returns true for both fresh inserts and
// overwrites.
func MapSet(m *Map, key, val value.Value, a *Arena) bool {
	i, found := m.search(key.Bits)
	if found {
		m.vals.store(i, val.Bits)
		return true
	}

	// Insert at i, shifting the tail of both arrays up one slot.
	n := m.keys.len
	ArrayResize(m.keys, n+1, a)
	ArrayResize(m.vals, n+1, a)
	copy(m.keys.data[(i+1)*m.keys.elem:], m.keys.data[i*m.keys.elem:n*m.keys.elem])
	copy(m.vals.data[(i+1)*m.vals.elem:], m.vals.data[i*m.vals.elem:n*m.vals.elem])
	m.keys.store(i, key.Bits)
	m.vals.store(i, val.Bits)
	return true
}

// MapDelete removes key, writing the removed value into out if the key was
// present. It never allocates.
func MapDelete(m *Map, key value.Value, out *value.Value) bool {
	i, found := m.search(key.Bits)
	if !found {
		return false
	}
	out.Bits = m.vals.load(i)

	n := m.keys.len
	copy(m.keys.data[i*m.keys.elem:], m.keys.data[(i+1)*m.keys.elem:n*m.keys.elem])
	copy(m.vals.data[i*m.vals.elem:], m.vals.data[(i+1)*m.vals.elem:n*m.vals.elem])
	m.keys.len = n - 1
	m.vals.len = n - 1
	return true
}

// MapClear removes every entry. Storage is kept for reuse; it belongs to the
// arena either way.
func MapClear(m *Map) {
	m.keys.len = 0
	m.vals.len = 0
}

// search binary-searches for the key bits, returning the index where the key
// is or would be inserted, and whether it was found.
func (m *Map) search(bits uint64) (int, bool) {
	lo, hi := 0, m.keys.len
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		c := value.CompareKeyBits(m.ktag, m.keys.load(mid), bits)
		switch {
		case c < 0:
			lo = mid + 1
		case c > 0:
			hi = mid
		default:
			return mid, true
		}
	}
	return lo, false
}
