// Package conversions is a set of unsafe conversions from one type to
// another, such as viewing a string's storage as []byte without a copy.
// These exist because the kernels move payload bytes across an ownership
// boundary where an extra copy per call would defeat the layer's purpose.
package conversions

import "unsafe"

// ByteSlice2String converts bs to a string. It is no longer safe to modify
// bs after this. This prevents having to make a copy of bs.
func ByteSlice2String(bs []byte) string {
	if len(bs) == 0 {
		return ""
	}
	return unsafe.String(&bs[0], len(bs))
}

// UnsafeGetBytes retrieves the underlying []byte held in string "s" without
// doing a copy. Do not modify the []byte or suffer the consequences.
func UnsafeGetBytes(s string) []byte {
	if s == "" {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// Slice views n bytes starting at p as a []byte. p must point at storage
// valid for n bytes; the returned slice aliases that storage.
func Slice(p unsafe.Pointer, n int) []byte {
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(p), n)
}
