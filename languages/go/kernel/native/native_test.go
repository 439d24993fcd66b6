package native

import (
	"bytes"
	"testing"
)

func TestPlaceholderArena(t *testing.T) {
	a := New()
	a.Free() // no-op, any number of times
	a.Free()

	defer func() {
		if recover() == nil {
			t.Fatalf("TestPlaceholderArena(alloc): got no panic, want panic")
		}
	}()
	a.Alloc(8, 8)
}

func TestPlaceholderArenaResizePanics(t *testing.T) {
	a := New()

	defer func() {
		if recover() == nil {
			t.Fatalf("TestPlaceholderArenaResizePanics: got no panic, want panic")
		}
	}()
	a.Resize(nil, 8, 8)
}

func TestSerializedData(t *testing.T) {
	payload := []byte{0x0A, 0x03, 'f', 'o', 'o'}
	sd := SerializedDataFromRawParts(payload)

	if got := sd.Len(); got != len(payload) {
		t.Fatalf("TestSerializedData(len): got %d, want %d", got, len(payload))
	}
	if !bytes.Equal(sd.Bytes(), payload) {
		t.Fatalf("TestSerializedData(bytes): got %v, want %v", sd.Bytes(), payload)
	}

	sd.Free()

	defer func() {
		if recover() == nil {
			t.Fatalf("TestSerializedData(double free): got no panic, want panic")
		}
	}()
	sd.Free()
}
