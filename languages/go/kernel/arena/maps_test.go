package arena

import (
	"testing"
)

func TestMap(t *testing.T) {
	a := New()
	defer a.Free()

	m := NewMap[int32, int32](a)
	if !m.IsEmpty() {
		t.Fatalf("TestMap(fresh): got non-empty, want empty")
	}

	if !m.Insert(4, 5) {
		t.Fatalf("TestMap(fresh insert): got false, want true")
	}
	// Overwriting an existing key also reports success.
	if !m.Insert(4, 9) {
		t.Fatalf("TestMap(overwrite): got false, want true")
	}
	if got := m.Len(); got != 1 {
		t.Fatalf("TestMap(len): got %d, want 1", got)
	}
	if got, ok := m.Get(4); !ok || got != 9 {
		t.Fatalf("TestMap(get): got (%d, %v), want (9, true)", got, ok)
	}

	if got, ok := m.Remove(4); !ok || got != 9 {
		t.Fatalf("TestMap(first remove): got (%d, %v), want (9, true)", got, ok)
	}
	if got, ok := m.Remove(4); ok || got != 0 {
		t.Fatalf("TestMap(second remove): got (%d, %v), want (0, false)", got, ok)
	}
	if !m.IsEmpty() {
		t.Fatalf("TestMap(after removes): got non-empty, want empty")
	}
}

func TestMapNegativeKeys(t *testing.T) {
	a := New()
	defer a.Free()

	m := NewMap[int64, uint32](a)
	keys := []int64{-1000, -1, 0, 1, 1000}
	for i, k := range keys {
		m.Insert(k, uint32(i))
	}

	for i, k := range keys {
		if got, ok := m.Get(k); !ok || got != uint32(i) {
			t.Fatalf("TestMapNegativeKeys(key %d): got (%d, %v), want (%d, true)", k, got, ok, i)
		}
	}
	if got, ok := m.Get(-999); ok || got != 0 {
		t.Fatalf("TestMapNegativeKeys(absent key): got (%d, %v), want (0, false)", got, ok)
	}
}

func TestMapClear(t *testing.T) {
	a := New()
	defer a.Free()

	m := NewMap[uint64, float64](a)
	for i := uint64(0); i < 10; i++ {
		m.Insert(i, float64(i)/2)
	}
	m.Clear()

	if got := m.Len(); got != 0 {
		t.Fatalf("TestMapClear(len): got %d, want 0", got)
	}
	if !m.Insert(3, 1.5) {
		t.Fatalf("TestMapClear(insert after clear): got false, want true")
	}
	if got, ok := m.Get(3); !ok || got != 1.5 {
		t.Fatalf("TestMapClear(get after clear): got (%v, %v), want (1.5, true)", got, ok)
	}
}

func TestMapViewAndBorrow(t *testing.T) {
	a := New()
	defer a.Free()

	m := NewMap[uint32, int64](a)
	v := m.AsView()

	b := m.Borrow()
	b.Insert(7, -70)

	if got := v.Len(); got != 1 {
		t.Fatalf("TestMapViewAndBorrow(view len): got %d, want 1", got)
	}
	if got, ok := v.Get(7); !ok || got != -70 {
		t.Fatalf("TestMapViewAndBorrow(view get): got (%d, %v), want (-70, true)", got, ok)
	}
}
