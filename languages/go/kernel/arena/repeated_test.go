package arena

import (
	"testing"
)

func TestRepeatedField(t *testing.T) {
	a := New()
	defer a.Free()

	f := NewRepeatedField[int32](a)
	if !f.IsEmpty() {
		t.Fatalf("TestRepeatedField(fresh): got non-empty, want empty")
	}

	f.Push(1)
	f.Push(2)
	f.Push(3)
	if got := f.Len(); got != 3 {
		t.Fatalf("TestRepeatedField(len): got %d, want 3", got)
	}
	if got, ok := f.Get(1); !ok || got != 2 {
		t.Fatalf("TestRepeatedField(get 1): got (%d, %v), want (2, true)", got, ok)
	}

	f.Set(1, 9)
	if got, ok := f.Get(1); !ok || got != 9 {
		t.Fatalf("TestRepeatedField(get after set): got (%d, %v), want (9, true)", got, ok)
	}

	// Out-of-range accesses are tolerated, not faults.
	if got, ok := f.Get(5); ok || got != 0 {
		t.Fatalf("TestRepeatedField(get 5): got (%d, %v), want (0, false)", got, ok)
	}
	f.Set(5, 99)
	if got := f.Len(); got != 3 {
		t.Fatalf("TestRepeatedField(len after oob set): got %d, want 3", got)
	}
}

func TestRepeatedFieldGrowth(t *testing.T) {
	a := New()
	defer a.Free()

	f := NewRepeatedField[uint64](a)
	const n = 2048
	for i := 0; i < n; i++ {
		f.Push(uint64(i))
	}
	if got := f.Len(); got != n {
		t.Fatalf("TestRepeatedFieldGrowth(len): got %d, want %d", got, n)
	}
	for i := 0; i < n; i++ {
		if got, ok := f.Get(i); !ok || got != uint64(i) {
			t.Fatalf("TestRepeatedFieldGrowth(elem %d): got (%d, %v), want (%d, true)", i, got, ok, i)
		}
	}
}

func TestRepeatedFieldCopyFrom(t *testing.T) {
	a := New()
	defer a.Free()

	src := NewRepeatedField[float64](a)
	for _, v := range []float64{1.5, -2.0, 3.25} {
		src.Push(v)
	}

	dst := NewRepeatedField[float64](a)
	dst.Push(100)
	dst.CopyFrom(src.AsView())

	if got, want := dst.Len(), src.Len(); got != want {
		t.Fatalf("TestRepeatedFieldCopyFrom(len): got %d, want %d", got, want)
	}
	for i := 0; i < src.Len(); i++ {
		got, _ := dst.Get(i)
		want, _ := src.Get(i)
		if got != want {
			t.Fatalf("TestRepeatedFieldCopyFrom(elem %d): got %v, want %v", i, got, want)
		}
	}

	// The copy shares no storage with the source.
	dst.Set(0, -9)
	if got, _ := src.Get(0); got != 1.5 {
		t.Fatalf("TestRepeatedFieldCopyFrom(src after dst set): got %v, want 1.5", got)
	}
}

// routeKind is a defined type over int32, the shape a generated enum takes.
type routeKind int32

const (
	kindUnknown routeKind = 0
	kindStatic  routeKind = 1
	kindDynamic routeKind = 2
)

func TestRepeatedFieldDefinedElemType(t *testing.T) {
	a := New()
	defer a.Free()

	f := NewRepeatedField[routeKind](a)
	f.Push(kindStatic)
	f.Push(kindDynamic)

	if got := f.Len(); got != 2 {
		t.Fatalf("TestRepeatedFieldDefinedElemType(len): got %d, want 2", got)
	}
	if got, ok := f.Get(1); !ok || got != kindDynamic {
		t.Fatalf("TestRepeatedFieldDefinedElemType(get 1): got (%d, %v), want (%d, true)", got, ok, kindDynamic)
	}
	f.Set(0, kindUnknown)
	if got, _ := f.Get(0); got != kindUnknown {
		t.Fatalf("TestRepeatedFieldDefinedElemType(get after set): got %d, want %d", got, kindUnknown)
	}
}

func TestMapDefinedKeyType(t *testing.T) {
	a := New()
	defer a.Free()

	m := NewMap[routeKind, uint64](a)
	m.Insert(kindDynamic, 20)
	m.Insert(kindStatic, 10)

	if got, ok := m.Get(kindStatic); !ok || got != 10 {
		t.Fatalf("TestMapDefinedKeyType(get): got (%d, %v), want (10, true)", got, ok)
	}
	if got, ok := m.Remove(kindDynamic); !ok || got != 20 {
		t.Fatalf("TestMapDefinedKeyType(remove): got (%d, %v), want (20, true)", got, ok)
	}
}

func TestRepeatedViewAndBorrow(t *testing.T) {
	a := New()
	defer a.Free()

	f := NewRepeatedField[int64](a)
	f.Push(-7)

	// Views observe mutations made through the mutator they were derived
	// from; both name the same field slot.
	v := f.AsView()
	b := f.Borrow()
	b.Push(8)

	if got := v.Len(); got != 2 {
		t.Fatalf("TestRepeatedViewAndBorrow(view len): got %d, want 2", got)
	}
	if got, ok := v.Get(1); !ok || got != 8 {
		t.Fatalf("TestRepeatedViewAndBorrow(view get): got (%d, %v), want (8, true)", got, ok)
	}
}

func TestEmptyContainers(t *testing.T) {
	av := RepeatedViewOfInner[int32](EmptyArray())
	if !av.IsEmpty() {
		t.Fatalf("TestEmptyContainers(array): got non-empty, want empty")
	}
	if got, ok := av.Get(0); ok || got != 0 {
		t.Fatalf("TestEmptyContainers(array get): got (%d, %v), want (0, false)", got, ok)
	}

	mv := MapViewOfInner[int32, int32](EmptyMap())
	if !mv.IsEmpty() {
		t.Fatalf("TestEmptyContainers(map): got non-empty, want empty")
	}
	if got, ok := mv.Get(1); ok || got != 0 {
		t.Fatalf("TestEmptyContainers(map get): got (%d, %v), want (0, false)", got, ok)
	}

	// The same shared inner comes back every time.
	if EmptyArray().Raw != av.inner.Raw {
		t.Fatalf("TestEmptyContainers(array identity): got a different inner across calls")
	}
	if EmptyMap().Raw != mv.inner.Raw {
		t.Fatalf("TestEmptyContainers(map identity): got a different inner across calls")
	}
}
