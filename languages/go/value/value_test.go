package value

import (
	"math"
	"testing"

	"github.com/bearlytools/talon/languages/go/field"
)

func TestPackUnpack(t *testing.T) {
	if got := Unpack[bool](Pack(true)); got != true {
		t.Fatalf("TestPackUnpack(bool): got %v, want true", got)
	}
	if got := Unpack[int32](Pack(int32(-1))); got != -1 {
		t.Fatalf("TestPackUnpack(int32): got %d, want -1", got)
	}
	if got := Unpack[int64](Pack(int64(math.MinInt64))); got != math.MinInt64 {
		t.Fatalf("TestPackUnpack(int64): got %d, want %d", got, int64(math.MinInt64))
	}
	if got := Unpack[uint64](Pack(uint64(math.MaxUint64))); got != math.MaxUint64 {
		t.Fatalf("TestPackUnpack(uint64): got %d, want %d", got, uint64(math.MaxUint64))
	}
	if got := Unpack[float32](Pack(float32(-2.5))); got != -2.5 {
		t.Fatalf("TestPackUnpack(float32): got %v, want -2.5", got)
	}
	if got := Unpack[float64](Pack(1e300)); got != 1e300 {
		t.Fatalf("TestPackUnpack(float64): got %v, want 1e300", got)
	}
}

func TestPackNegativeInt32ZeroExtends(t *testing.T) {
	// A negative int32 must occupy only the low 32 bits so the packed form
	// matches its little-endian storage representation.
	v := Pack(int32(-1))
	if v.Bits != 0xFFFF_FFFF {
		t.Fatalf("TestPackNegativeInt32ZeroExtends: got bits %#x, want 0xffffffff", v.Bits)
	}
}

func TestPackFloatNaN(t *testing.T) {
	got := Unpack[float64](Pack(math.NaN()))
	if !math.IsNaN(got) {
		t.Fatalf("TestPackFloatNaN: got %v, want NaN", got)
	}
}

func TestTypeOf(t *testing.T) {
	tests := []struct {
		got  field.Type
		want field.Type
	}{
		{TypeOf[bool](), field.FTBool},
		{TypeOf[int32](), field.FTInt32},
		{TypeOf[uint32](), field.FTUint32},
		{TypeOf[int64](), field.FTInt64},
		{TypeOf[uint64](), field.FTUint64},
		{TypeOf[float32](), field.FTFloat32},
		{TypeOf[float64](), field.FTFloat64},
	}
	for _, test := range tests {
		if test.got != test.want {
			t.Fatalf("TestTypeOf: got %v, want %v", test.got, test.want)
		}
	}
}

// Defined types over the scalar set, the shape generated enums take.
type routeKind int32

type meters float64

func TestDefinedTypes(t *testing.T) {
	if got := Unpack[routeKind](Pack(routeKind(-3))); got != -3 {
		t.Fatalf("TestDefinedTypes(pack/unpack int32 kind): got %d, want -3", got)
	}
	if got := Unpack[meters](Pack(meters(2.5))); got != 2.5 {
		t.Fatalf("TestDefinedTypes(pack/unpack float64 kind): got %v, want 2.5", got)
	}
	if got := TypeOf[routeKind](); got != field.FTInt32 {
		t.Fatalf("TestDefinedTypes(type of int32 kind): got %v, want %v", got, field.FTInt32)
	}
	if got := TypeOf[meters](); got != field.FTFloat64 {
		t.Fatalf("TestDefinedTypes(type of float64 kind): got %v, want %v", got, field.FTFloat64)
	}
	if got := CompareKeys(routeKind(-1), routeKind(1)); got >= 0 {
		t.Fatalf("TestDefinedTypes(compare int32 kind): got %d, want < 0", got)
	}
	if got := Zero[routeKind](); got != 0 {
		t.Fatalf("TestDefinedTypes(zero): got %d, want 0", got)
	}
}

func TestCompareKeyBits(t *testing.T) {
	tests := []struct {
		desc string
		tag  field.Type
		a, b uint64
		want int
	}{
		{"int32 negative orders first", field.FTInt32, Pack(int32(-1)).Bits, Pack(int32(1)).Bits, -1},
		{"int64 negative orders first", field.FTInt64, Pack(int64(-1)).Bits, Pack(int64(1)).Bits, -1},
		{"uint64 raw bits", field.FTUint64, 2, 1, 1},
		{"bool false before true", field.FTBool, Pack(false).Bits, Pack(true).Bits, -1},
		{"equal keys", field.FTInt32, Pack(int32(7)).Bits, Pack(int32(7)).Bits, 0},
	}
	for _, test := range tests {
		if got := CompareKeyBits(test.tag, test.a, test.b); got != test.want {
			t.Fatalf("TestCompareKeyBits(%s): got %d, want %d", test.desc, got, test.want)
		}
	}
}

func TestCompareKeys(t *testing.T) {
	if got := CompareKeys(int32(-5), int32(3)); got >= 0 {
		t.Fatalf("TestCompareKeys(int32 -5 vs 3): got %d, want < 0", got)
	}
	if got := CompareKeys(uint64(math.MaxUint64), uint64(0)); got <= 0 {
		t.Fatalf("TestCompareKeys(uint64 max vs 0): got %d, want > 0", got)
	}
	if got := CompareKeys(false, true); got >= 0 {
		t.Fatalf("TestCompareKeys(false vs true): got %d, want < 0", got)
	}
	if got := CompareKeys(int64(7), int64(7)); got != 0 {
		t.Fatalf("TestCompareKeys(equal int64): got %d, want 0", got)
	}
}

func TestPackBytes(t *testing.T) {
	b := []byte("payload")
	v := PackBytes(b)
	if &v.Data[0] != &b[0] {
		t.Fatalf("TestPackBytes: got a copy, want a borrow of the input")
	}
}
