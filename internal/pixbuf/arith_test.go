package pixbuf

import (
	"errors"
	"testing"

	"github.com/ironsheep/pixbuf-mcp/internal/testutil"
)

func TestAddScalarThenNorm2(t *testing.T) {
	b := NewFilled[int32](10, 4, 4, 1)
	b.AddScalar(5)
	for i, v := range b.Data() {
		if v != 15 {
			t.Fatalf("element %d = %d, want 15", i, v)
		}
	}
	testutil.RequireNearlyEqual(t, b.Norm2(), 3600, 0)
}

func TestBinaryArithmetic(t *testing.T) {
	a, _ := FromSlice([]uint8{1, 2, 3, 4}, 2, 2, 1)
	b, _ := FromSlice([]float32{0.5, -1, 2, 0}, 2, 2, 1)

	tests := []struct {
		name string
		op   func(r *Float64) error
		want []float64
	}{
		{"Add", func(r *Float64) error { return Add(r, a, b) }, []float64{1.5, 1, 5, 4}},
		{"Subtract", func(r *Float64) error { return Subtract(r, a, b) }, []float64{0.5, 3, 1, 4}},
		{"Multiply", func(r *Float64) error { return Multiply(r, a, b) }, []float64{0.5, -2, 6, 0}},
		{"AddScaled", func(r *Float64) error { return AddScaled(r, a, b, 2) }, []float64{2, 0, 7, 4}},
		{"Multiply3", func(r *Float64) error { return Multiply3(r, a, b, a) }, []float64{0.5, -4, 18, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Float64{}
			if err := tt.op(r); err != nil {
				t.Fatalf("%s failed: %v", tt.name, err)
			}
			testutil.RequireSliceNearlyEqual(t, r.Data(), tt.want, 1e-12)
		})
	}
}

func TestArithmeticMismatchLeavesReceiver(t *testing.T) {
	a := NewFilled[uint8](1, 2, 2, 1)
	b := NewFilled[uint8](1, 2, 2, 3)

	tests := []struct {
		name string
		op   func(r *Int16) error
	}{
		{"Add", func(r *Int16) error { return Add(r, a, b) }},
		{"Subtract", func(r *Int16) error { return Subtract(r, a, b) }},
		{"Multiply", func(r *Int16) error { return Multiply(r, a, b) }},
		{"AddScaled", func(r *Int16) error { return AddScaled(r, a, b, 1) }},
		{"Multiply3", func(r *Int16) error { return Multiply3(r, a, a, b) }},
		{"MultiplyWith", func(r *Int16) error { return MultiplyWith(r, b) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewFilled[int16](-7, 2, 2, 1)
			if err := tt.op(r); !errors.Is(err, ErrShapeMismatch) {
				t.Fatalf("got %v, want ErrShapeMismatch", err)
			}
			if !r.Matches(Shape{2, 2, 1}) {
				t.Fatalf("receiver reshaped to %v", r.Shape())
			}
			for _, v := range r.Data() {
				if v != -7 {
					t.Fatalf("receiver modified: %v", r.Data())
				}
			}
		})
	}
}

func TestMultiplyWith(t *testing.T) {
	r, _ := FromSlice([]int16{2, -3, 4}, 3, 1, 1)
	a, _ := FromSlice([]float64{0.5, 2, -1}, 3, 1, 1)
	if err := MultiplyWith(r, a); err != nil {
		t.Fatalf("MultiplyWith failed: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, testutil.Float64s(r.Data()), []float64{1, -6, -4}, 0)
}

func TestAccumulate(t *testing.T) {
	r := NewFilled[float64](1, 2, 1, 1)
	a, _ := FromSlice([]uint8{10, 20, 30}, 3, 1, 1)
	Accumulate(r, a, 0.5)
	testutil.RequireSliceNearlyEqual(t, r.Data(), []float64{6, 11}, 0)
}

func TestAccumulateShortOperandPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected index panic")
		}
	}()
	Accumulate(New[float64](3, 1, 1), New[float64](2, 1, 1), 1)
}

func TestMultiplyScalar(t *testing.T) {
	b, _ := FromSlice([]uint8{10, 20, 25}, 3, 1, 1)
	b.MultiplyScalar(0.5)
	testutil.RequireSliceNearlyEqual(t, testutil.Float64s(b.Data()), []float64{5, 10, 12}, 0)
}

func TestInnerProduct(t *testing.T) {
	a, _ := FromSlice([]int16{1, 2, 3}, 3, 1, 1)
	b, _ := FromSlice([]float32{4, 5, 6, 100}, 4, 1, 1)
	testutil.RequireNearlyEqual(t, InnerProduct(a, b), 32, 0)
	testutil.RequireNearlyEqual(t, InnerProduct(a, a), a.Norm2(), 0)
}

func TestNormalize(t *testing.T) {
	u, _ := FromSlice([]uint8{10, 20, 30}, 3, 1, 1)
	du := &Byte{}
	u.Normalize(du)
	testutil.RequireSliceNearlyEqual(t, testutil.Float64s(du.Data()), []float64{0, 127, 255}, 0)

	f, _ := FromSlice([]float64{-2, 0, 6}, 3, 1, 1)
	f.Normalize(f)
	testutil.RequireSliceNearlyEqual(t, f.Data(), []float64{0, 0.25, 1}, 1e-12)
}

func TestNormalizeConstantUnchanged(t *testing.T) {
	b := NewFilled[float32](0.3, 3, 3, 2)
	b.Normalize(b)
	for _, v := range b.Data() {
		if v != 0.3 {
			t.Fatalf("constant buffer changed to %v", v)
		}
	}

	dst := NewFilled[float32](9, 3, 3, 2)
	b.Normalize(dst)
	for _, v := range dst.Data() {
		if v != 9 {
			t.Fatalf("constant source wrote %v into dst", v)
		}
	}

	empty := &Float32{}
	empty.Normalize(empty)
	if empty.Elements() != 0 {
		t.Error("empty buffer grew")
	}
}

func TestWideIntegerArithmeticIsExact(t *testing.T) {
	const big = 1<<53 + 1
	a, _ := FromSlice([]int64{big, 9007199254740993}, 2, 1, 1)
	b, _ := FromSlice([]int64{0, 2}, 2, 1, 1)

	tests := []struct {
		name string
		op   func(r *Buffer[int64]) error
		want []int64
	}{
		{"Add", func(r *Buffer[int64]) error { return Add(r, a, b) }, []int64{9007199254740993, 9007199254740995}},
		{"Subtract", func(r *Buffer[int64]) error { return Subtract(r, a, b) }, []int64{9007199254740993, 9007199254740991}},
		{"Multiply", func(r *Buffer[int64]) error { return Multiply(r, a, b) }, []int64{0, 18014398509481986}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Buffer[int64]{}
			if err := tt.op(r); err != nil {
				t.Fatalf("%s failed: %v", tt.name, err)
			}
			for i, v := range r.Data() {
				if v != tt.want[i] {
					t.Errorf("element %d = %d, want %d", i, v, tt.want[i])
				}
			}
		})
	}
}

func TestUnsignedSubtractWraps(t *testing.T) {
	a, _ := FromSlice([]uint8{3, 200, 0}, 3, 1, 1)
	b, _ := FromSlice([]uint8{5, 100, 1}, 3, 1, 1)
	r := &Byte{}
	if err := Subtract(r, a, b); err != nil {
		t.Fatalf("Subtract failed: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, testutil.Float64s(r.Data()), []float64{254, 100, 255}, 0)
}

func TestFloatOperandSaturatesIntegerReceiver(t *testing.T) {
	a, _ := FromSlice([]uint8{3, 200, 250}, 3, 1, 1)
	b, _ := FromSlice([]float32{5, 100, -10}, 3, 1, 1)
	r := &Byte{}
	if err := Subtract(r, a, b); err != nil {
		t.Fatalf("Subtract failed: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, testutil.Float64s(r.Data()), []float64{0, 100, 255}, 0)

	u, _ := FromSlice([]uint8{100, 200}, 2, 1, 1)
	u.MultiplyScalar(2)
	testutil.RequireSliceNearlyEqual(t, testutil.Float64s(u.Data()), []float64{200, 255}, 0)
}
