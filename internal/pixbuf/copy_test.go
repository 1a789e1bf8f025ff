package pixbuf

import "testing"

func TestCopyDoesNotAlias(t *testing.T) {
	src := NewFilled[uint8](5, 3, 2, 2)
	src.SetDerivative(true)
	dst := &Byte{}
	dst.Copy(src)

	src.Set(0, 0, 0, 200)
	if dst.At(0, 0, 0) != 5 {
		t.Errorf("dst changed with src: %d", dst.At(0, 0, 0))
	}
	if !MatchShape(dst, src) || !dst.IsDerivative() {
		t.Errorf("Copy gave shape %v derivative %v", dst.Shape(), dst.IsDerivative())
	}
}

func TestCopyReusesStorage(t *testing.T) {
	dst := New[float32](6, 1, 1)
	before := &dst.Data()[0]
	dst.Copy(NewFilled[float32](1, 2, 3, 1))
	if &dst.Data()[0] != before {
		t.Error("equal element count reallocated storage")
	}
	if !dst.Matches(Shape{2, 3, 1}) {
		t.Errorf("shape = %v, want 2x3x1", dst.Shape())
	}
}

func TestCopySelf(t *testing.T) {
	b := NewFilled[int16](4, 2, 2, 1)
	b.Copy(b)
	Convert(b, b)
	if b.At(1, 1, 0) != 4 {
		t.Errorf("self copy changed data: %d", b.At(1, 1, 0))
	}
}

func TestClone(t *testing.T) {
	b := NewFilled[float64](0.25, 2, 2, 3)
	c := b.Clone()
	c.Set(1, 1, 2, 1)
	if b.At(1, 1, 2) != 0.25 {
		t.Error("Clone aliases its source")
	}
}

func TestConvertRoundTrip(t *testing.T) {
	src, err := FromSlice([]int16{-300, -1, 0, 1, 255, 32767}, 3, 2, 1)
	if err != nil {
		t.Fatal(err)
	}
	src.SetDerivative(true)

	f := &Float64{}
	Convert(f, src)
	if !f.IsDerivative() {
		t.Error("Convert dropped the derivative flag")
	}
	back := &Int16{}
	Convert(back, f)
	for i, v := range back.Data() {
		if v != src.Data()[i] {
			t.Errorf("element %d: %d -> %v -> %d", i, src.Data()[i], f.Data()[i], v)
		}
	}
}

func TestConvertTruncates(t *testing.T) {
	src, _ := FromSlice([]float32{1.9, -1.9, 2.5}, 3, 1, 1)
	dst := &Int16{}
	Convert(dst, src)
	want := []int16{1, -1, 2}
	for i, v := range dst.Data() {
		if v != want[i] {
			t.Errorf("element %d = %d, want %d", i, v, want[i])
		}
	}
}

func TestMatchShape(t *testing.T) {
	a := New[uint8](2, 3, 1)
	b := New[float64](2, 3, 1)
	c := New[int16](3, 2, 1)
	d := New[float32](2, 3, 0)

	tests := []struct {
		name string
		ab   bool
		ba   bool
		want bool
	}{
		{"reflexive", MatchShape(a, a), MatchShape(a, a), true},
		{"element type ignored", MatchShape(a, b), MatchShape(b, a), true},
		{"transposed", MatchShape(a, c), MatchShape(c, a), false},
		{"channels differ", MatchShape(b, d), MatchShape(d, b), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.ab != tt.ba {
				t.Fatalf("asymmetric: %v vs %v", tt.ab, tt.ba)
			}
			if tt.ab != tt.want {
				t.Errorf("got %v, want %v", tt.ab, tt.want)
			}
		})
	}
}
