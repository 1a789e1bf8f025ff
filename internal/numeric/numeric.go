// Package numeric holds the element-type constraint shared by the pixel buffer,
// its numeric kernel and its collaborators, plus a few scalar helpers.
package numeric

import (
	"math"
	"unsafe"
)

// Scalar is the set of element types a pixel buffer can hold.
type Scalar interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// IsFloat reports whether T is a floating-point type.
//
// The check is resolved through the type parameter itself: integer division
// truncates 1/2 to zero while floating-point division does not.
func IsFloat[T Scalar]() bool {
	one, two := T(1), T(2)
	return one/two != 0
}

// ClampInt constrains v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ToByte rounds v half away from zero and saturates it to [0, 255].
func ToByte(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}

// FromFloat converts v to T. Floating-point T receive v unchanged. Integer T
// receive v truncated toward zero and saturated to T's range, with NaN
// mapping to 0, so the result never depends on the platform.
func FromFloat[T Scalar](v float64) T {
	if IsFloat[T]() {
		return T(v)
	}
	if math.IsNaN(v) {
		return 0
	}
	lo, hi, flo, fhi := limits[T]()
	switch {
	case v >= fhi:
		return hi
	case v <= flo-1:
		return lo
	}
	return T(v)
}

// limits returns the smallest and largest values of the integer type T plus
// the float64 bounds outside of which a conversion does not fit: [flo, fhi).
func limits[T Scalar]() (lo, hi T, flo, fhi float64) {
	var zero T
	bits := int(unsafe.Sizeof(zero)) * 8
	if zero-1 > zero {
		return 0, T(uint64(math.MaxUint64) >> (64 - bits)), 0, math.Ldexp(1, bits)
	}
	return T(int64(math.MinInt64) >> (64 - bits)), T(int64(math.MaxInt64) >> (64 - bits)),
		-math.Ldexp(1, bits-1), math.Ldexp(1, bits-1)
}

// Cast converts v from S to D. Integer-to-integer conversions keep Go's
// wrapping semantics; a floating-point v headed for an integer D goes
// through FromFloat.
func Cast[D, S Scalar](v S) D {
	if IsFloat[S]() && !IsFloat[D]() {
		return FromFloat[D](float64(v))
	}
	return D(v)
}
