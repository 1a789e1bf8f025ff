package pixbuf

import "github.com/ironsheep/pixbuf-mcp/internal/numeric"

// Copy makes b a deep copy of other, reusing b's storage when the element
// counts agree.
func (b *Buffer[T]) Copy(other *Buffer[T]) {
	if b == other {
		return
	}
	b.width = other.width
	b.height = other.height
	b.channels = other.channels
	b.pixels = other.pixels
	b.elements = other.elements
	b.derivative = other.derivative

	if len(b.data) != other.elements {
		b.data = nil
		if other.elements > 0 {
			b.data = make([]T, other.elements)
		}
	}
	copy(b.data, other.data)
}

// Clone returns a deep copy of b.
func (b *Buffer[T]) Clone() *Buffer[T] {
	c := &Buffer[T]{}
	c.Copy(b)
	return c
}

// Convert makes dst an elementwise converted copy of src, including the
// derivative flag. dst is always reallocated.
func Convert[D, S Scalar](dst *Buffer[D], src *Buffer[S]) {
	if any(dst) == any(src) {
		return
	}
	dst.Allocate(src.width, src.height, src.channels)
	dst.derivative = src.derivative
	for i, v := range src.data {
		dst.data[i] = numeric.Cast[D](v)
	}
}

// MatchShape reports whether a and b have the same width, height and
// channel count. Element types are ignored.
func MatchShape[A, B Scalar](a *Buffer[A], b *Buffer[B]) bool {
	return a.width == b.width && a.height == b.height && a.channels == b.channels
}
