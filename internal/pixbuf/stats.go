package pixbuf

import "github.com/ironsheep/pixbuf-mcp/internal/numeric"

// Normalize rescales b linearly so its minimum maps to 0 and its maximum to
// 1 for floating-point T or 255 for integer T, writing the result into dst.
// dst is reshaped to b if needed. An empty or constant b has nothing to
// rescale and dst is not written.
func (b *Buffer[T]) Normalize(dst *Buffer[T]) {
	ensureShape(dst, b.width, b.height, b.channels)
	if b.elements == 0 {
		return
	}
	lo, hi := b.data[0], b.data[0]
	for _, v := range b.data {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	if lo == hi {
		return
	}
	span := 255.0
	if b.IsFloat() {
		span = 1
	}
	flo, fhi := float64(lo), float64(hi)
	for i, v := range b.data {
		dst.data[i] = numeric.FromFloat[T]((float64(v) - flo) * span / (fhi - flo))
	}
}

// Norm2 returns the sum of squared elements.
func (b *Buffer[T]) Norm2() float64 {
	sum := 0.0
	for _, v := range b.data {
		f := float64(v)
		sum += f * f
	}
	return sum
}

// InnerProduct returns the sum of a[i]*b[i] over a's elements.
//
// No shape check is made; b must hold at least a.Elements() elements.
func InnerProduct[A, B Scalar](a *Buffer[A], b *Buffer[B]) float64 {
	sum := 0.0
	for i, v := range a.data {
		sum += float64(v) * float64(b.data[i])
	}
	return sum
}
