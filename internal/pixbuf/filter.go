package pixbuf

import (
	"math"

	"github.com/ironsheep/pixbuf-mcp/internal/kernel"
	"github.com/ironsheep/pixbuf-mcp/internal/numeric"
)

// DefaultSmoothingFactor is the centre weight of the [1 f 1] tent used by
// Smoothing when callers have no preference.
const DefaultSmoothingFactor = 4.0

// derivativeKernel returns the centred 5-tap stencil {1,-8,0,8,-1}/12.
func derivativeKernel() []float64 {
	k := []float64{1, -8, 0, 8, -1}
	for i := range k {
		k[i] /= 12
	}
	return k
}

// Dx writes the horizontal derivative of src into dst and marks dst as a
// derivative image.
//
// The simple filter is the forward difference src[x+1]-src[x]; the last
// column has no right neighbour and stays zero. The advanced filter applies
// the 5-tap stencil {1,-8,0,8,-1}/12 with clamped borders.
func Dx[D, S Scalar](dst *Buffer[D], src *Buffer[S], advanced bool) {
	ensureShape(dst, src.width, src.height, src.channels)
	dst.Reset()
	dst.SetDerivative(true)
	if advanced {
		kernel.FilterH(src.data, dst.data, src.width, src.height, src.channels, derivativeKernel(), 2)
		return
	}
	c := src.channels
	exact := integral[D, S, S]()
	for i := 0; i < src.height; i++ {
		for j := 0; j < src.width-1; j++ {
			off := i*src.width + j
			for k := 0; k < c; k++ {
				dst.data[off*c+k] = difference[D](src.data[(off+1)*c+k], src.data[off*c+k], exact)
			}
		}
	}
}

// Dy writes the vertical derivative of src into dst. See Dx; for the simple
// filter the last row stays zero.
func Dy[D, S Scalar](dst *Buffer[D], src *Buffer[S], advanced bool) {
	ensureShape(dst, src.width, src.height, src.channels)
	dst.Reset()
	dst.SetDerivative(true)
	if advanced {
		kernel.FilterV(src.data, dst.data, src.width, src.height, src.channels, derivativeKernel(), 2)
		return
	}
	c := src.channels
	exact := integral[D, S, S]()
	for i := 0; i < src.height-1; i++ {
		for j := 0; j < src.width; j++ {
			off := i*src.width + j
			for k := 0; k < c; k++ {
				dst.data[off*c+k] = difference[D](src.data[(off+src.width)*c+k], src.data[off*c+k], exact)
			}
		}
	}
}

// difference returns a-b in D, in integer arithmetic when exact is set and
// through float64 otherwise.
func difference[D, S Scalar](a, b S, exact bool) D {
	if exact {
		return D(a) - D(b)
	}
	return numeric.FromFloat[D](float64(a) - float64(b))
}

// DxNew returns the horizontal derivative of src in a new buffer.
func DxNew[D, S Scalar](src *Buffer[S], advanced bool) *Buffer[D] {
	dst := &Buffer[D]{}
	Dx(dst, src, advanced)
	return dst
}

// DyNew returns the vertical derivative of src in a new buffer.
func DyNew[D, S Scalar](src *Buffer[S], advanced bool) *Buffer[D] {
	dst := &Buffer[D]{}
	Dy(dst, src, advanced)
	return dst
}

// GaussianKernel returns the normalised 1D Gaussian of 2*radius+1 taps,
// weight[i] = exp(-i²/(2σ²)) for i in [-radius, radius]. A non-positive
// sigma yields the unit impulse.
func GaussianKernel(sigma float64, radius int) []float64 {
	radius = max(radius, 0)
	k := make([]float64, 2*radius+1)
	if sigma <= 0 {
		k[radius] = 1
		return k
	}
	s := 2 * sigma * sigma
	sum := 0.0
	for i := -radius; i <= radius; i++ {
		k[i+radius] = math.Exp(-float64(i*i) / s)
		sum += k[i+radius]
	}
	for i := range k {
		k[i] /= sum
	}
	return k
}

// GaussianSmoothing blurs src into dst with a separable Gaussian of the given
// sigma and half-width, running the horizontal pass first.
func GaussianSmoothing[D, S Scalar](dst *Buffer[D], src *Buffer[S], sigma float64, radius int) {
	k := GaussianKernel(sigma, radius)
	half := len(k) / 2
	FilterHV(dst, src, k, half, k, half)
}

// BoxKernel returns the 3x3 outer product of the tent [1 factor 1],
// normalised by (factor+2)².
func BoxKernel(factor float64) []float64 {
	k := []float64{
		1, factor, 1,
		factor, factor * factor, factor,
		1, factor, 1,
	}
	norm := (factor + 2) * (factor + 2)
	for i := range k {
		k[i] /= norm
	}
	return k
}

// Smoothing blurs src into dst with BoxKernel(factor), applied as a single
// non-separable 3x3 filter.
func Smoothing[D, S Scalar](dst *Buffer[D], src *Buffer[S], factor float64) {
	Filter(dst, src, BoxKernel(factor), 1)
}

// SmoothingNew returns Smoothing of src in a new buffer.
func SmoothingNew[D, S Scalar](src *Buffer[S], factor float64) *Buffer[D] {
	dst := &Buffer[D]{}
	Smoothing(dst, src, factor)
	return dst
}

// Smooth applies Smoothing to b in place.
func (b *Buffer[T]) Smooth(factor float64) {
	tmp := New[T](b.width, b.height, b.channels)
	Smoothing(tmp, b, factor)
	tmp.derivative = b.derivative
	b.Copy(tmp)
}

// Filter correlates src with a (2*half+1)² row-major kernel into dst.
func Filter[D, S Scalar](dst *Buffer[D], src *Buffer[S], k []float64, half int) {
	ensureShape(dst, src.width, src.height, src.channels)
	kernel.Filter2D(src.data, dst.data, src.width, src.height, src.channels, k, half)
}

// FilterNew returns Filter of src in a new buffer.
func FilterNew[D, S Scalar](src *Buffer[S], k []float64, half int) *Buffer[D] {
	dst := &Buffer[D]{}
	Filter(dst, src, k, half)
	return dst
}

// FilterH correlates every row of src with a 1D kernel of 2*half+1 taps.
func FilterH[D, S Scalar](dst *Buffer[D], src *Buffer[S], k []float64, half int) {
	ensureShape(dst, src.width, src.height, src.channels)
	kernel.FilterH(src.data, dst.data, src.width, src.height, src.channels, k, half)
}

// FilterV correlates every column of src with a 1D kernel of 2*half+1 taps.
func FilterV[D, S Scalar](dst *Buffer[D], src *Buffer[S], k []float64, half int) {
	ensureShape(dst, src.width, src.height, src.channels)
	kernel.FilterV(src.data, dst.data, src.width, src.height, src.channels, k, half)
}

// FilterHV runs a horizontal then a vertical pass. The intermediate result
// is held in dst's element type.
func FilterHV[D, S Scalar](dst *Buffer[D], src *Buffer[S], hk []float64, hhalf int, vk []float64, vhalf int) {
	ensureShape(dst, src.width, src.height, src.channels)
	tmp := make([]D, src.elements)
	kernel.FilterH(src.data, tmp, src.width, src.height, src.channels, hk, hhalf)
	kernel.FilterV(tmp, dst.data, src.width, src.height, src.channels, vk, vhalf)
}
