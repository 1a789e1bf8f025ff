package pixbuf

import (
	"fmt"

	"github.com/ironsheep/pixbuf-mcp/internal/numeric"
)

// ITU-R BT.601 luma weights.
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

// Desaturate writes the luma of a 3-channel src into the single-channel dst.
// Sources with any other channel count are collapsed to their channel mean
// instead. Luma is computed in float64 and converted to D, so integer
// destinations truncate: a (255, 0, 0) pixel becomes 76.
func Desaturate[D, S Scalar](dst *Buffer[D], src *Buffer[S]) {
	if src.channels != 3 {
		Collapse(dst, src)
		return
	}
	ensureShape(dst, src.width, src.height, 1)
	for i := 0; i < src.pixels; i++ {
		o := i * 3
		dst.data[i] = numeric.FromFloat[D](float64(src.data[o])*lumaR +
			float64(src.data[o+1])*lumaG +
			float64(src.data[o+2])*lumaB)
	}
}

// Collapse writes the per-pixel mean of all channels of src into the
// single-channel dst.
func Collapse[D, S Scalar](dst *Buffer[D], src *Buffer[S]) {
	ensureShape(dst, src.width, src.height, 1)
	c := src.channels
	if c == 0 {
		return
	}
	for i := 0; i < src.pixels; i++ {
		sum := 0.0
		for _, v := range src.data[i*c : (i+1)*c] {
			sum += float64(v)
		}
		dst.data[i] = numeric.FromFloat[D](sum / float64(c))
	}
}

// Concatenate writes the channels of src followed by the channels of add
// into dst, pixel by pixel.
//
// When add's width or height differs from src, add is ignored: dst becomes a
// converted copy of src and the returned error wraps ErrShapeMismatch.
// dst must not be src or add.
func Concatenate[D, S, A Scalar](dst *Buffer[D], src *Buffer[S], add *Buffer[A]) error {
	if add.width != src.width || add.height != src.height {
		Convert(dst, src)
		err := fmt.Errorf("%w: cannot append %s to %s", ErrShapeMismatch, add.Shape(), src.Shape())
		Logger().Warn("pixbuf: concatenate fell back to copy", "error", err)
		return err
	}
	sc, ac := src.channels, add.channels
	ext := sc + ac
	ensureShape(dst, src.width, src.height, ext)
	for i := 0; i < src.pixels; i++ {
		d := dst.data[i*ext : (i+1)*ext]
		for k, v := range src.data[i*sc : (i+1)*sc] {
			d[k] = numeric.Cast[D](v)
		}
		for k, v := range add.data[i*ac : (i+1)*ac] {
			d[sc+k] = numeric.Cast[D](v)
		}
	}
	return nil
}

// ConcatenateNew returns Concatenate of src and add in a new buffer of
// src's element type.
func ConcatenateNew[S, A Scalar](src *Buffer[S], add *Buffer[A]) (*Buffer[S], error) {
	dst := &Buffer[S]{}
	err := Concatenate(dst, src, add)
	return dst, err
}

// Separate splits src between its first splitAt channels (dst1) and the
// rest (dst2). Both outputs inherit src's derivative flag.
//
// When splitAt covers every channel, dst1 is a full copy and dst2 has zero
// channels. When splitAt is zero the roles are mirrored. Zero-channel
// outputs keep src's width and height but have no storage.
func Separate[D1, D2, S Scalar](src *Buffer[S], splitAt int, dst1 *Buffer[D1], dst2 *Buffer[D2]) {
	dst1.derivative = src.derivative
	dst2.derivative = src.derivative

	if splitAt >= src.channels {
		Convert(dst1, src)
		dst2.Allocate(src.width, src.height, 0)
		return
	}
	if splitAt <= 0 {
		dst1.Allocate(src.width, src.height, 0)
		Convert(dst2, src)
		return
	}

	c := src.channels
	second := c - splitAt
	ensureShape(dst1, src.width, src.height, splitAt)
	ensureShape(dst2, src.width, src.height, second)
	for i := 0; i < src.pixels; i++ {
		s := src.data[i*c : (i+1)*c]
		for k := 0; k < splitAt; k++ {
			dst1.data[i*splitAt+k] = numeric.Cast[D1](s[k])
		}
		for k := splitAt; k < c; k++ {
			dst2.data[i*second+k-splitAt] = numeric.Cast[D2](s[k])
		}
	}
}
