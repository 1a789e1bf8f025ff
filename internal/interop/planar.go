// Package interop exchanges pixel buffers with hosts that store images as
// column-major planes, one plane per channel.
//
// A planar array of height h, width w and c channels keeps the element for
// row i, column j and channel k at k*w*h + j*h + i. Buffers keep the same
// element at (i*w+j)*c + k.
package interop

import (
	"errors"
	"fmt"

	"github.com/ironsheep/pixbuf-mcp/internal/numeric"
	"github.com/ironsheep/pixbuf-mcp/internal/pixbuf"
)

// Errors reported by interop conversions.
var (
	ErrDimensions = errors.New("interop: unsupported dimensions")
	ErrChannel    = errors.New("interop: channel out of range")
)

// Array is a column-major planar float64 array. Dims is [height, width] for
// single-channel data and [height, width, channels] otherwise.
type Array struct {
	Dims []int
	Data []float64
}

// FromPlanar fills dst from a planar array of the given shape, converting
// each element. dst is reallocated when its shape differs.
func FromPlanar[T, P numeric.Scalar](dst *pixbuf.Buffer[T], plane []P, width, height, channels int) {
	if !dst.Matches(pixbuf.Shape{Width: width, Height: height, Channels: channels}) {
		dst.Allocate(width, height, channels)
	}
	data := dst.Data()
	n := width * height
	off := 0
	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			for k := 0; k < channels; k++ {
				data[off] = T(plane[k*n+j*height+i])
				off++
			}
		}
	}
}

// ToPlanar writes src into plane in planar order. plane must hold at least
// src.Elements() elements.
func ToPlanar[T, P numeric.Scalar](src *pixbuf.Buffer[T], plane []P) {
	w, h, c := src.Width(), src.Height(), src.Channels()
	n := w * h
	data := src.Data()
	off := 0
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			for k := 0; k < c; k++ {
				plane[k*n+j*h+i] = P(data[off])
				off++
			}
		}
	}
}

// Import loads a planar host array with dimensions dims ([h, w] or
// [h, w, c]) into dst.
//
// Hosts use the same intensity conventions as buffers: 0-1 for floating-point
// data and 0-255 for integers. When the host and buffer element kinds
// disagree the values are rescaled by 255 on the way in.
func Import[T, P numeric.Scalar](dst *pixbuf.Buffer[T], plane []P, dims []int) error {
	var h, w, c int
	switch len(dims) {
	case 2:
		h, w, c = dims[0], dims[1], 1
	case 3:
		h, w, c = dims[0], dims[1], dims[2]
	default:
		return fmt.Errorf("%w: %d dimensions", ErrDimensions, len(dims))
	}
	if h < 0 || w < 0 || c < 0 {
		return fmt.Errorf("%w: %v", ErrDimensions, dims)
	}
	if len(plane) < h*w*c {
		return fmt.Errorf("%w: %d elements for %v", ErrDimensions, len(plane), dims)
	}

	bufFloat, hostFloat := numeric.IsFloat[T](), numeric.IsFloat[P]()
	if bufFloat == hostFloat {
		FromPlanar(dst, plane, w, h, c)
		return nil
	}

	scale := 255.0
	if bufFloat {
		scale = 1.0 / 255
	}
	dst.Allocate(w, h, c)
	data := dst.Data()
	n := w * h
	off := 0
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			for k := 0; k < c; k++ {
				data[off] = numeric.FromFloat[T](float64(plane[k*n+j*h+i]) * scale)
				off++
			}
		}
	}
	return nil
}

// Export returns src as a planar float64 array. Values are copied unscaled.
func Export[T numeric.Scalar](src *pixbuf.Buffer[T]) *Array {
	dims := []int{src.Height(), src.Width(), src.Channels()}
	if src.Channels() == 1 {
		dims = dims[:2]
	}
	out := &Array{Dims: dims, Data: make([]float64, src.Elements())}
	ToPlanar(src, out.Data)
	return out
}
