package pixbuf

import (
	"fmt"
	"math"

	"github.com/ironsheep/pixbuf-mcp/internal/kernel"
	"github.com/ironsheep/pixbuf-mcp/internal/numeric"
)

// Resize scales b in place by ratio on both axes. The new dimensions are
// floor(ratio*width) and floor(ratio*height). It reports false, leaving b
// unchanged, when b is empty.
func (b *Buffer[T]) Resize(ratio float64) bool {
	if b.elements == 0 {
		return false
	}
	w := kernel.ScaledSize(b.width, ratio)
	h := kernel.ScaledSize(b.height, ratio)
	_, n := dimensions(max(w, 0), max(h, 0), b.channels)

	var out []T
	if n > 0 {
		out = make([]T, n)
		kernel.Resample(b.data, out, b.width, b.height, b.channels, ratio)
	}
	b.data = out
	b.width = max(w, 0)
	b.height = max(h, 0)
	b.computeDimension()
	return true
}

// ResizeInto writes src scaled by ratio into dst.
func ResizeInto[D, S Scalar](dst *Buffer[D], src *Buffer[S], ratio float64) {
	w := kernel.ScaledSize(src.width, ratio)
	h := kernel.ScaledSize(src.height, ratio)
	ensureShape(dst, w, h, src.channels)
	if dst.elements == 0 || src.elements == 0 {
		return
	}
	kernel.Resample(src.data, dst.data, src.width, src.height, src.channels, ratio)
}

// ResizeTo scales b in place to exactly width x height. Resampling runs at
// float64 precision and the result is rounded back, and saturated, for
// integer buffers.
func (b *Buffer[T]) ResizeTo(width, height int) {
	tmp := New[float64](width, height, b.channels)
	if tmp.elements > 0 && b.elements > 0 {
		kernel.ResampleTo(b.data, tmp.data, b.width, b.height, b.channels, tmp.width, tmp.height)
	}
	b.Allocate(tmp.width, tmp.height, tmp.channels)
	isFloat := b.IsFloat()
	for i, v := range tmp.data {
		if !isFloat {
			v = math.Round(v)
		}
		b.data[i] = numeric.FromFloat[T](v)
	}
}

// MoveTo copies a width x height region of src into dst with its top-left
// corner at (x0, y0). A non-positive width or height means the full source
// extent. Rows and columns stop as soon as they reach dst's edge; nothing
// wraps and nothing is reported. Only min(src, dst) channels are copied.
func MoveTo[D, S Scalar](dst *Buffer[D], src *Buffer[S], x0, y0, width, height int) {
	if width <= 0 || width > src.width {
		width = src.width
	}
	if height <= 0 || height > src.height {
		height = src.height
	}
	nc := min(src.channels, dst.channels)

	for i := 0; i < height; i++ {
		y := y0 + i
		if y >= dst.height {
			break
		}
		if y < 0 {
			continue
		}
		for j := 0; j < width; j++ {
			x := x0 + j
			if x >= dst.width {
				break
			}
			if x < 0 {
				continue
			}
			d := (y*dst.width + x) * dst.channels
			s := (i*src.width + j) * src.channels
			for k := 0; k < nc; k++ {
				dst.data[d+k] = D(src.data[s+k])
			}
		}
	}
}

// GetPatch extracts the (2*half+1)-square patch of src centred on the
// fractional position (x, y). dst is reallocated when its shape differs and
// zeroed otherwise; samples falling outside src stay zero.
func GetPatch[D, S Scalar](dst *Buffer[D], src *Buffer[S], x, y float64, half int) {
	n := 2*half + 1
	if dst.Matches(Shape{Width: n, Height: n, Channels: src.channels}) {
		dst.Reset()
	} else {
		dst.Allocate(n, n, src.channels)
	}
	kernel.SamplePatch(src.data, dst.data, src.width, src.height, src.channels, x, y, half)
}

// Crop copies the width x height rectangle of src at (left, top) into dst.
//
// The rectangle must lie inside src. When it does not, Crop returns an error
// wrapping ErrInvalidRegion and dst is left untouched.
func Crop[D, S Scalar](dst *Buffer[D], src *Buffer[S], left, top, width, height int) error {
	if left < 0 || top < 0 || left >= src.width || top >= src.height {
		return rejectRegion(fmt.Errorf("%w: origin (%d,%d) outside %dx%d source",
			ErrInvalidRegion, left, top, src.width, src.height))
	}
	if width < 0 || height < 0 || left+width > src.width || top+height > src.height {
		return rejectRegion(fmt.Errorf("%w: %dx%d at (%d,%d) exceeds %dx%d source",
			ErrInvalidRegion, width, height, left, top, src.width, src.height))
	}
	ensureShape(dst, width, height, src.channels)
	kernel.CopyRect(src.data, src.width, src.height, src.channels, dst.data, left, top, width, height)
	return nil
}

func rejectRegion(err error) error {
	Logger().Warn("pixbuf: crop rejected", "error", err)
	return err
}
