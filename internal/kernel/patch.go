package kernel

import "github.com/ironsheep/pixbuf-mcp/internal/numeric"

// SamplePatch fills dst with the (2*half+1)-square neighbourhood of src
// centred on the fractional position (x, y).
//
// Sample positions outside [0, width-1] x [0, height-1] are skipped.
func SamplePatch[S, D numeric.Scalar](src []S, dst []D, width, height, channels int, x, y float64, half int) {
	if width == 0 || height == 0 || channels == 0 {
		return
	}
	size := 2*half + 1
	isFloat := numeric.IsFloat[D]()
	px := make([]float64, channels)
	maxX := float64(width - 1)
	maxY := float64(height - 1)

	for i := -half; i <= half; i++ {
		sy := y + float64(i)
		if sy < 0 || sy > maxY {
			continue
		}
		for j := -half; j <= half; j++ {
			sx := x + float64(j)
			if sx < 0 || sx > maxX {
				continue
			}
			bilinear(src, width, height, channels, sx, sy, px)
			off := ((i+half)*size + j + half) * channels
			store(dst[off:off+channels], px, isFloat)
		}
	}
}

// CopyRect copies the rw x rh rectangle at (left, top) of src into dst,
// converting each element. The rectangle must lie inside src.
func CopyRect[S, D numeric.Scalar](src []S, width, height, channels int, dst []D, left, top, rw, rh int) {
	n := rw * channels
	for i := 0; i < rh; i++ {
		s := ((top+i)*width + left) * channels
		d := i * n
		for k := 0; k < n; k++ {
			dst[d+k] = numeric.Cast[D](src[s+k])
		}
	}
}
