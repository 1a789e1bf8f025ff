package kernel

import (
	"math"

	"github.com/ironsheep/pixbuf-mcp/internal/numeric"
)

// ScaledSize returns floor(n*ratio), the size a dimension of n takes after
// resampling by ratio.
func ScaledSize(n int, ratio float64) int {
	return int(float64(n) * ratio)
}

// store writes an accumulator into dst. Integer element types receive the
// rounded value saturated to their range.
func store[D numeric.Scalar](dst []D, acc []float64, isFloat bool) {
	for k, v := range acc {
		if !isFloat {
			v = math.Round(v)
		}
		dst[k] = numeric.FromFloat[D](v)
	}
}

// toFloat widens src into dst.
func toFloat[S numeric.Scalar](dst []float64, src []S) {
	for i, v := range src {
		dst[i] = float64(v)
	}
}

// bilinear samples src at the fractional position (x, y) into out.
// Neighbours outside the image are clamped to the edge.
func bilinear[S numeric.Scalar](src []S, width, height, channels int, x, y float64, out []float64) {
	for k := range out {
		out[k] = 0
	}
	x0 := math.Floor(x)
	y0 := math.Floor(y)
	u := x - x0
	v := y - y0
	xi, yi := int(x0), int(y0)

	for dy := 0; dy <= 1; dy++ {
		wy := 1 - v
		if dy == 1 {
			wy = v
		}
		if wy == 0 {
			continue
		}
		row := numeric.ClampInt(yi+dy, 0, height-1)
		for dx := 0; dx <= 1; dx++ {
			wx := 1 - u
			if dx == 1 {
				wx = u
			}
			w := wx * wy
			if w == 0 {
				continue
			}
			col := numeric.ClampInt(xi+dx, 0, width-1)
			base := (row*width + col) * channels
			for k := 0; k < channels; k++ {
				out[k] += w * float64(src[base+k])
			}
		}
	}
}
