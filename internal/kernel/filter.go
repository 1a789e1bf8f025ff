package kernel

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/ironsheep/pixbuf-mcp/internal/numeric"
)

// Filter2D correlates src with a (2*half+1) x (2*half+1) row-major kernel.
func Filter2D[S, D numeric.Scalar](src []S, dst []D, width, height, channels int, kernel []float64, half int) {
	if channels == 0 {
		return
	}
	size := 2*half + 1
	isFloat := numeric.IsFloat[D]()
	acc := make([]float64, channels)

	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			for k := range acc {
				acc[k] = 0
			}
			for ii := -half; ii <= half; ii++ {
				row := numeric.ClampInt(i+ii, 0, height-1)
				for jj := -half; jj <= half; jj++ {
					w := kernel[(ii+half)*size+jj+half]
					if w == 0 {
						continue
					}
					col := numeric.ClampInt(j+jj, 0, width-1)
					base := (row*width + col) * channels
					for k := 0; k < channels; k++ {
						acc[k] += w * float64(src[base+k])
					}
				}
			}
			off := (i*width + j) * channels
			store(dst[off:off+channels], acc, isFloat)
		}
	}
}

// FilterH correlates every row of src with a 1D kernel of 2*half+1 taps.
func FilterH[S, D numeric.Scalar](src []S, dst []D, width, height, channels int, kernel []float64, half int) {
	if channels == 0 {
		return
	}
	isFloat := numeric.IsFloat[D]()
	acc := make([]float64, channels)

	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			for k := range acc {
				acc[k] = 0
			}
			for jj := -half; jj <= half; jj++ {
				w := kernel[jj+half]
				if w == 0 {
					continue
				}
				col := numeric.ClampInt(j+jj, 0, width-1)
				base := (i*width + col) * channels
				for k := 0; k < channels; k++ {
					acc[k] += w * float64(src[base+k])
				}
			}
			off := (i*width + j) * channels
			store(dst[off:off+channels], acc, isFloat)
		}
	}
}

// FilterV correlates every column of src with a 1D kernel of 2*half+1 taps.
//
// Rows are contiguous, so each tap scales a whole source row and adds it to
// the row accumulator.
func FilterV[S, D numeric.Scalar](src []S, dst []D, width, height, channels int, kernel []float64, half int) {
	stride := width * channels
	if stride == 0 {
		return
	}
	isFloat := numeric.IsFloat[D]()
	row := make([]float64, stride)
	scaled := make([]float64, stride)
	acc := make([]float64, stride)

	for i := 0; i < height; i++ {
		clear(acc)
		for ii := -half; ii <= half; ii++ {
			w := kernel[ii+half]
			if w == 0 {
				continue
			}
			r := numeric.ClampInt(i+ii, 0, height-1)
			toFloat(row, src[r*stride:(r+1)*stride])
			vecmath.ScaleBlock(scaled, row, w)
			vecmath.AddBlockInPlace(acc, scaled)
		}
		store(dst[i*stride:(i+1)*stride], acc, isFloat)
	}
}
