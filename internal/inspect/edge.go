package inspect

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/ironsheep/pixbuf-mcp/internal/numeric"
	"github.com/ironsheep/pixbuf-mcp/internal/pixbuf"
)

const (
	edgeSigma  = 1.4
	edgeRadius = 2

	// sobelGain maps the 5-tap derivative onto the response of a 3x3 Sobel
	// operator, which is where the usual Canny thresholds come from.
	sobelGain = 8
)

// Edges returns a single-channel map of the edges in b, 255 on edges and 0
// elsewhere.
//
// Parameters:
//   - b: Source buffer, grey or colour.
//   - low: Gradient threshold (0-255) below which pixels are discarded.
//   - high: Gradient threshold (0-255) above which pixels are strong edges.
//     Pixels between the thresholds are kept only next to a strong edge.
//
// # Algorithm
//
//  1. Luma conversion with Desaturate
//  2. Gaussian smoothing (sigma 1.4, radius 2)
//  3. Advanced Dx and Dy, magnitude sqrt(gx² + gy²)
//  4. Non-maximum suppression along the gradient direction
//  5. Hysteresis between low and high
func Edges[T numeric.Scalar](b *pixbuf.Buffer[T], low, high float64) (*pixbuf.Byte, error) {
	if b.Elements() == 0 {
		return nil, fmt.Errorf("cannot detect edges in empty %s buffer", b.Shape())
	}
	w, h := b.Width(), b.Height()

	grey := &pixbuf.Float64{}
	pixbuf.Desaturate(grey, b)
	if !b.IsFloat() {
		grey.MultiplyScalar(1.0 / 255)
	}
	blurred := &pixbuf.Float64{}
	pixbuf.GaussianSmoothing(blurred, grey, edgeSigma, edgeRadius)

	gx := pixbuf.DxNew[float64](blurred, true)
	gy := pixbuf.DyNew[float64](blurred, true)
	magnitude := make([]float64, w*h)
	direction := make([]float64, w*h)
	vecmath.Magnitude(magnitude, gx.Data(), gy.Data())
	for i, x := range gx.Data() {
		magnitude[i] *= sobelGain
		direction[i] = math.Atan2(gy.Data()[i], x)
	}

	suppressed := suppress(magnitude, direction, w, h)

	out := pixbuf.New[uint8](w, h, 1)
	lowT, highT := low/255, high/255
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := suppressed[y*w+x]
			if v >= highT || (v >= lowT && hasStrongNeighbour(suppressed, w, h, x, y, highT)) {
				out.Set(x, y, 0, 255)
			}
		}
	}
	return out, nil
}

// suppress keeps only magnitudes that are local maxima across the gradient.
// Border pixels are dropped.
func suppress(magnitude, direction []float64, w, h int) []float64 {
	out := make([]float64, w*h)
	at := func(x, y int) float64 { return magnitude[y*w+x] }
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			angle := direction[y*w+x]
			var n1, n2 float64
			switch {
			case (angle >= -math.Pi/8 && angle < math.Pi/8) || angle >= 7*math.Pi/8 || angle < -7*math.Pi/8:
				n1, n2 = at(x-1, y), at(x+1, y)
			case (angle >= math.Pi/8 && angle < 3*math.Pi/8) || (angle >= -7*math.Pi/8 && angle < -5*math.Pi/8):
				n1, n2 = at(x+1, y-1), at(x-1, y+1)
			case (angle >= 3*math.Pi/8 && angle < 5*math.Pi/8) || (angle >= -5*math.Pi/8 && angle < -3*math.Pi/8):
				n1, n2 = at(x, y-1), at(x, y+1)
			default:
				n1, n2 = at(x-1, y-1), at(x+1, y+1)
			}
			if m := at(x, y); m >= n1 && m >= n2 {
				out[y*w+x] = m
			}
		}
	}
	return out
}

func hasStrongNeighbour(m []float64, w, h, x, y int, threshold float64) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			px := numeric.ClampInt(x+dx, 0, w-1)
			py := numeric.ClampInt(y+dy, 0, h-1)
			if m[py*w+px] >= threshold {
				return true
			}
		}
	}
	return false
}
