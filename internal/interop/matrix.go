package interop

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/ironsheep/pixbuf-mcp/internal/numeric"
	"github.com/ironsheep/pixbuf-mcp/internal/pixbuf"
)

// ChannelMatrix returns channel ch of src as a height x width matrix.
func ChannelMatrix[T numeric.Scalar](src *pixbuf.Buffer[T], ch int) (*mat.Dense, error) {
	if ch < 0 || ch >= src.Channels() {
		return nil, fmt.Errorf("%w: %d of %d", ErrChannel, ch, src.Channels())
	}
	w, h, c := src.Width(), src.Height(), src.Channels()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("%w: empty %s buffer", ErrDimensions, src.Shape())
	}
	data := src.Data()
	vals := make([]float64, w*h)
	for i := range vals {
		vals[i] = float64(data[i*c+ch])
	}
	return mat.NewDense(h, w, vals), nil
}

// FromMatrices builds dst from one matrix per channel. All planes must share
// the same dimensions; rows become image rows.
func FromMatrices[T numeric.Scalar](dst *pixbuf.Buffer[T], planes []*mat.Dense) error {
	if len(planes) == 0 {
		return fmt.Errorf("%w: no planes", ErrDimensions)
	}
	h, w := planes[0].Dims()
	for k, p := range planes[1:] {
		if r, c := p.Dims(); r != h || c != w {
			return fmt.Errorf("%w: plane %d is %dx%d, want %dx%d", ErrDimensions, k+1, r, c, h, w)
		}
	}

	c := len(planes)
	if !dst.Matches(pixbuf.Shape{Width: w, Height: h, Channels: c}) {
		dst.Allocate(w, h, c)
	}
	data := dst.Data()
	for k, p := range planes {
		for i := 0; i < h; i++ {
			for j := 0; j < w; j++ {
				data[(i*w+j)*c+k] = T(p.At(i, j))
			}
		}
	}
	return nil
}
