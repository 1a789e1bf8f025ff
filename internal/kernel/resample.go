package kernel

import "github.com/ironsheep/pixbuf-mcp/internal/numeric"

// Resample scales src by ratio on both axes into dst.
// dst must hold ScaledSize(width, ratio)*ScaledSize(height, ratio)*channels elements.
func Resample[S, D numeric.Scalar](src []S, dst []D, width, height, channels int, ratio float64) {
	resample(src, dst, width, height, channels,
		ScaledSize(width, ratio), ScaledSize(height, ratio), ratio, ratio)
}

// ResampleTo scales src to exactly dstWidth x dstHeight into dst.
func ResampleTo[S, D numeric.Scalar](src []S, dst []D, width, height, channels, dstWidth, dstHeight int) {
	if width == 0 || height == 0 {
		return
	}
	rx := float64(dstWidth) / float64(width)
	ry := float64(dstHeight) / float64(height)
	resample(src, dst, width, height, channels, dstWidth, dstHeight, rx, ry)
}

// resample maps destination pixel (j, i) to source position
// ((j+1)/rx - 1, (i+1)/ry - 1) and samples it bilinearly.
func resample[S, D numeric.Scalar](src []S, dst []D, width, height, channels, dstWidth, dstHeight int, rx, ry float64) {
	if width == 0 || height == 0 || channels == 0 {
		return
	}
	isFloat := numeric.IsFloat[D]()
	px := make([]float64, channels)
	for i := 0; i < dstHeight; i++ {
		y := float64(i+1)/ry - 1
		for j := 0; j < dstWidth; j++ {
			x := float64(j+1)/rx - 1
			bilinear(src, width, height, channels, x, y, px)
			off := (i*dstWidth + j) * channels
			store(dst[off:off+channels], px, isFloat)
		}
	}
}
