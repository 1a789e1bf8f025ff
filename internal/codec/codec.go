package codec

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/anthonynsimon/bild/clone"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/pixbuf-mcp/internal/numeric"
)

// Errors reported by the codec.
var (
	ErrUnsupportedChannels = errors.New("codec: unsupported channel count")
	ErrEmptyImage          = errors.New("codec: empty image")
)

// Raw is a decoded image as interleaved 8-bit samples.
type Raw struct {
	Pix      []uint8
	Width    int
	Height   int
	Channels int

	// Depth is the bit depth per channel of the source file (8 or 16).
	Depth int

	// Alpha reports whether the source carried an alpha channel that was
	// dropped on decode.
	Alpha bool
}

// Decode reads the image at path.
//
// Grey images decode to one channel. Everything else is normalized to RGBA
// and decoded to three RGB channels. EXIF orientation is applied.
func Decode(path string) (*Raw, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	return FromImage(img), nil
}

// FromImage converts a decoded image to Raw.
func FromImage(img image.Image) *Raw {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	raw := &Raw{Width: w, Height: h, Depth: 8}

	switch img.(type) {
	case *image.RGBA, *image.NRGBA:
		raw.Alpha = true
	case *image.RGBA64, *image.NRGBA64:
		raw.Alpha = true
		raw.Depth = 16
	case *image.Gray16:
		raw.Depth = 16
	}

	switch img.ColorModel() {
	case color.GrayModel, color.Gray16Model:
		raw.Channels = 1
		raw.Pix = make([]uint8, w*h)
		if g, ok := img.(*image.Gray); ok {
			for y := 0; y < h; y++ {
				row := g.Pix[y*g.Stride : y*g.Stride+w]
				copy(raw.Pix[y*w:], row)
			}
			return raw
		}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				raw.Pix[y*w+x] = color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray).Y
			}
		}
		return raw
	}

	rgba := clone.AsRGBA(img)
	raw.Channels = 3
	raw.Pix = make([]uint8, w*h*3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			s := y*rgba.Stride + x*4
			d := (y*w + x) * 3
			raw.Pix[d] = rgba.Pix[s]
			raw.Pix[d+1] = rgba.Pix[s+1]
			raw.Pix[d+2] = rgba.Pix[s+2]
		}
	}
	return raw
}

// ToImage quantizes data and wraps it in an image. One channel gives a
// *image.Gray; three or more give an opaque *image.NRGBA built from the
// first three channels.
func ToImage[T numeric.Scalar](data []T, width, height, channels int, kind Kind) (image.Image, error) {
	if width <= 0 || height <= 0 || channels <= 0 || len(data) < width*height*channels {
		return nil, fmt.Errorf("%w: %dx%dx%d", ErrEmptyImage, width, height, channels)
	}
	if channels == 2 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedChannels, channels)
	}

	pix := Quantize(data[:width*height*channels], kind)
	rect := image.Rect(0, 0, width, height)

	if channels == 1 {
		g := image.NewGray(rect)
		copy(g.Pix, pix)
		return g, nil
	}

	img := image.NewNRGBA(rect)
	for i := 0; i < width*height; i++ {
		s := i * channels
		d := i * 4
		img.Pix[d] = pix[s]
		img.Pix[d+1] = pix[s+1]
		img.Pix[d+2] = pix[s+2]
		img.Pix[d+3] = 255
	}
	return img, nil
}

// Encode writes data to path. The format is chosen from the extension;
// quality applies to JPEG output.
func Encode[T numeric.Scalar](path string, data []T, width, height, channels int, kind Kind, quality int) error {
	img, err := ToImage(data, width, height, channels, kind)
	if err != nil {
		return err
	}
	if err := imaging.Save(img, path, imaging.JPEGQuality(quality)); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// EncodePNG writes data to w as PNG.
func EncodePNG[T numeric.Scalar](w io.Writer, data []T, width, height, channels int, kind Kind) error {
	img, err := ToImage(data, width, height, channels, kind)
	if err != nil {
		return err
	}
	if err := imaging.Encode(w, img, imaging.PNG); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}
