package pixbuf

import (
	"io"

	"github.com/ironsheep/pixbuf-mcp/internal/codec"
)

// Load decodes the image at path into a new buffer. Integer buffers receive
// 0-255 intensities, floating-point buffers receive them divided by 255.
func Load[T Scalar](path string) (*Buffer[T], error) {
	raw, err := codec.Decode(path)
	if err != nil {
		return nil, err
	}
	return FromRaw[T](raw), nil
}

// FromRaw converts decoded samples into a new buffer, scaling to the 0-1
// range for floating-point T.
func FromRaw[T Scalar](raw *codec.Raw) *Buffer[T] {
	b := New[T](raw.Width, raw.Height, raw.Channels)
	for i, v := range raw.Pix[:b.elements] {
		b.data[i] = T(v)
	}
	b.ScaleToUnit()
	return b
}

// Read replaces b with the image at path. On error b is left unchanged.
func (b *Buffer[T]) Read(path string) error {
	loaded, err := Load[T](path)
	if err != nil {
		return err
	}
	*b = *loaded
	return nil
}

// Write encodes b to path, choosing the format from the extension. Buffers
// marked as derivative are written with mid-grey at zero.
func (b *Buffer[T]) Write(path string, quality int) error {
	return b.WriteAs(path, b.kind(), quality)
}

// WriteAs encodes b to path using the given intensity kind.
func (b *Buffer[T]) WriteAs(path string, kind codec.Kind, quality int) error {
	return codec.Encode(path, b.data, b.width, b.height, b.channels, kind, quality)
}

// EncodePNG writes b to w as PNG using the given intensity kind.
func (b *Buffer[T]) EncodePNG(w io.Writer, kind codec.Kind) error {
	return codec.EncodePNG(w, b.data, b.width, b.height, b.channels, kind)
}

// kind returns the intensity kind Write uses for b.
func (b *Buffer[T]) kind() codec.Kind {
	if b.derivative {
		return codec.Derivative
	}
	return codec.Standard
}
