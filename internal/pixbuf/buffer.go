package pixbuf

import (
	"fmt"

	"github.com/ironsheep/pixbuf-mcp/internal/numeric"
)

// Scalar is the set of element types a Buffer can hold.
type Scalar interface {
	numeric.Scalar
}

// Shape is the (width, height, channels) triple that decides whether two
// buffers are compatible.
type Shape struct {
	Width    int `json:"width"`
	Height   int `json:"height"`
	Channels int `json:"channels"`
}

// Pixels returns Width*Height.
func (s Shape) Pixels() int { return s.Width * s.Height }

// Elements returns Width*Height*Channels.
func (s Shape) Elements() int { return s.Width * s.Height * s.Channels }

func (s Shape) String() string {
	return fmt.Sprintf("%dx%dx%d", s.Width, s.Height, s.Channels)
}

// Buffer is a dense row-major pixel grid with interleaved channels.
//
// The zero value is an empty buffer ready for Allocate.
type Buffer[T Scalar] struct {
	data       []T
	width      int
	height     int
	channels   int
	pixels     int
	elements   int
	derivative bool
}

// Common instantiations.
type (
	Byte    = Buffer[uint8]
	Int16   = Buffer[int16]
	Float32 = Buffer[float32]
	Float64 = Buffer[float64]
)

// New returns a zero-filled buffer of the given shape.
func New[T Scalar](width, height, channels int) *Buffer[T] {
	b := &Buffer[T]{}
	b.Allocate(width, height, channels)
	return b
}

// NewFilled returns a buffer of the given shape with every element set to value.
func NewFilled[T Scalar](value T, width, height, channels int) *Buffer[T] {
	b := New[T](width, height, channels)
	b.SetValue(value)
	return b
}

// FromSlice returns a buffer holding a copy of data.
// len(data) must equal width*height*channels.
func FromSlice[T Scalar](data []T, width, height, channels int) (*Buffer[T], error) {
	b := New[T](width, height, channels)
	if len(data) != b.elements {
		return nil, fmt.Errorf("%w: %d elements for shape %s", ErrShapeMismatch, len(data), b.Shape())
	}
	copy(b.data, data)
	return b, nil
}

// dimensions returns pixel and element counts for a shape, panicking with
// ErrAllocationFailure when the element count does not fit in an int.
func dimensions(width, height, channels int) (pixels, elements int) {
	if width == 0 || height == 0 {
		return 0, 0
	}
	pixels = width * height
	if pixels/height != width {
		panic(fmt.Errorf("%w: %dx%d pixels overflow int", ErrAllocationFailure, width, height))
	}
	if channels == 0 {
		return pixels, 0
	}
	elements = pixels * channels
	if elements/channels != pixels {
		panic(fmt.Errorf("%w: %dx%dx%d elements overflow int", ErrAllocationFailure, width, height, channels))
	}
	return pixels, elements
}

func (b *Buffer[T]) computeDimension() {
	b.pixels, b.elements = dimensions(b.width, b.height, b.channels)
}

// Allocate releases the current storage and allocates zero-filled storage
// for the given shape. Negative dimensions are treated as zero.
func (b *Buffer[T]) Allocate(width, height, channels int) {
	b.Clear()
	b.width = max(width, 0)
	b.height = max(height, 0)
	b.channels = max(channels, 0)
	b.computeDimension()
	if b.elements > 0 {
		b.data = make([]T, b.elements)
	}
}

// AllocateLike allocates dst with the shape of like.
func AllocateLike[D, S Scalar](dst *Buffer[D], like *Buffer[S]) {
	dst.Allocate(like.width, like.height, like.channels)
}

// Clear releases storage and zeroes all dimensions.
func (b *Buffer[T]) Clear() {
	b.data = nil
	b.width, b.height, b.channels = 0, 0, 0
	b.pixels, b.elements = 0, 0
}

// Reset zero-fills the storage without reallocating.
func (b *Buffer[T]) Reset() {
	clear(b.data)
}

// SetValue sets every element to value.
func (b *Buffer[T]) SetValue(value T) {
	for i := range b.data {
		b.data[i] = value
	}
}

// SetValueShape reshapes b if needed and sets every element to value.
func (b *Buffer[T]) SetValueShape(value T, width, height, channels int) {
	if !b.Matches(Shape{Width: width, Height: height, Channels: channels}) {
		b.Allocate(width, height, channels)
	}
	b.SetValue(value)
}

// Width returns the number of columns.
func (b *Buffer[T]) Width() int { return b.width }

// Height returns the number of rows.
func (b *Buffer[T]) Height() int { return b.height }

// Channels returns the number of interleaved values per pixel.
func (b *Buffer[T]) Channels() int { return b.channels }

// Pixels returns Width() * Height().
func (b *Buffer[T]) Pixels() int { return b.pixels }

// Elements returns Pixels() * Channels(), the length of Data().
func (b *Buffer[T]) Elements() int { return b.elements }

// IsDerivative reports whether b holds signed derivative values.
func (b *Buffer[T]) IsDerivative() bool { return b.derivative }

// SetDerivative marks b as holding a signed difference signal.
func (b *Buffer[T]) SetDerivative(derivative bool) {
	b.derivative = derivative
}

// Shape returns the buffer's shape.
func (b *Buffer[T]) Shape() Shape {
	return Shape{Width: b.width, Height: b.height, Channels: b.channels}
}

// Matches reports whether b has shape s.
func (b *Buffer[T]) Matches(s Shape) bool {
	return b.width == s.Width && b.height == s.Height && b.channels == s.Channels
}

// Data returns the backing storage. The slice is only valid until the next
// call that changes b's shape.
func (b *Buffer[T]) Data() []T {
	return b.data
}

// Offset returns the index of channel 0 of pixel (x, y).
func (b *Buffer[T]) Offset(x, y int) int {
	return (y*b.width + x) * b.channels
}

// At returns channel c of pixel (x, y).
func (b *Buffer[T]) At(x, y, c int) T {
	return b.data[b.Offset(x, y)+c]
}

// Set assigns channel c of pixel (x, y).
func (b *Buffer[T]) Set(x, y, c int, v T) {
	b.data[b.Offset(x, y)+c] = v
}

// IsFloat reports whether T is a floating-point type. Float buffers use the
// 0-1 intensity range, integer buffers 0-255.
func (b *Buffer[T]) IsFloat() bool {
	return numeric.IsFloat[T]()
}

// ScaleToUnit divides every element by 255 when T is floating-point, moving
// 0-255 intensities into the 0-1 range. Integer buffers are left alone.
func (b *Buffer[T]) ScaleToUnit() {
	if !b.IsFloat() {
		return
	}
	for i, v := range b.data {
		b.data[i] = T(float64(v) / 255)
	}
}

// ensureShape reallocates dst unless it already has shape (w, h, c).
func ensureShape[D Scalar](dst *Buffer[D], width, height, channels int) {
	if dst.width == width && dst.height == height && dst.channels == channels {
		return
	}
	Logger().Debug("pixbuf: reallocating destination",
		"from", dst.Shape(), "to", Shape{Width: width, Height: height, Channels: channels})
	dst.Allocate(width, height, channels)
}
