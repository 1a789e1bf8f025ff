// Package pixbuf provides Buffer, a dense multi-channel pixel grid generic
// over its scalar element type, together with the operations a vision
// pipeline builds on: derivatives and smoothing, resizing and cropping,
// channel splitting and merging, elementwise arithmetic across element types,
// and simple statistics.
//
// # Layout
//
// Storage is row-major with interleaved channels. The element for column x,
// row y and channel c lives at index (y*width+x)*channels + c. A buffer owns
// its storage exclusively: constructors copy the slices they are given, and
// no operation lets two buffers share a backing array.
//
// # Shapes
//
// Two buffers match when their width, height and channel count agree; the
// element type plays no part. Operations that write into a destination
// reallocate it when its shape does not match, so filter, copy and geometric
// calls never fail on shape. Arithmetic is stricter: mismatched operands are
// rejected with ErrShapeMismatch and the receiver is left as it was.
//
// # Element types
//
// Methods cover same-type work. Anything that reads one element type and
// writes another is a package function parameterised on both, for example
// Convert[float64](dst, src) or Dx(dst, src, true). Conversions follow Go's
// numeric conversion rules: narrowing is unchecked, and float to integer
// truncates toward zero. Computation that goes through the numeric kernel
// rounds to nearest instead.
//
// A destination must be a different buffer from its sources unless the
// function says otherwise. Convert and Copy treat a buffer passed as both
// source and destination as a no-op.
//
// # Concurrency
//
// Buffers are not synchronised. Concurrent mutation of one buffer must be
// serialised by the caller.
package pixbuf
