// Package codec moves pixel data between image files and flat interleaved
// 8-bit samples.
//
// Decoding always yields either one grey channel or three RGB channels.
// Alpha is dropped. Encoding accepts any numeric element type and quantizes
// it to 8 bits according to a Kind, which says how the values are laid out:
// plain intensities, signed differences, or an arbitrary range to be
// stretched.
//
// # Formats
//
// Reading supports whatever disintegration/imaging can open (PNG, JPEG, GIF,
// TIFF, BMP). Writing picks the format from the file extension. JPEG output
// honours the requested quality.
//
// # Thread Safety
//
// Cache is safe for concurrent use. Decode, Encode and EncodePNG are
// stateless.
package codec
