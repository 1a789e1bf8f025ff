// Package kernel performs the arithmetic behind the pixel buffer: bilinear
// resampling, separable and non-separable correlation filters, fractional
// patch sampling and rectangular copies.
//
// Every function works on raw interleaved row-major storage plus explicit
// shape parameters. Callers are responsible for sizing the destination; the
// kernel never allocates storage it returns.
//
// # Borders
//
// Filters and resampling clamp out-of-range coordinates to the nearest edge
// pixel. Patch sampling is the exception: samples whose centre falls outside
// the source are skipped and keep whatever the destination already holds.
//
// # Rounding
//
// Accumulation happens in float64. Integer destinations receive the rounded
// result saturated to their range, floating-point destinations the exact
// one. CopyRect converts elements with numeric.Cast and does not round.
package kernel
