// Package inspect reports on pixel buffers: colour at a point, per-channel
// statistics and a Canny-style edge map.
//
// Colours are reported in several notations so callers can pick the one
// that suits them:
//   - Hex: "#RRGGBB"
//   - RGB: 8-bit components (0-255)
//   - HSL: Hue (0-360), Saturation (0-100), Lightness (0-100)
//
// Single-channel buffers are treated as grey, with R = G = B. Buffers with
// two channels have no colour interpretation and are rejected where a
// colour is required.
package inspect
