// Package server implements an MCP (Model Context Protocol) server that
// exposes pixel buffer operations as tools.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Image information:
//   - image_load: Dimensions, channels, format and file size
//   - image_stats: Per-channel min/max/mean, squared norm, mean colour
//   - image_sample_color: Colour at a pixel
//
// Geometry:
//   - image_crop: Rectangular region, optionally rescaled
//   - image_resize: Bilinear resize by ratio or to a fixed size
//   - image_patch: Square patch around a fractional position
//
// Filtering:
//   - image_smooth: Gaussian or 3x3 tent blur
//   - image_derivative: Horizontal or vertical derivative
//   - image_desaturate: Luma conversion
//   - image_normalize: Min-max contrast stretch
//   - image_edge_detect: Canny-style edge map
//
// Output:
//   - image_save: Write a processed image to disk
//
// Image results are returned inline as base64 PNG.
//
// # Image Caching
//
// Decoded files are cached by path for the lifetime of the server. Every
// tool call works on its own copy of the cached samples. image_save evicts
// the file it writes so a later call reads the new contents.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Usage
//
//	cfg, err := server.ConfigFromEnv()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := server.New(cfg).Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
