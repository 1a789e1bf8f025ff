package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/ironsheep/pixbuf-mcp/internal/codec"
	"github.com/ironsheep/pixbuf-mcp/internal/inspect"
	"github.com/ironsheep/pixbuf-mcp/internal/pixbuf"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_crop").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// ImageResult is a processed image returned inline as base64 PNG.
type ImageResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Channels    int    `json:"channels"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// SaveResult describes a file written by image_save.
type SaveResult struct {
	Output   string `json:"output"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Channels int    `json:"channels"`
	Kind     string `json:"kind"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}
	switch name {
	// Image information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_stats":
		return s.handleImageStats(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)

	// Geometry
	case "image_crop":
		return s.handleImageCrop(args)
	case "image_resize":
		return s.handleImageResize(args)
	case "image_patch":
		return s.handleImagePatch(args)

	// Filtering
	case "image_smooth":
		return s.handleImageSmooth(args)
	case "image_derivative":
		return s.handleImageDerivative(args)
	case "image_desaturate":
		return s.handleImageDesaturate(args)
	case "image_normalize":
		return s.handleImageNormalize(args)
	case "image_edge_detect":
		return s.handleImageEdgeDetect(args)

	// Output
	case "image_save":
		return s.handleImageSave(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// loadBuffer decodes path through the server cache into a new buffer.
// The cached samples are copied, so callers may modify the result.
func loadBuffer[T pixbuf.Scalar](s *Server, path string) (*pixbuf.Buffer[T], error) {
	if path == "" {
		return nil, fmt.Errorf("path is required")
	}
	raw, err := s.cache.Load(path)
	if err != nil {
		return nil, err
	}
	return pixbuf.FromRaw[T](raw), nil
}

// encodeResult renders b as an inline PNG.
func encodeResult[T pixbuf.Scalar](b *pixbuf.Buffer[T], kind codec.Kind) (*ImageResult, error) {
	var buf bytes.Buffer
	if err := b.EncodePNG(&buf, kind); err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return &ImageResult{
		Width:       b.Width(),
		Height:      b.Height(),
		Channels:    b.Channels(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// rescale resizes b by scale unless scale is 0 or 1.
func rescale[T pixbuf.Scalar](b *pixbuf.Buffer[T], scale float64) error {
	if scale == 0 || scale == 1 {
		return nil
	}
	if scale < 0 {
		return fmt.Errorf("scale must be positive, got %v", scale)
	}
	b.Resize(scale)
	return nil
}

// === Image Information Handlers ===

type pathArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return codec.Stat(s.cache, a.Path)
}

func (s *Server) handleImageStats(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	b, err := loadBuffer[uint8](s, a.Path)
	if err != nil {
		return nil, err
	}
	return inspect.ChannelStats(b), nil
}

type sampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a sampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	b, err := loadBuffer[uint8](s, a.Path)
	if err != nil {
		return nil, err
	}
	return inspect.SampleColor(b, a.X, a.Y)
}

// === Geometry Handlers ===

type cropArgs struct {
	Path   string  `json:"path"`
	X      int     `json:"x"`
	Y      int     `json:"y"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Scale  float64 `json:"scale"`
}

func (s *Server) handleImageCrop(args json.RawMessage) (interface{}, error) {
	var a cropArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	src, err := loadBuffer[uint8](s, a.Path)
	if err != nil {
		return nil, err
	}
	dst := &pixbuf.Byte{}
	if err := pixbuf.Crop(dst, src, a.X, a.Y, a.Width, a.Height); err != nil {
		return nil, err
	}
	if err := rescale(dst, a.Scale); err != nil {
		return nil, err
	}
	return encodeResult(dst, codec.Standard)
}

type resizeArgs struct {
	Path   string  `json:"path"`
	Ratio  float64 `json:"ratio"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
}

func (s *Server) handleImageResize(args json.RawMessage) (interface{}, error) {
	var a resizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	b, err := loadBuffer[uint8](s, a.Path)
	if err != nil {
		return nil, err
	}
	switch {
	case a.Width > 0 && a.Height > 0:
		b.ResizeTo(a.Width, a.Height)
	case a.Ratio > 0:
		b.Resize(a.Ratio)
	default:
		return nil, fmt.Errorf("either a positive ratio or both width and height are required")
	}
	return encodeResult(b, codec.Standard)
}

type patchArgs struct {
	Path  string  `json:"path"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Half  *int    `json:"half"`
	Scale float64 `json:"scale"`
}

func (s *Server) handleImagePatch(args json.RawMessage) (interface{}, error) {
	var a patchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	half := 8
	if a.Half != nil {
		half = *a.Half
	}
	if half < 0 {
		return nil, fmt.Errorf("half must not be negative, got %d", half)
	}
	src, err := loadBuffer[float32](s, a.Path)
	if err != nil {
		return nil, err
	}
	dst := &pixbuf.Float32{}
	pixbuf.GetPatch(dst, src, a.X, a.Y, half)
	if err := rescale(dst, a.Scale); err != nil {
		return nil, err
	}
	return encodeResult(dst, codec.Standard)
}

// === Filtering Handlers ===

type smoothArgs struct {
	Path   string  `json:"path"`
	Method string  `json:"method"`
	Sigma  float64 `json:"sigma"`
	Radius *int    `json:"radius"`
	Factor float64 `json:"factor"`
}

func (s *Server) handleImageSmooth(args json.RawMessage) (interface{}, error) {
	var a smoothArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	src, err := loadBuffer[float32](s, a.Path)
	if err != nil {
		return nil, err
	}
	dst := &pixbuf.Float32{}
	switch a.Method {
	case "", "gaussian":
		if a.Sigma == 0 {
			a.Sigma = 1.0
		}
		radius := 2
		if a.Radius != nil {
			radius = *a.Radius
		}
		pixbuf.GaussianSmoothing(dst, src, a.Sigma, radius)
	case "box":
		if a.Factor == 0 {
			a.Factor = pixbuf.DefaultSmoothingFactor
		}
		pixbuf.Smoothing(dst, src, a.Factor)
	default:
		return nil, fmt.Errorf("unknown smoothing method: %q", a.Method)
	}
	return encodeResult(dst, codec.Standard)
}

type derivativeArgs struct {
	Path     string `json:"path"`
	Axis     string `json:"axis"`
	Advanced bool   `json:"advanced"`
}

func (s *Server) handleImageDerivative(args json.RawMessage) (interface{}, error) {
	var a derivativeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	src, err := loadBuffer[float32](s, a.Path)
	if err != nil {
		return nil, err
	}
	var d *pixbuf.Float32
	switch a.Axis {
	case "", "x":
		d = pixbuf.DxNew[float32](src, a.Advanced)
	case "y":
		d = pixbuf.DyNew[float32](src, a.Advanced)
	default:
		return nil, fmt.Errorf("unknown axis: %q", a.Axis)
	}
	return encodeResult(d, codec.Derivative)
}

func (s *Server) handleImageDesaturate(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	src, err := loadBuffer[uint8](s, a.Path)
	if err != nil {
		return nil, err
	}
	grey := &pixbuf.Byte{}
	pixbuf.Desaturate(grey, src)
	return encodeResult(grey, codec.Standard)
}

func (s *Server) handleImageNormalize(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	b, err := loadBuffer[uint8](s, a.Path)
	if err != nil {
		return nil, err
	}
	b.Normalize(b)
	return encodeResult(b, codec.Standard)
}

type edgeDetectArgs struct {
	Path          string `json:"path"`
	ThresholdLow  int    `json:"threshold_low"`
	ThresholdHigh int    `json:"threshold_high"`
}

func (s *Server) handleImageEdgeDetect(args json.RawMessage) (interface{}, error) {
	var a edgeDetectArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.ThresholdLow == 0 {
		a.ThresholdLow = 50
	}
	if a.ThresholdHigh == 0 {
		a.ThresholdHigh = 150
	}
	b, err := loadBuffer[uint8](s, a.Path)
	if err != nil {
		return nil, err
	}
	edges, err := inspect.Edges(b, float64(a.ThresholdLow), float64(a.ThresholdHigh))
	if err != nil {
		return nil, err
	}
	return encodeResult(edges, codec.Standard)
}

// === Output Handlers ===

type saveArgs struct {
	Path       string  `json:"path"`
	Output     string  `json:"output"`
	Desaturate bool    `json:"desaturate"`
	Smooth     float64 `json:"smooth"`
	Kind       string  `json:"kind"`
	Quality    int     `json:"quality"`
}

func (s *Server) handleImageSave(args json.RawMessage) (interface{}, error) {
	var a saveArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Output == "" {
		return nil, fmt.Errorf("output is required")
	}
	kind, err := codec.ParseKind(a.Kind)
	if err != nil {
		return nil, err
	}
	if a.Quality == 0 {
		a.Quality = s.cfg.JPEGQuality
	}
	if a.Quality < 1 || a.Quality > 100 {
		return nil, fmt.Errorf("quality must be 1-100, got %d", a.Quality)
	}

	b, err := loadBuffer[float32](s, a.Path)
	if err != nil {
		return nil, err
	}
	if a.Desaturate {
		grey := &pixbuf.Float32{}
		pixbuf.Desaturate(grey, b)
		b = grey
	}
	if a.Smooth > 0 {
		b.Smooth(a.Smooth)
	}

	if err := b.WriteAs(a.Output, kind, a.Quality); err != nil {
		return nil, err
	}
	s.cache.Evict(a.Output)

	return &SaveResult{
		Output:   a.Output,
		Width:    b.Width(),
		Height:   b.Height(),
		Channels: b.Channels(),
		Kind:     kind.String(),
	}, nil
}
