package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func schema(props map[string]interface{}, required ...string) map[string]interface{} {
	props["path"] = prop("string", "Absolute path to the image file")
	return map[string]interface{}{
		"type":       "object",
		"properties": props,
		"required":   append([]string{"path"}, required...),
	}
}

func prop(typ, description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        typ,
		"description": description,
	}
}

func propDefault(typ, description string, def interface{}) map[string]interface{} {
	p := prop(typ, description)
	p["default"] = def
	return p
}

func enumProp(description string, def string, values ...string) map[string]interface{} {
	p := propDefault("string", description, def)
	p["enum"] = values
	return p
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Image information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, channel count, format and file size.",
			InputSchema: schema(map[string]interface{}{}),
		},
		{
			Name:        "image_stats",
			Description: "Per-channel minimum, maximum and mean, the sum of squared values, and the mean colour.",
			InputSchema: schema(map[string]interface{}{}),
		},
		{
			Name:        "image_sample_color",
			Description: "Get the exact color value at a specific pixel coordinate.",
			InputSchema: schema(map[string]interface{}{
				"x": prop("integer", "X coordinate (0-based, from left)"),
				"y": prop("integer", "Y coordinate (0-based, from top)"),
			}, "x", "y"),
		},

		// Geometry
		{
			Name:        "image_crop",
			Description: "Crop a rectangular region and return it as base64-encoded PNG. The region must lie inside the image.",
			InputSchema: schema(map[string]interface{}{
				"x":      prop("integer", "Left edge X coordinate (0-based)"),
				"y":      prop("integer", "Top edge Y coordinate (0-based)"),
				"width":  prop("integer", "Region width in pixels"),
				"height": prop("integer", "Region height in pixels"),
				"scale":  propDefault("number", "Optional scale factor applied after cropping", 1.0),
			}, "x", "y", "width", "height"),
		},
		{
			Name:        "image_resize",
			Description: "Resize an image with bilinear sampling, either by ratio or to an explicit width and height.",
			InputSchema: schema(map[string]interface{}{
				"ratio":  prop("number", "Scale factor for both axes. Ignored when width and height are given"),
				"width":  prop("integer", "Target width in pixels"),
				"height": prop("integer", "Target height in pixels"),
			}),
		},
		{
			Name:        "image_patch",
			Description: "Extract a square patch centred on a fractional pixel position. Samples outside the image are black.",
			InputSchema: schema(map[string]interface{}{
				"x":     prop("number", "Centre X coordinate (may be fractional)"),
				"y":     prop("number", "Centre Y coordinate (may be fractional)"),
				"half":  propDefault("integer", "Half-width of the patch; the patch is 2*half+1 pixels square", 8),
				"scale": propDefault("number", "Optional scale factor applied to the patch", 1.0),
			}, "x", "y"),
		},

		// Filtering
		{
			Name:        "image_smooth",
			Description: "Blur an image with a separable Gaussian or a 3x3 tent filter.",
			InputSchema: schema(map[string]interface{}{
				"method": enumProp("Smoothing filter", "gaussian", "gaussian", "box"),
				"sigma":  propDefault("number", "Gaussian standard deviation", 1.0),
				"radius": propDefault("integer", "Gaussian half-width in pixels", 2),
				"factor": propDefault("number", "Centre weight of the box filter tent [1 factor 1]", 4.0),
			}),
		},
		{
			Name:        "image_derivative",
			Description: "Horizontal or vertical derivative. Zero maps to mid-grey in the returned PNG.",
			InputSchema: schema(map[string]interface{}{
				"axis":     enumProp("Derivative direction", "x", "x", "y"),
				"advanced": propDefault("boolean", "Use the 5-tap stencil instead of the forward difference", false),
			}),
		},
		{
			Name:        "image_desaturate",
			Description: "Convert a colour image to luma (0.299R + 0.587G + 0.114B).",
			InputSchema: schema(map[string]interface{}{}),
		},
		{
			Name:        "image_normalize",
			Description: "Stretch the image so its darkest value becomes 0 and its brightest 255.",
			InputSchema: schema(map[string]interface{}{}),
		},
		{
			Name:        "image_edge_detect",
			Description: "Canny-style edge map: white edges on black.",
			InputSchema: schema(map[string]interface{}{
				"threshold_low":  propDefault("integer", "Low hysteresis threshold (0-255)", 50),
				"threshold_high": propDefault("integer", "High hysteresis threshold (0-255)", 150),
			}),
		},

		// Output
		{
			Name:        "image_save",
			Description: "Write the image, optionally desaturated and smoothed, to a new file. The format follows the output extension.",
			InputSchema: schema(map[string]interface{}{
				"output":     prop("string", "Absolute path of the file to write"),
				"desaturate": propDefault("boolean", "Convert to luma before saving", false),
				"smooth":     propDefault("number", "Box filter factor to apply before saving; 0 disables smoothing", 0.0),
				"kind":       enumProp("Intensity mapping", "standard", "standard", "derivative", "normalized"),
				"quality":    prop("integer", "JPEG quality (1-100); defaults to the server setting"),
			}, "output"),
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
