package server

import (
	"fmt"
	"os"
	"strconv"
)

// DefaultJPEGQuality is used by image_save when neither the request nor the
// environment sets a quality.
const DefaultJPEGQuality = 95

// Config holds server settings read from the environment.
type Config struct {
	// LogLevel is "debug", "info" or "warn". Empty means "info".
	LogLevel string

	// JPEGQuality (1-100) applies to JPEG output of image_save.
	JPEGQuality int
}

// DefaultConfig returns the settings used when the environment is empty.
func DefaultConfig() Config {
	return Config{LogLevel: "info", JPEGQuality: DefaultJPEGQuality}
}

// ConfigFromEnv reads PIXBUF_MCP_LOG_LEVEL and PIXBUF_MCP_JPEG_QUALITY.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("PIXBUF_MCP_LOG_LEVEL"); v != "" {
		switch v {
		case "debug", "info", "warn":
			cfg.LogLevel = v
		default:
			return cfg, fmt.Errorf("invalid PIXBUF_MCP_LOG_LEVEL %q: want debug, info or warn", v)
		}
	}

	if v := os.Getenv("PIXBUF_MCP_JPEG_QUALITY"); v != "" {
		q, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid PIXBUF_MCP_JPEG_QUALITY: %w", err)
		}
		if q < 1 || q > 100 {
			return cfg, fmt.Errorf("invalid PIXBUF_MCP_JPEG_QUALITY %d: want 1-100", q)
		}
		cfg.JPEGQuality = q
	}

	return cfg, nil
}

// Debug reports whether debug logging is enabled.
func (c Config) Debug() bool {
	return c.LogLevel == "debug"
}
