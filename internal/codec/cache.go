package codec

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
)

// Cache holds decoded images keyed by file path so repeated requests for the
// same file skip disk reads and decoding.
//
// Entries are shared between callers and must be treated as read-only.
// They stay in memory until Evict or Clear is called.
//
// Cache is safe for concurrent use by multiple goroutines.
type Cache struct {
	mu     sync.RWMutex
	images map[string]*Raw
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{images: make(map[string]*Raw)}
}

// Load returns the cached decode of path, decoding it on first use.
//
// The key is the exact path string. Relative and absolute paths to the same
// file are cached separately.
func (c *Cache) Load(path string) (*Raw, error) {
	c.mu.RLock()
	if raw, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return raw, nil
	}
	c.mu.RUnlock()

	raw, err := Decode(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.images[path] = raw
	c.mu.Unlock()

	return raw, nil
}

// Evict drops path from the cache. Unknown paths are ignored.
func (c *Cache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]*Raw)
	c.mu.Unlock()
}

// Len returns the number of cached images.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

// FileInfo describes an image file and its decoded layout.
type FileInfo struct {
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	Channels      int    `json:"channels"`
	Format        string `json:"format"`
	ColorDepth    string `json:"color_depth"`
	HasAlpha      bool   `json:"has_alpha"`
	FileSizeBytes int64  `json:"file_size_bytes"`
}

// Stat loads path through cache and reports its metadata. The format comes
// from the file extension and is "unknown" when the extension is not one
// imaging can write.
func Stat(cache *Cache, path string) (*FileInfo, error) {
	raw, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	st, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := "unknown"
	if f, err := imaging.FormatFromFilename(path); err == nil {
		format = strings.ToLower(f.String())
	}

	return &FileInfo{
		Width:         raw.Width,
		Height:        raw.Height,
		Channels:      raw.Channels,
		Format:        format,
		ColorDepth:    fmt.Sprintf("%d-bit", raw.Depth),
		HasAlpha:      raw.Alpha,
		FileSizeBytes: st.Size(),
	}, nil
}
