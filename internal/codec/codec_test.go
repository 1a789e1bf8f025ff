package codec

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// writePNG encodes img into dir and returns its path.
func writePNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

func TestQuantize(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		kind Kind
		want []uint8
	}{
		{"standard float", []float64{0, 0.5, 1, 2, -1}, Standard, []uint8{0, 128, 255, 255, 0}},
		{"derivative float", []float64{-1, 0, 1}, Derivative, []uint8{0, 128, 255}},
		{"normalized", []float64{2, 3, 4}, Normalized, []uint8{0, 128, 255}},
		{"normalized constant", []float64{7, 7}, Normalized, []uint8{0, 0}},
		{"empty", nil, Normalized, []uint8{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Quantize(tt.in, tt.kind)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Quantize(%v, %v) = %v, want %v", tt.in, tt.kind, got, tt.want)
			}
		})
	}
}

func TestQuantizeInteger(t *testing.T) {
	if got := Quantize([]int16{-255, 0, 255, 300}, Derivative); !bytes.Equal(got, []uint8{0, 128, 255, 255}) {
		t.Errorf("derivative int16 = %v", got)
	}
	if got := Quantize([]int16{-3, 10, 400}, Standard); !bytes.Equal(got, []uint8{0, 10, 255}) {
		t.Errorf("standard int16 = %v", got)
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{Standard, Derivative, Normalized} {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseKind("bogus"); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestToImageErrors(t *testing.T) {
	if _, err := ToImage([]uint8{1, 2, 3, 4}, 2, 1, 2, Standard); !errors.Is(err, ErrUnsupportedChannels) {
		t.Errorf("2 channels: got %v, want ErrUnsupportedChannels", err)
	}
	if _, err := ToImage([]uint8{}, 0, 0, 3, Standard); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("empty: got %v, want ErrEmptyImage", err)
	}
	if _, err := ToImage([]uint8{1}, 2, 2, 1, Standard); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("short data: got %v, want ErrEmptyImage", err)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name     string
		channels int
		data     []uint8
	}{
		{"grey", 1, []uint8{0, 50, 100, 150, 200, 255}},
		{"rgb", 3, []uint8{
			255, 0, 0, 0, 255, 0, 0, 0, 255,
			10, 20, 30, 40, 50, 60, 70, 80, 90,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".png")
			if err := Encode(path, tt.data, 3, 2, tt.channels, Standard, 95); err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			raw, err := Decode(path)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if raw.Width != 3 || raw.Height != 2 || raw.Channels != tt.channels {
				t.Fatalf("shape = %dx%dx%d", raw.Width, raw.Height, raw.Channels)
			}
			if !bytes.Equal(raw.Pix, tt.data) {
				t.Errorf("pixels = %v, want %v", raw.Pix, tt.data)
			}
		})
	}
}

func TestEncodeDropsExtraChannels(t *testing.T) {
	var buf bytes.Buffer
	data := []uint8{1, 2, 3, 4, 5, 6, 7, 8}
	if err := EncodePNG(&buf, data, 2, 1, 4, Standard); err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode failed: %v", err)
	}
	r, g, b, a := img.At(1, 0).RGBA()
	if r>>8 != 5 || g>>8 != 6 || b>>8 != 7 || a>>8 != 255 {
		t.Errorf("pixel (1,0) = %d,%d,%d,%d", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestDecodeDropsAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := 0; i < 4; i++ {
		img.Set(i%2, i/2, color.NRGBA{200, 100, 50, 255})
	}
	path := writePNG(t, t.TempDir(), "alpha.png", img)

	raw, err := Decode(path)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if raw.Channels != 3 {
		t.Fatalf("channels = %d, want 3", raw.Channels)
	}
	if raw.Pix[0] != 200 || raw.Pix[1] != 100 || raw.Pix[2] != 50 {
		t.Errorf("first pixel = %v", raw.Pix[:3])
	}
}

func TestDecodeMissingFile(t *testing.T) {
	if _, err := Decode(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestCache(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir, "grey.png", image.NewGray(image.Rect(0, 0, 4, 3)))

	cache := NewCache()
	first, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	second, err := cache.Load(path)
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if first != second {
		t.Error("second Load did not return the cached entry")
	}
	if cache.Len() != 1 {
		t.Errorf("Len = %d, want 1", cache.Len())
	}

	cache.Evict(path)
	if cache.Len() != 0 {
		t.Errorf("Len after Evict = %d, want 0", cache.Len())
	}
	cache.Evict("never-loaded.png")

	if _, err := cache.Load(path); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	cache.Clear()
	if cache.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", cache.Len())
	}
}

func TestCacheConcurrentLoad(t *testing.T) {
	path := writePNG(t, t.TempDir(), "c.png", image.NewGray(image.Rect(0, 0, 8, 8)))
	cache := NewCache()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cache.Load(path); err != nil {
				t.Errorf("Load failed: %v", err)
			}
		}()
	}
	wg.Wait()
	if cache.Len() != 1 {
		t.Errorf("Len = %d, want 1", cache.Len())
	}
}

func TestStat(t *testing.T) {
	path := writePNG(t, t.TempDir(), "rgba.png", image.NewRGBA(image.Rect(0, 0, 5, 7)))

	info, err := Stat(NewCache(), path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Width != 5 || info.Height != 7 {
		t.Errorf("size = %dx%d, want 5x7", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("format = %q, want png", info.Format)
	}
	if info.Channels != 3 {
		t.Errorf("channels = %d, want 3", info.Channels)
	}
	if info.FileSizeBytes <= 0 {
		t.Errorf("file size = %d", info.FileSizeBytes)
	}
}
