package codec

import (
	"fmt"

	"github.com/ironsheep/pixbuf-mcp/internal/numeric"
)

// Kind selects how element values map to 8-bit intensities.
type Kind int

const (
	// Standard treats values as intensities: 0-1 for floating-point
	// elements, 0-255 for integer elements.
	Standard Kind = iota

	// Derivative treats values as signed differences: -1..1 for
	// floating-point elements, -255..255 for integer elements. Zero maps to
	// mid-grey.
	Derivative

	// Normalized stretches the buffer's own minimum and maximum to 0 and 255.
	Normalized
)

func (k Kind) String() string {
	switch k {
	case Standard:
		return "standard"
	case Derivative:
		return "derivative"
	case Normalized:
		return "normalized"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps "standard", "derivative" or "normalized" to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "", "standard":
		return Standard, nil
	case "derivative":
		return Derivative, nil
	case "normalized":
		return Normalized, nil
	}
	return Standard, fmt.Errorf("unknown intensity kind: %q", s)
}

// Quantize converts data to 8-bit samples according to kind. Results are
// rounded half away from zero and saturated to [0, 255].
func Quantize[T numeric.Scalar](data []T, kind Kind) []uint8 {
	out := make([]uint8, len(data))
	isFloat := numeric.IsFloat[T]()

	switch kind {
	case Derivative:
		for i, v := range data {
			if isFloat {
				out[i] = numeric.ToByte((float64(v) + 1) * 127.5)
			} else {
				out[i] = numeric.ToByte((float64(v) + 255) / 2)
			}
		}
	case Normalized:
		if len(data) == 0 {
			return out
		}
		lo, hi := float64(data[0]), float64(data[0])
		for _, v := range data {
			lo = min(lo, float64(v))
			hi = max(hi, float64(v))
		}
		if hi == lo {
			// Constant input carries no range to stretch.
			return out
		}
		scale := 255 / (hi - lo)
		for i, v := range data {
			out[i] = numeric.ToByte((float64(v) - lo) * scale)
		}
	default:
		for i, v := range data {
			if isFloat {
				out[i] = numeric.ToByte(float64(v) * 255)
			} else {
				out[i] = numeric.ToByte(float64(v))
			}
		}
	}
	return out
}
