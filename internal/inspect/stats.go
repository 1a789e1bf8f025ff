package inspect

import (
	"github.com/ironsheep/pixbuf-mcp/internal/numeric"
	"github.com/ironsheep/pixbuf-mcp/internal/pixbuf"
)

// ChannelStat summarises one channel.
type ChannelStat struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Mean float64 `json:"mean"`
}

// Stats summarises a buffer.
type Stats struct {
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	Channels []ChannelStat `json:"channels"`
	Norm2    float64       `json:"norm2"`

	// MeanColor is the colour of the per-channel means, present for grey and
	// colour buffers that are not derivatives.
	MeanColor *ColorResult `json:"mean_color,omitempty"`
}

// ChannelStats computes per-channel minimum, maximum and mean of b along
// with its squared norm. Values are reported in b's own units.
func ChannelStats[T numeric.Scalar](b *pixbuf.Buffer[T]) *Stats {
	c := b.Channels()
	st := &Stats{
		Width:    b.Width(),
		Height:   b.Height(),
		Channels: make([]ChannelStat, c),
		Norm2:    b.Norm2(),
	}
	n := b.Pixels()
	if n == 0 || c == 0 {
		return st
	}

	data := b.Data()
	for k := 0; k < c; k++ {
		lo, hi, sum := float64(data[k]), float64(data[k]), 0.0
		for i := k; i < len(data); i += c {
			v := float64(data[i])
			lo = min(lo, v)
			hi = max(hi, v)
			sum += v
		}
		st.Channels[k] = ChannelStat{Min: lo, Max: hi, Mean: sum / float64(n)}
	}

	if b.IsDerivative() || c == 2 {
		return st
	}
	scale := 1.0
	if b.IsFloat() {
		scale = 255
	}
	mean := func(k int) uint8 { return numeric.ToByte(st.Channels[k].Mean * scale) }
	if c == 1 {
		v := mean(0)
		st.MeanColor = describe(v, v, v)
	} else {
		st.MeanColor = describe(mean(0), mean(1), mean(2))
	}
	return st
}
