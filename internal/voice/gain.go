package voice

import (
	"math"
	"sync/atomic"
)

// Gain is a playback volume factor that can be updated while a stream is
// running; the streamer reads it per frame, so changes apply without a
// restart.
type Gain struct {
	bits atomic.Uint64
}

func NewGain(v float64) *Gain {
	g := &Gain{}
	g.Set(v)
	return g
}

func (g *Gain) Set(v float64) {
	g.bits.Store(math.Float64bits(v))
}

func (g *Gain) Value() float64 {
	return math.Float64frombits(g.bits.Load())
}

// apply scales PCM samples in place, clipping at the int16 range.
func (g *Gain) apply(samples []int16) {
	v := g.Value()
	if v == 1.0 {
		return
	}
	for i, s := range samples {
		scaled := float64(s) * v
		switch {
		case scaled > math.MaxInt16:
			samples[i] = math.MaxInt16
		case scaled < math.MinInt16:
			samples[i] = math.MinInt16
		default:
			samples[i] = int16(scaled)
		}
	}
}
