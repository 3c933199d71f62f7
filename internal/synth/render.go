package synth

import (
	"math"
	"math/rand"

	"github.com/sosehq/openmusic-go/internal/compose"
)

// maxDetune is the detune span per partial: each render draws a fresh
// offset in (-2%, +2%) of the partial frequency.
const maxDetune = 0.02

// Render synthesizes one note additively. Partials sit at integer
// multiples of the fundamental, each detuned by a fresh random offset,
// weighted by the instrument's harmonic table, shaped by its envelope and
// scaled by the note velocity. The time axis is an endpoint-inclusive ramp
// over the note duration.
//
// The result holds round(duration*sampleRate) raw samples. Mix gain,
// placement and normalization are the caller's concern, so peaks may exceed
// unity when many partials align.
func Render(rng *rand.Rand, note compose.Note, inst Instrument, sampleRate int) []float32 {
	n := int(math.Round(note.Duration * float64(sampleRate)))
	if n <= 0 {
		return nil
	}
	m := modelFor(inst)

	freqs := make([]float64, len(m.weights))
	for k := range freqs {
		detune := (rng.Float64()*2 - 1) * maxDetune
		freqs[k] = note.Frequency * float64(k+1) * (1 + detune)
	}

	dt := 0.0
	if n > 1 {
		dt = note.Duration / float64(n-1)
	}
	out := make([]float32, n)
	for i := range out {
		t := float64(i) * dt
		s := 0.0
		for k, w := range m.weights {
			s += w * math.Sin(2*math.Pi*freqs[k]*t)
		}
		out[i] = float32(s * m.env.gain(t, note.Duration) * note.Velocity)
	}
	return out
}
