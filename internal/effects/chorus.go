package effects

import "math"

// Chorus adds a 20ms delay tap whose level wobbles at 1.5 Hz. The
// modulation acts on the tap amplitude rather than the delay time, so the
// pitch of the tap never bends; the doubling shimmer comes from the level
// movement alone.
type Chorus struct {
	buf      []float32
	pos      int
	amount   float64
	phase    float64
	phaseInc float64
}

const (
	chorusDelay = 0.02 // tap distance in seconds
	chorusRate  = 1.5  // level modulation in Hz
	chorusDepth = 0.01 // modulation excursion around unity
)

// NewChorus creates a chorus effect.
// amount: tap level, clamped to 0..1
func NewChorus(sampleRate int, amount float64) *Chorus {
	d := int(chorusDelay * float64(sampleRate))
	if d < 1 {
		d = 1
	}
	return &Chorus{
		buf:      make([]float32, d),
		amount:   float64(clamp(float32(amount), 0, 1)),
		phaseInc: 2 * math.Pi * chorusRate / float64(sampleRate),
	}
}

func (c *Chorus) Process(x float32) float32 {
	delayed := float64(c.buf[c.pos])
	c.buf[c.pos] = x
	c.pos++
	if c.pos >= len(c.buf) {
		c.pos = 0
	}
	mod := 1 + chorusDepth*math.Sin(c.phase)
	c.phase += c.phaseInc
	if c.phase > 2*math.Pi {
		c.phase -= 2 * math.Pi
	}
	return x + float32(delayed*c.amount*mod)
}

func (c *Chorus) Reset() {
	for i := range c.buf {
		c.buf[i] = 0
	}
	c.pos = 0
	c.phase = 0
}
