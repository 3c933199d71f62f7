package effects

// Reverb adds a single feedback-free echo: out = in + amount*in[n-d] with
// the tap delay fixed at 50ms. There is no comb or allpass network, so the
// tail dies with the input and the output length never grows.
type Reverb struct {
	buf    []float32
	pos    int
	amount float32
}

// reverbDelay is the echo tap distance in seconds.
const reverbDelay = 0.05

// NewReverb creates a reverb effect.
// amount: echo level, clamped to 0..1
func NewReverb(sampleRate int, amount float64) *Reverb {
	d := int(reverbDelay * float64(sampleRate))
	if d < 1 {
		d = 1
	}
	return &Reverb{
		buf:    make([]float32, d),
		amount: clamp(float32(amount), 0, 1),
	}
}

func (r *Reverb) Process(x float32) float32 {
	delayed := r.buf[r.pos]
	r.buf[r.pos] = x
	r.pos++
	if r.pos >= len(r.buf) {
		r.pos = 0
	}
	return x + r.amount*delayed
}

func (r *Reverb) Reset() {
	for i := range r.buf {
		r.buf[i] = 0
	}
	r.pos = 0
}
