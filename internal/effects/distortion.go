package effects

import "math"

// Distortion soft-clips the signal with a tanh waveshaper. Drive raises the
// input gain into the curve and the output is scaled back by 1/(1+drive),
// so hotter drives change the timbre rather than the level.
type Distortion struct {
	preGain  float64
	postGain float64
}

// NewDistortion creates a distortion effect.
// drive: distortion intensity, 0 leaves the curve nearly linear
func NewDistortion(drive float64) *Distortion {
	return &Distortion{
		preGain:  1 + drive*5,
		postGain: 1 / (1 + drive),
	}
}

func (d *Distortion) Process(x float32) float32 {
	return float32(math.Tanh(float64(x)*d.preGain) * d.postGain)
}

func (d *Distortion) Reset() {}
