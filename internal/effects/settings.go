package effects

// Settings selects which effects run and how strongly. Amounts at or below
// zero disable an effect, so the zero value is a bypass.
type Settings struct {
	Reverb     float64
	Chorus     float64
	Distortion float64
}

// Active reports whether any effect is enabled.
func (s Settings) Active() bool {
	return s.Reverb > 0 || s.Chorus > 0 || s.Distortion > 0
}

// Chain builds the effect chain for the settings. Effects always run in
// reverb, chorus, distortion order regardless of which are enabled.
func (s Settings) Chain(sampleRate int) *Chain {
	c := NewChain()
	if s.Reverb > 0 {
		c.Add(NewReverb(sampleRate, s.Reverb))
	}
	if s.Chorus > 0 {
		c.Add(NewChorus(sampleRate, s.Chorus))
	}
	if s.Distortion > 0 {
		c.Add(NewDistortion(s.Distortion))
	}
	return c
}

// Apply runs the configured chain over buf in place. The buffer length is
// preserved; a bypass leaves every sample untouched.
func (s Settings) Apply(buf []float32, sampleRate int) {
	if !s.Active() {
		return
	}
	chain := s.Chain(sampleRate)
	for i, x := range buf {
		buf[i] = chain.Process(x)
	}
}
