package synth

import "math"

// Instrument identifies one of the closed set of instrument models. The
// zero value is the generic fallback voice.
type Instrument int

const (
	InstrumentDefault Instrument = iota
	InstrumentPiano
	InstrumentStrings
	InstrumentBrass
	InstrumentSynthPad
	InstrumentSynthLead
	InstrumentSynthBass
)

var instrumentNames = [...]string{
	InstrumentDefault:   "default",
	InstrumentPiano:     "piano",
	InstrumentStrings:   "strings",
	InstrumentBrass:     "brass",
	InstrumentSynthPad:  "synth_pad",
	InstrumentSynthLead: "synth_lead",
	InstrumentSynthBass: "synth_bass",
}

func (i Instrument) String() string {
	if i < 0 || int(i) >= len(instrumentNames) {
		return "default"
	}
	return instrumentNames[i]
}

// envelope is the one capability an instrument model provides: an amplitude
// gain for elapsed time t within a note of the given duration. Gains sit
// roughly in [0,1]; vibrato and brightness modulation may nudge above 1.
type envelope interface {
	gain(t, duration float64) float64
}

// adsrEnvelope is the percussive four stage shape. Breakpoints are
// fractions of the whole note: attack ramps 0 to 1, decay falls to the
// sustain level, the level holds, and the final release fraction fades to
// zero.
type adsrEnvelope struct {
	attack  float64
	decay   float64
	sustain float64
	release float64
}

func (e adsrEnvelope) gain(t, duration float64) float64 {
	if duration <= 0 {
		return 0
	}
	u := t / duration
	switch {
	case u < 0:
		return 0
	case u < e.attack:
		return u / e.attack
	case u < e.attack+e.decay:
		return 1 - (1-e.sustain)*(u-e.attack)/e.decay
	case u < 1-e.release:
		return e.sustain
	default:
		rel := (u - (1 - e.release)) / e.release
		if rel > 1 {
			rel = 1
		}
		return e.sustain * (1 - rel)
	}
}

// stringsEnvelope models a bowed attack: a gaussian swell centered 100ms in,
// a slow exponential decay and a 5 Hz vibrato.
type stringsEnvelope struct{}

func (stringsEnvelope) gain(t, _ float64) float64 {
	attack := math.Exp(-(t - 0.1) * (t - 0.1) / 0.01)
	decay := math.Exp(-0.1 * t)
	vibrato := 1 + 0.05*math.Sin(2*math.Pi*5*t)
	return attack * decay * vibrato
}

// brassEnvelope models a breath attack that saturates quickly, a gentle
// decay and a 3 Hz brightness wobble.
type brassEnvelope struct{}

func (brassEnvelope) gain(t, _ float64) float64 {
	attack := 1 - math.Exp(-20*t)
	decay := math.Exp(-0.2 * t)
	brightness := 1 + 0.1*math.Sin(2*math.Pi*3*t)
	return attack * decay * brightness
}

// synthShape selects between the three synthesizer envelope responses.
type synthShape int

const (
	shapePad synthShape = iota
	shapeLead
	shapeBass
)

// synthEnvelope covers the synthesizer voices. Pad swells slowly into an
// indefinite sustain, lead speaks fast and decays away, bass is a plucked
// thump with a very fast attack.
type synthEnvelope struct {
	shape synthShape
}

func (e synthEnvelope) gain(t, _ float64) float64 {
	switch e.shape {
	case shapeLead:
		return (1 - math.Exp(-10*t)) * math.Exp(-t)
	case shapeBass:
		return math.Exp(-3*t) * (1 - math.Exp(-50*t))
	default:
		return 1 - math.Exp(-2*t)
	}
}

// flatEnvelope holds unity gain for the whole note.
type flatEnvelope struct{}

func (flatEnvelope) gain(_, _ float64) float64 { return 1 }

// model bundles an instrument's envelope with its harmonic weight table.
// weights[k] scales the partial at (k+1) times the fundamental.
type model struct {
	env     envelope
	weights []float64
}

var (
	pianoWeights   = []float64{1, 0.5, 0.3, 0.2, 0.1, 0.05}
	stringsWeights = []float64{1, 0.7, 0.5, 0.3, 0.2, 0.15, 0.1, 0.05}
	brassWeights   = []float64{1, 0.8, 0.6, 0.4, 0.3, 0.2, 0.15, 0.1, 0.08, 0.05}
	padWeights     = []float64{1, 0.3, 0.2, 0.1}
	leadWeights    = []float64{1, 0.4, 0.2, 0.1, 0.05, 0.02}
	bassWeights    = []float64{1, 0.6, 0.3, 0.15, 0.08}
	defaultWeights = []float64{1, 1.0 / 2, 1.0 / 3, 1.0 / 4}
)

// modelFor returns the instrument's envelope and harmonic weights. Unknown
// values get the generic voice: four 1/(k+1) partials under unity gain.
func modelFor(inst Instrument) model {
	switch inst {
	case InstrumentPiano:
		return model{adsrEnvelope{attack: 0.01, decay: 0.3, sustain: 0.7, release: 0.5}, pianoWeights}
	case InstrumentStrings:
		return model{stringsEnvelope{}, stringsWeights}
	case InstrumentBrass:
		return model{brassEnvelope{}, brassWeights}
	case InstrumentSynthPad:
		return model{synthEnvelope{shapePad}, padWeights}
	case InstrumentSynthLead:
		return model{synthEnvelope{shapeLead}, leadWeights}
	case InstrumentSynthBass:
		return model{synthEnvelope{shapeBass}, bassWeights}
	default:
		return model{flatEnvelope{}, defaultWeights}
	}
}

// Harmonics returns the number of partials the instrument renders.
func (i Instrument) Harmonics() int {
	return len(modelFor(i).weights)
}
