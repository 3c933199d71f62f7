package openmusic

import (
	"errors"
	"math/rand"
	"time"

	intcompose "github.com/sosehq/openmusic-go/internal/compose"
	intsynth "github.com/sosehq/openmusic-go/internal/synth"
)

// DefaultSampleRate is the output rate used when no other rate is asked
// for.
const DefaultSampleRate = 44100

// MaxDuration caps a single piece at ten minutes. Longer requests are
// clamped, not rejected.
const MaxDuration = 600.0

var (
	// ErrInvalidDuration reports a duration that is NaN or infinite. Out of
	// range finite durations are corrected instead of rejected.
	ErrInvalidDuration = errors.New("duration must be a finite number")

	// ErrInvalidSampleRate reports a non-positive sample rate.
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
)

// Composition rule types live in internal/compose; the aliases keep the
// public surface on the root package.
type (
	Style         = intcompose.Style
	Scale         = intcompose.Scale
	ChordType     = intcompose.ChordType
	TimeSignature = intcompose.TimeSignature
	Note          = intcompose.Note
	Chord         = intcompose.Chord
	Instrument    = intsynth.Instrument
)

const (
	StyleAuto         = intcompose.StyleAuto
	StyleClassical    = intcompose.StyleClassical
	StyleJazz         = intcompose.StyleJazz
	StyleElectronic   = intcompose.StyleElectronic
	StyleAmbient      = intcompose.StyleAmbient
	StyleRock         = intcompose.StyleRock
	StyleFolk         = intcompose.StyleFolk
	StyleWorld        = intcompose.StyleWorld
	StyleExperimental = intcompose.StyleExperimental
)

const (
	ScaleMajor      = intcompose.ScaleMajor
	ScaleMinor      = intcompose.ScaleMinor
	ScaleDorian     = intcompose.ScaleDorian
	ScalePhrygian   = intcompose.ScalePhrygian
	ScaleLydian     = intcompose.ScaleLydian
	ScaleMixolydian = intcompose.ScaleMixolydian
	ScaleLocrian    = intcompose.ScaleLocrian
	ScalePentatonic = intcompose.ScalePentatonic
	ScaleBlues      = intcompose.ScaleBlues
	ScaleChromatic  = intcompose.ScaleChromatic
	ScaleWholeTone  = intcompose.ScaleWholeTone
	ScaleDiminished = intcompose.ScaleDiminished
)

const (
	TimeFourFour   = intcompose.TimeFourFour
	TimeThreeFour  = intcompose.TimeThreeFour
	TimeSixEight   = intcompose.TimeSixEight
	TimeFiveFour   = intcompose.TimeFiveFour
	TimeSevenEight = intcompose.TimeSevenEight
)

const (
	InstrumentPiano     = intsynth.InstrumentPiano
	InstrumentStrings   = intsynth.InstrumentStrings
	InstrumentBrass     = intsynth.InstrumentBrass
	InstrumentSynthPad  = intsynth.InstrumentSynthPad
	InstrumentSynthLead = intsynth.InstrumentSynthLead
	InstrumentSynthBass = intsynth.InstrumentSynthBass
)

// ParseStyle maps a style name to its value. The empty string, "auto" and
// "balanced" select automatic detection; the bool reports whether the name
// was recognized.
func ParseStyle(name string) (Style, bool) {
	return intcompose.ParseStyle(name)
}

// ChordEvent places one chord on the composition timeline. Degree is the
// zero-based scale degree the chord was built on.
type ChordEvent struct {
	Chord  Chord   `yaml:"chord"`
	Degree int     `yaml:"degree"`
	Start  float64 `yaml:"start"`
}

// Composition is the result of one Generate call: the rendered buffer plus
// every musical decision behind it.
type Composition struct {
	SampleRate    int
	Samples       []float32
	Duration      float64
	Style         Style
	Scale         Scale
	Tempo         int
	TimeSignature TimeSignature
	Notes         []Note
	Harmony       []ChordEvent
}

type Option func(*generatorConfig)

type generatorConfig struct {
	rng *rand.Rand
}

func defaultGeneratorConfig() generatorConfig {
	return generatorConfig{}
}

// WithSeed makes the generator deterministic: the same seed, description,
// duration, style and sample rate reproduce the same buffer exactly.
func WithSeed(seed int64) Option {
	return func(cfg *generatorConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRandom supplies the random stream directly. The generator assumes
// sole ownership of it.
func WithRandom(rng *rand.Rand) Option {
	return func(cfg *generatorConfig) {
		cfg.rng = rng
	}
}

// Generator composes and renders short musical pieces. It is cheap to
// construct and carries no state between Generate calls other than its
// random stream, so one seeded Generator produces a reproducible sequence
// of pieces. A Generator is not safe for concurrent use; give each
// goroutine its own.
type Generator struct {
	sampleRate int
	rng        *rand.Rand
}

// NewGenerator returns a generator rendering at the given sample rate.
// Without WithSeed or WithRandom the stream is seeded from the clock.
func NewGenerator(sampleRate int, opts ...Option) (*Generator, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	cfg := defaultGeneratorConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{
		sampleRate: sampleRate,
		rng:        cfg.rng,
	}, nil
}

// SampleRate returns the rate the generator renders at.
func (g *Generator) SampleRate() int {
	return g.sampleRate
}
