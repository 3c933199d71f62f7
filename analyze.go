package openmusic

import (
	"fmt"
	"math"
	"strings"

	intcompose "github.com/sosehq/openmusic-go/internal/compose"
)

// defaultDescription stands in for empty or blank input.
const defaultDescription = "simple melody"

// analysis holds every musical decision extracted from a description:
// the inputs the later composition stages run on.
type analysis struct {
	style      Style
	scale      Scale
	tempo      int
	timeSig    TimeSignature
	complexity float64
	duration   float64
}

// styleKeywords are checked in order; the first group with a hit wins, so a
// description mentioning both "jazz" and "synth" comes out jazz.
var styleKeywords = []struct {
	style Style
	words []string
}{
	{StyleClassical, []string{"classical", "orchestra", "symphony"}},
	{StyleJazz, []string{"jazz", "swing", "bebop"}},
	{StyleElectronic, []string{"electronic", "synth", "edm"}},
	{StyleAmbient, []string{"ambient", "atmospheric", "drone"}},
	{StyleRock, []string{"rock", "metal", "punk"}},
	{StyleFolk, []string{"folk", "acoustic", "country"}},
}

// Scale fallback pools. A mood word picks a scale directly; "exotic" draws
// from the exotic pool; anything else draws from the common modes.
var (
	exoticScales  = []Scale{ScalePhrygian, ScaleLocrian, ScaleWholeTone}
	defaultScales = []Scale{ScaleMajor, ScaleMinor, ScaleDorian, ScaleMixolydian}
)

// analyze normalizes the inputs and scans the description for keywords.
// The duration is clamped to (0, MaxDuration]; only NaN and infinity are
// errors. A blank description becomes "simple melody" so generation always
// has something to work with.
func (g *Generator) analyze(description string, duration float64, style Style) (analysis, error) {
	if math.IsNaN(duration) || math.IsInf(duration, 0) {
		return analysis{}, fmt.Errorf("%w: %v", ErrInvalidDuration, duration)
	}
	if duration <= 0 {
		duration = 1
	}
	if duration > MaxDuration {
		duration = MaxDuration
	}
	if strings.TrimSpace(description) == "" {
		description = defaultDescription
	}
	desc := strings.ToLower(description)

	a := analysis{
		style:    style,
		duration: duration,
	}
	if a.style == StyleAuto {
		a.style = g.styleFor(desc)
	}
	a.scale = g.scaleFor(desc)
	a.tempo = g.tempoFor(desc)
	a.timeSig = g.timeSignatureFor(desc)
	a.complexity = 0.7
	if a.style == StyleAmbient {
		a.complexity = 0.3
	}
	return a, nil
}

func (g *Generator) styleFor(desc string) Style {
	for _, entry := range styleKeywords {
		if containsAny(desc, entry.words) {
			return entry.style
		}
	}
	return intcompose.ConcreteStyles[g.rng.Intn(len(intcompose.ConcreteStyles))]
}

func (g *Generator) scaleFor(desc string) Scale {
	switch {
	case containsAny(desc, []string{"bright", "happy", "major"}):
		return ScaleMajor
	case containsAny(desc, []string{"sad", "dark", "minor"}):
		return ScaleMinor
	case containsAny(desc, []string{"modal", "dorian"}):
		return ScaleDorian
	case containsAny(desc, []string{"blues", "bluesy"}):
		return ScaleBlues
	case containsAny(desc, []string{"exotic", "eastern"}):
		return exoticScales[g.rng.Intn(len(exoticScales))]
	default:
		return defaultScales[g.rng.Intn(len(defaultScales))]
	}
}

// tempoFor picks beats per minute from the pacing words. The tempo rides
// along as metadata and drives the MIDI export; the audio render keeps the
// fixed one-second beat.
func (g *Generator) tempoFor(desc string) int {
	switch {
	case strings.Contains(desc, "slow"):
		return 60 + g.rng.Intn(21)
	case strings.Contains(desc, "fast"):
		return 120 + g.rng.Intn(41)
	default:
		return 90 + g.rng.Intn(31)
	}
}

func (g *Generator) timeSignatureFor(desc string) TimeSignature {
	switch {
	case strings.Contains(desc, "waltz"):
		return TimeThreeFour
	case strings.Contains(desc, "complex"):
		if g.rng.Intn(2) == 0 {
			return TimeFiveFour
		}
		return TimeSevenEight
	default:
		return TimeFourFour
	}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
