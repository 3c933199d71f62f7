package compose

import "strings"

// Style identifies one of the closed set of musical styles the composer
// understands. StyleAuto is not a playable style: it asks the analyzer to
// infer one from the description text, falling back to a random draw.
type Style int

const (
	StyleAuto Style = iota
	StyleClassical
	StyleJazz
	StyleElectronic
	StyleAmbient
	StyleRock
	StyleFolk
	StyleWorld
	StyleExperimental
)

// ConcreteStyles lists every style a piece can actually be composed in,
// i.e. all values except StyleAuto. The analyzer draws uniformly from this
// list when a description matches no style keyword.
var ConcreteStyles = [...]Style{
	StyleClassical,
	StyleJazz,
	StyleElectronic,
	StyleAmbient,
	StyleRock,
	StyleFolk,
	StyleWorld,
	StyleExperimental,
}

var styleNames = [...]string{
	StyleAuto:         "auto",
	StyleClassical:    "classical",
	StyleJazz:         "jazz",
	StyleElectronic:   "electronic",
	StyleAmbient:      "ambient",
	StyleRock:         "rock",
	StyleFolk:         "folk",
	StyleWorld:        "world",
	StyleExperimental: "experimental",
}

func (s Style) String() string {
	if s < 0 || int(s) >= len(styleNames) {
		return "auto"
	}
	return styleNames[s]
}

// ParseStyle maps a style name to its value. The empty string, "auto" and
// "balanced" all select automatic style detection; the bool reports whether
// the name was recognized as opposed to defaulted.
func ParseStyle(name string) (Style, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "balanced" {
		return StyleAuto, true
	}
	for i, n := range styleNames {
		if name == n {
			return Style(i), true
		}
	}
	return StyleAuto, false
}

// MotionParams is the per-style melodic movement rule: the probability of
// stepwise motion and the largest allowed leap, in scale steps.
type MotionParams struct {
	StepProbability float64
	MaxLeap         int
}

// Motion returns the melody movement parameters for the style. Styles
// without a rule of their own share the default moderate profile.
func (s Style) Motion() MotionParams {
	switch s {
	case StyleClassical:
		return MotionParams{StepProbability: 0.7, MaxLeap: 5}
	case StyleJazz:
		return MotionParams{StepProbability: 0.5, MaxLeap: 8}
	case StyleElectronic:
		return MotionParams{StepProbability: 0.4, MaxLeap: 12}
	default:
		return MotionParams{StepProbability: 0.6, MaxLeap: 6}
	}
}
