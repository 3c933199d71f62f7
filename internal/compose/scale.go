package compose

import "math"

// Scale identifies one of the built-in scale and mode interval sets.
type Scale int

const (
	ScaleMajor Scale = iota
	ScaleMinor
	ScaleDorian
	ScalePhrygian
	ScaleLydian
	ScaleMixolydian
	ScaleLocrian
	ScalePentatonic
	ScaleBlues
	ScaleChromatic
	ScaleWholeTone
	ScaleDiminished
)

// scaleIntervals maps each scale to its ascending semitone offsets within
// one octave.
var scaleIntervals = [...][]int{
	ScaleMajor:      {0, 2, 4, 5, 7, 9, 11},
	ScaleMinor:      {0, 2, 3, 5, 7, 8, 10},
	ScaleDorian:     {0, 2, 3, 5, 7, 9, 10},
	ScalePhrygian:   {0, 1, 3, 5, 7, 8, 10},
	ScaleLydian:     {0, 2, 4, 6, 7, 9, 11},
	ScaleMixolydian: {0, 2, 4, 5, 7, 9, 10},
	ScaleLocrian:    {0, 1, 3, 5, 6, 8, 10},
	ScalePentatonic: {0, 2, 4, 7, 9},
	ScaleBlues:      {0, 3, 5, 6, 7, 10},
	ScaleChromatic:  {0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
	ScaleWholeTone:  {0, 2, 4, 6, 8, 10},
	ScaleDiminished: {0, 2, 3, 5, 6, 8, 9, 11},
}

var scaleNames = [...]string{
	ScaleMajor:      "major",
	ScaleMinor:      "minor",
	ScaleDorian:     "dorian",
	ScalePhrygian:   "phrygian",
	ScaleLydian:     "lydian",
	ScaleMixolydian: "mixolydian",
	ScaleLocrian:    "locrian",
	ScalePentatonic: "pentatonic",
	ScaleBlues:      "blues",
	ScaleChromatic:  "chromatic",
	ScaleWholeTone:  "whole_tone",
	ScaleDiminished: "diminished",
}

// Intervals returns the semitone offsets of the scale. Out-of-range values
// fall back to the major scale so a pitch ladder can always be built.
func (s Scale) Intervals() []int {
	if s < 0 || int(s) >= len(scaleIntervals) {
		s = ScaleMajor
	}
	return scaleIntervals[s]
}

func (s Scale) String() string {
	if s < 0 || int(s) >= len(scaleNames) {
		return "major"
	}
	return scaleNames[s]
}

// Bright reports whether chords built on this scale default to major
// quality. Everything outside the two bright scales harmonizes minor.
func (s Scale) Bright() bool {
	return s == ScaleMajor || s == ScaleLydian
}

// ScaleFrequencies expands a scale into a pitch ladder spanning the given
// number of octaves: for octave o and semitone offset i the pitch is
// rootFreq * 2^(o + i/12). Entries are ordered low to high, one octave at
// a time, so adjacent indices are adjacent scale degrees.
func ScaleFrequencies(rootFreq float64, scale Scale, octaves int) []float64 {
	intervals := scale.Intervals()
	freqs := make([]float64, 0, octaves*len(intervals))
	for o := 0; o < octaves; o++ {
		for _, semis := range intervals {
			freqs = append(freqs, rootFreq*math.Pow(2, float64(o)+float64(semis)/12))
		}
	}
	return freqs
}
