package compose

import "math"

// ChordType identifies one of the built-in chord interval stacks.
type ChordType int

const (
	ChordMajor ChordType = iota
	ChordMinor
	ChordDiminished
	ChordAugmented
	ChordMajor7
	ChordMinor7
	ChordDominant7
	ChordSus2
	ChordSus4
	ChordAdd9
)

// chordIntervals maps each chord type to the semitone offsets stacked on
// the root. Offsets may exceed an octave (add9).
var chordIntervals = [...][]int{
	ChordMajor:      {0, 4, 7},
	ChordMinor:      {0, 3, 7},
	ChordDiminished: {0, 3, 6},
	ChordAugmented:  {0, 4, 8},
	ChordMajor7:     {0, 4, 7, 11},
	ChordMinor7:     {0, 3, 7, 10},
	ChordDominant7:  {0, 4, 7, 10},
	ChordSus2:       {0, 2, 7},
	ChordSus4:       {0, 5, 7},
	ChordAdd9:       {0, 4, 7, 14},
}

var chordNames = [...]string{
	ChordMajor:      "major",
	ChordMinor:      "minor",
	ChordDiminished: "diminished",
	ChordAugmented:  "augmented",
	ChordMajor7:     "major7",
	ChordMinor7:     "minor7",
	ChordDominant7:  "dominant7",
	ChordSus2:       "sus2",
	ChordSus4:       "sus4",
	ChordAdd9:       "add9",
}

// Intervals returns the semitone offsets for the chord type. Out-of-range
// values fall back to a major triad.
func (c ChordType) Intervals() []int {
	if c < 0 || int(c) >= len(chordIntervals) {
		c = ChordMajor
	}
	return chordIntervals[c]
}

func (c ChordType) String() string {
	if c < 0 || int(c) >= len(chordNames) {
		return "major"
	}
	return chordNames[c]
}

// Chord is one harmonic event: a root pitch in Hz, the semitone offsets
// stacked on it, how long it sounds in seconds, and how many inversions to
// apply. Inversion is non-negative and wraps modulo the chord size.
type Chord struct {
	Root      float64 `yaml:"root"`
	Intervals []int   `yaml:"intervals,flow"`
	Duration  float64 `yaml:"duration"`
	Inversion int     `yaml:"inversion,omitempty"`
}

// NewChord builds a chord of the given type on a root frequency. The
// interval slice is copied so callers may hold the chord without aliasing
// the shared tables.
func NewChord(root float64, typ ChordType, duration float64, inversion int) Chord {
	return Chord{
		Root:      root,
		Intervals: append([]int(nil), typ.Intervals()...),
		Duration:  duration,
		Inversion: inversion,
	}
}

// Frequencies returns the chord's pitches with the inversion applied. Each
// inversion step doubles the lowest pitch and rotates it to the end, so a
// full cycle of inversions returns to the original voicing an octave up in
// the rotated positions.
func (c Chord) Frequencies() []float64 {
	freqs := make([]float64, len(c.Intervals))
	for i, semis := range c.Intervals {
		freqs[i] = c.Root * math.Pow(2, float64(semis)/12)
	}
	if len(freqs) == 0 || c.Inversion <= 0 {
		return freqs
	}
	for n := c.Inversion % len(freqs); n > 0; n-- {
		low := freqs[0] * 2
		copy(freqs, freqs[1:])
		freqs[len(freqs)-1] = low
	}
	return freqs
}
