package compose

import (
	"math"
	"math/rand"
)

// TimeSignature is one of the closed set of supported meters.
type TimeSignature int

const (
	TimeFourFour TimeSignature = iota
	TimeThreeFour
	TimeSixEight
	TimeFiveFour
	TimeSevenEight
)

// Beats returns the beats per measure and the note value counted as one
// beat.
func (ts TimeSignature) Beats() (perMeasure, unit int) {
	switch ts {
	case TimeThreeFour:
		return 3, 4
	case TimeSixEight:
		return 6, 8
	case TimeFiveFour:
		return 5, 4
	case TimeSevenEight:
		return 7, 8
	default:
		return 4, 4
	}
}

func (ts TimeSignature) String() string {
	switch ts {
	case TimeThreeFour:
		return "3/4"
	case TimeSixEight:
		return "6/8"
	case TimeFiveFour:
		return "5/4"
	case TimeSevenEight:
		return "7/8"
	default:
		return "4/4"
	}
}

// subdivisions are the candidate note lengths in beats: whole, half,
// quarter and eighth fractions of a beat.
var subdivisions = []float64{1, 0.5, 0.25, 0.125}

// dottedScale shortens a duration to three quarters of its value.
const dottedScale = 0.75

// NewRhythmPattern fills one measure with note durations in beats.
// Complexity in [0,1] widens the subdivision pool (two choices below 0.3,
// three below 0.7, all four above) and sets the chance of a dotted value at
// 0.3*complexity. Durations accumulate until the measure is covered, so the
// final entry may overshoot; the sum is always at least the measure length.
func NewRhythmPattern(rng *rand.Rand, ts TimeSignature, complexity float64) []float64 {
	if math.IsNaN(complexity) {
		complexity = 0
	}
	complexity = clamp(complexity, 0, 1)

	pool := subdivisions
	switch {
	case complexity < 0.3:
		pool = subdivisions[:2]
	case complexity < 0.7:
		pool = subdivisions[:3]
	}

	beats, _ := ts.Beats()
	target := float64(beats)
	// Worst case every draw is a dotted eighth; bound the loop there.
	maxNotes := int(target/(subdivisions[len(subdivisions)-1]*dottedScale)) + 1

	pattern := make([]float64, 0, beats*2)
	sum := 0.0
	for sum < target && len(pattern) < maxNotes {
		d := pool[rng.Intn(len(pool))]
		if rng.Float64() < complexity*0.3 {
			d *= dottedScale
		}
		pattern = append(pattern, d)
		sum += d
	}
	return pattern
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
