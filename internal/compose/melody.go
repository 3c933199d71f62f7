package compose

import "math/rand"

// Note is one melodic event. Frequency is the fundamental in Hz, Duration
// and Start are in seconds, Velocity is a loudness scalar in [0,1].
type Note struct {
	Frequency float64 `yaml:"frequency"`
	Duration  float64 `yaml:"duration"`
	Velocity  float64 `yaml:"velocity"`
	Start     float64 `yaml:"start"`
}

// DefaultPitch is the fallback fundamental (A4) used when a melody is asked
// to walk an empty pitch ladder.
const DefaultPitch = 440.0

// Melody walks the pitch ladder under the rhythm pattern, one note per
// pattern entry. The walk starts somewhere in the lower half of the ladder
// and moves by the style's motion rule: a step of one degree with the
// style's step probability, otherwise a leap of 2..MaxLeap degrees, either
// direction equally likely. The position is clamped to the ladder bounds,
// never wrapped, so melodies park on the edge rather than jumping octaves.
// Velocities are drawn uniformly from [0.5,1.0).
func Melody(rng *rand.Rand, ladder []float64, pattern []float64, style Style) []Note {
	if len(ladder) == 0 {
		ladder = []float64{DefaultPitch}
	}
	motion := style.Motion()
	idx := rng.Intn(len(ladder)/2 + 1)

	notes := make([]Note, 0, len(pattern))
	start := 0.0
	for _, dur := range pattern {
		if rng.Float64() < motion.StepProbability {
			idx += direction(rng)
		} else {
			idx += (2 + rng.Intn(motion.MaxLeap-1)) * direction(rng)
		}
		if idx < 0 {
			idx = 0
		}
		if idx >= len(ladder) {
			idx = len(ladder) - 1
		}
		notes = append(notes, Note{
			Frequency: ladder[idx],
			Duration:  dur,
			Velocity:  0.5 + rng.Float64()*0.5,
			Start:     start,
		})
		start += dur
	}
	return notes
}

func direction(rng *rand.Rand) int {
	if rng.Intn(2) == 0 {
		return -1
	}
	return 1
}
