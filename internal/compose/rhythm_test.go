package compose

import (
	"math"
	"math/rand"
	"testing"
)

func TestRhythmPatternCoversMeasure(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	signatures := []TimeSignature{TimeFourFour, TimeThreeFour, TimeSixEight, TimeFiveFour, TimeSevenEight}
	for _, ts := range signatures {
		for i := 0; i < 100; i++ {
			pattern := NewRhythmPattern(rng, ts, 0.7)
			beats, _ := ts.Beats()
			sum := 0.0
			for _, d := range pattern {
				sum += d
			}
			if sum < float64(beats) {
				t.Fatalf("%s: pattern sums to %f, want >= %d", ts, sum, beats)
			}
		}
	}
}

func TestRhythmPatternLowComplexityUsesLongValues(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 200; i++ {
		for _, d := range NewRhythmPattern(rng, TimeFourFour, 0.1) {
			// Pool is {1, 0.5}, each possibly dotted.
			ok := d == 1 || d == 0.5 || d == 0.75 || d == 0.375
			if !ok {
				t.Fatalf("unexpected duration %f at low complexity", d)
			}
		}
	}
}

func TestRhythmPatternHighComplexityReachesEighths(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	sawShort := false
	for i := 0; i < 200 && !sawShort; i++ {
		for _, d := range NewRhythmPattern(rng, TimeFourFour, 1.0) {
			if d <= 0.125 {
				sawShort = true
				break
			}
		}
	}
	if !sawShort {
		t.Fatal("high complexity never produced an eighth-note value")
	}
}

func TestRhythmPatternDurationsPositive(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 100; i++ {
		for _, d := range NewRhythmPattern(rng, TimeSevenEight, 0.9) {
			if d <= 0 {
				t.Fatalf("non-positive duration %f", d)
			}
		}
	}
}

func TestRhythmPatternHostileComplexity(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for _, c := range []float64{math.NaN(), -3, 42} {
		pattern := NewRhythmPattern(rng, TimeFourFour, c)
		if len(pattern) == 0 {
			t.Fatalf("complexity %f: expected a pattern", c)
		}
	}
}

func TestTimeSignatureBeats(t *testing.T) {
	cases := []struct {
		ts       TimeSignature
		per, div int
	}{
		{TimeFourFour, 4, 4},
		{TimeThreeFour, 3, 4},
		{TimeSixEight, 6, 8},
		{TimeFiveFour, 5, 4},
		{TimeSevenEight, 7, 8},
	}
	for _, c := range cases {
		per, div := c.ts.Beats()
		if per != c.per || div != c.div {
			t.Errorf("%s: expected %d/%d, got %d/%d", c.ts, c.per, c.div, per, div)
		}
	}
}
