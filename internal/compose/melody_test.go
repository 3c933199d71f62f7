package compose

import (
	"math/rand"
	"testing"
)

func TestMelodyOneNotePerPatternEntry(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	ladder := ScaleFrequencies(440, ScaleMinor, 3)
	pattern := []float64{0.5, 0.5, 1, 0.25, 0.25}
	notes := Melody(rng, ladder, pattern, StyleClassical)
	if len(notes) != len(pattern) {
		t.Fatalf("expected %d notes, got %d", len(pattern), len(notes))
	}
	for i, n := range notes {
		if n.Duration != pattern[i] {
			t.Fatalf("note %d: expected duration %f, got %f", i, pattern[i], n.Duration)
		}
	}
}

func TestMelodyPitchesComeFromLadder(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	ladder := ScaleFrequencies(440, ScaleDorian, 3)
	inLadder := make(map[float64]bool, len(ladder))
	for _, f := range ladder {
		inLadder[f] = true
	}
	pattern := make([]float64, 64)
	for i := range pattern {
		pattern[i] = 0.25
	}
	for _, style := range []Style{StyleClassical, StyleJazz, StyleElectronic, StyleFolk} {
		for _, n := range Melody(rng, ladder, pattern, style) {
			if !inLadder[n.Frequency] {
				t.Fatalf("%s: pitch %f not on the ladder", style, n.Frequency)
			}
		}
	}
}

func TestMelodyStartTimesAccumulate(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	ladder := ScaleFrequencies(440, ScaleMajor, 2)
	pattern := []float64{1, 0.5, 0.25}
	notes := Melody(rng, ladder, pattern, StyleFolk)
	wantStarts := []float64{0, 1, 1.5}
	for i, n := range notes {
		if n.Start != wantStarts[i] {
			t.Fatalf("note %d: expected start %f, got %f", i, wantStarts[i], n.Start)
		}
	}
}

func TestMelodyVelocityRange(t *testing.T) {
	rng := rand.New(rand.NewSource(30))
	ladder := ScaleFrequencies(440, ScaleBlues, 3)
	pattern := make([]float64, 200)
	for i := range pattern {
		pattern[i] = 0.125
	}
	for _, n := range Melody(rng, ladder, pattern, StyleJazz) {
		if n.Velocity < 0.5 || n.Velocity >= 1.0 {
			t.Fatalf("velocity %f outside [0.5,1.0)", n.Velocity)
		}
	}
}

func TestMelodyEmptyLadderFallsBackToA4(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	notes := Melody(rng, nil, []float64{1, 1}, StyleAmbient)
	for _, n := range notes {
		if n.Frequency != DefaultPitch {
			t.Fatalf("expected fallback pitch %f, got %f", DefaultPitch, n.Frequency)
		}
	}
}

func TestMelodyDeterministicPerSeed(t *testing.T) {
	ladder := ScaleFrequencies(440, ScaleMajor, 3)
	pattern := []float64{0.5, 0.5, 0.5, 0.5}
	a := Melody(rand.New(rand.NewSource(99)), ladder, pattern, StyleElectronic)
	b := Melody(rand.New(rand.NewSource(99)), ladder, pattern, StyleElectronic)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed diverged at note %d", i)
		}
	}
}

func TestMotionParamsPerStyle(t *testing.T) {
	if m := StyleClassical.Motion(); m.StepProbability != 0.7 || m.MaxLeap != 5 {
		t.Errorf("classical motion: got %+v", m)
	}
	if m := StyleJazz.Motion(); m.StepProbability != 0.5 || m.MaxLeap != 8 {
		t.Errorf("jazz motion: got %+v", m)
	}
	if m := StyleElectronic.Motion(); m.StepProbability != 0.4 || m.MaxLeap != 12 {
		t.Errorf("electronic motion: got %+v", m)
	}
	if m := StyleAmbient.Motion(); m.StepProbability != 0.6 || m.MaxLeap != 6 {
		t.Errorf("default motion: got %+v", m)
	}
}
