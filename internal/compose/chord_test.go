package compose

import (
	"math"
	"testing"
)

func TestChordFrequenciesMajorTriad(t *testing.T) {
	ch := NewChord(440, ChordMajor, 1, 0)
	freqs := ch.Frequencies()
	if len(freqs) != 3 {
		t.Fatalf("expected 3 pitches, got %d", len(freqs))
	}
	want := []float64{
		440,
		440 * math.Pow(2, 4.0/12),
		440 * math.Pow(2, 7.0/12),
	}
	for i := range want {
		if math.Abs(freqs[i]-want[i]) > 1e-9 {
			t.Fatalf("pitch %d: expected %f, got %f", i, want[i], freqs[i])
		}
	}
}

func TestChordInversionRotatesLowestUpOctave(t *testing.T) {
	root := NewChord(440, ChordMajor, 1, 0).Frequencies()
	first := NewChord(440, ChordMajor, 1, 1).Frequencies()
	if len(first) != 3 {
		t.Fatalf("expected 3 pitches, got %d", len(first))
	}
	// First inversion: third and fifth keep their pitch, root moves up an
	// octave to the top of the voicing.
	if math.Abs(first[0]-root[1]) > 1e-9 || math.Abs(first[1]-root[2]) > 1e-9 {
		t.Fatalf("expected rotation, got %v from %v", first, root)
	}
	if math.Abs(first[2]-root[0]*2) > 1e-9 {
		t.Fatalf("expected doubled root on top, got %f", first[2])
	}
}

func TestChordInversionWrapsModuloSize(t *testing.T) {
	first := NewChord(440, ChordMinor, 1, 1).Frequencies()
	fourth := NewChord(440, ChordMinor, 1, 4).Frequencies()
	for i := range first {
		if math.Abs(first[i]-fourth[i]) > 1e-9 {
			t.Fatalf("inversion 4 of a triad should equal inversion 1, got %v vs %v", fourth, first)
		}
	}
}

func TestChordSeventhAndAdd9Sizes(t *testing.T) {
	cases := []struct {
		typ  ChordType
		want int
	}{
		{ChordMajor7, 4},
		{ChordMinor7, 4},
		{ChordDominant7, 4},
		{ChordSus2, 3},
		{ChordAdd9, 4},
	}
	for _, c := range cases {
		if got := len(c.typ.Intervals()); got != c.want {
			t.Errorf("%s: expected %d intervals, got %d", c.typ, c.want, got)
		}
	}
}

func TestChordAdd9ExceedsOctave(t *testing.T) {
	freqs := NewChord(220, ChordAdd9, 1, 0).Frequencies()
	top := freqs[len(freqs)-1]
	if top <= 440 {
		t.Fatalf("add9 top pitch should exceed one octave above the root, got %f", top)
	}
}

func TestNewChordCopiesIntervals(t *testing.T) {
	ch := NewChord(440, ChordMajor, 1, 0)
	ch.Intervals[0] = 99
	if ChordMajor.Intervals()[0] != 0 {
		t.Fatal("mutating a chord must not corrupt the shared interval table")
	}
}
