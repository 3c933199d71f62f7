package openmusic

import (
	"math"
	"math/rand"

	"github.com/viterin/vek/vek32"

	intcompose "github.com/sosehq/openmusic-go/internal/compose"
	inteffects "github.com/sosehq/openmusic-go/internal/effects"
	intsynth "github.com/sosehq/openmusic-go/internal/synth"
)

const (
	// rootFrequency anchors every pitch ladder at A4.
	rootFrequency = 440.0
	// scaleOctaves is the ladder span in octaves.
	scaleOctaves = 3
	// melodyGain and chordGain set the mix balance before normalization.
	melodyGain = 0.6
	chordGain  = 0.4
	// chordVelocity is the fixed loudness of harmony notes.
	chordVelocity = 0.3
	// peakTarget is the absolute peak after normalization.
	peakTarget = 0.8
	// notesPerChord sets the harmonic rhythm: one chord per four melody
	// notes.
	notesPerChord = 4
)

// Generate composes and renders one piece. The description steers style,
// scale, tempo and meter through keyword rules; duration is clamped to
// (0, MaxDuration] seconds; StyleAuto lets the keywords, or failing them a
// random draw, pick the style. Malformed input is corrected rather than
// rejected wherever a correction exists, so the only error is a NaN or
// infinite duration.
//
// The returned buffer is mono float32, normalized to a 0.8 peak, of exactly
// round(duration*sampleRate) samples. Note and chord tails that would cross
// the end are truncated.
func (g *Generator) Generate(description string, duration float64, style Style) (*Composition, error) {
	a, err := g.analyze(description, duration, style)
	if err != nil {
		return nil, err
	}

	// One bar of rhythm, tiled out to roughly cover the duration, walked
	// into a melody over a three octave ladder.
	ladder := intcompose.ScaleFrequencies(rootFrequency, a.scale, scaleOctaves)
	pattern := intcompose.NewRhythmPattern(g.rng, a.timeSig, a.complexity)
	tiled := tilePattern(pattern, a.duration)
	melody := intcompose.Melody(g.rng, ladder, tiled, a.style)

	progLen := len(melody) / notesPerChord
	if progLen < 1 {
		progLen = 1
	}
	progression := intcompose.Progression(g.rng, a.style, progLen)

	buf := make([]float32, int(math.Round(a.duration*float64(g.sampleRate))))
	g.mixMelody(buf, melody, a.style)
	harmony := g.buildHarmony(progression, ladder, a)
	g.mixHarmony(buf, harmony)

	styleEffects(a.style).Apply(buf, g.sampleRate)
	normalize(buf)

	return &Composition{
		SampleRate:    g.sampleRate,
		Samples:       buf,
		Duration:      a.duration,
		Style:         a.style,
		Scale:         a.scale,
		Tempo:         a.tempo,
		TimeSignature: a.timeSig,
		Notes:         melody,
		Harmony:       harmony,
	}, nil
}

// tilePattern repeats one bar of rhythm until it roughly covers the piece:
// int(duration/barLength)+1 copies, truncated to int(duration*2) entries.
// Coverage is deliberately approximate; the render stage clips anything
// past the buffer. A degenerate bar falls back to two half-beat hits.
func tilePattern(pattern []float64, duration float64) []float64 {
	barLength := 0.0
	for _, d := range pattern {
		barLength += d
	}
	if barLength <= 0 {
		pattern = []float64{0.5, 0.5}
		barLength = 1
	}
	reps := int(duration/barLength) + 1
	tiled := make([]float64, 0, reps*len(pattern))
	for i := 0; i < reps; i++ {
		tiled = append(tiled, pattern...)
	}
	if limit := int(duration * 2); len(tiled) > limit {
		tiled = tiled[:limit]
	}
	return tiled
}

// mixMelody renders each melody note and adds it into buf at the melody
// gain. The write cursor advances by whole samples per note; once it passes
// the end the remaining notes are dropped.
func (g *Generator) mixMelody(buf []float32, melody []Note, style Style) {
	cursor := 0
	for _, note := range melody {
		if cursor >= len(buf) {
			break
		}
		rendered := intsynth.Render(g.rng, note, g.melodyInstrument(style), g.sampleRate)
		mixAt(buf, rendered, cursor, melodyGain)
		cursor += int(note.Duration * float64(g.sampleRate))
	}
}

// melodyInstrument picks the voice for one melody note. Classical and jazz
// alternate two acoustic voices, electronic alternates two synth voices,
// everything else speaks piano.
func (g *Generator) melodyInstrument(style Style) Instrument {
	switch style {
	case StyleClassical:
		return pickInstrument(g.rng, intsynth.InstrumentPiano, intsynth.InstrumentStrings)
	case StyleJazz:
		return pickInstrument(g.rng, intsynth.InstrumentPiano, intsynth.InstrumentBrass)
	case StyleElectronic:
		return pickInstrument(g.rng, intsynth.InstrumentSynthLead, intsynth.InstrumentSynthPad)
	default:
		return intsynth.InstrumentPiano
	}
}

func pickInstrument(rng *rand.Rand, a, b Instrument) Instrument {
	if rng.Intn(2) == 0 {
		return a
	}
	return b
}

// jazzChords are the seventh qualities jazz harmony draws from.
var jazzChords = []ChordType{
	intcompose.ChordMajor7,
	intcompose.ChordMinor7,
	intcompose.ChordDominant7,
}

// buildHarmony turns the degree sequence into placed chords, dividing the
// piece evenly among them. Jazz colors every chord with a random seventh;
// other styles build triads whose quality follows the scale brightness.
func (g *Generator) buildHarmony(progression []int, ladder []float64, a analysis) []ChordEvent {
	if len(progression) == 0 {
		return nil
	}
	chordDur := a.duration / float64(len(progression))
	events := make([]ChordEvent, 0, len(progression))
	for i, degree := range progression {
		root := ladder[degree%len(ladder)]
		typ := intcompose.ChordMajor
		if !a.scale.Bright() {
			typ = intcompose.ChordMinor
		}
		if a.style == StyleJazz {
			typ = jazzChords[g.rng.Intn(len(jazzChords))]
		}
		events = append(events, ChordEvent{
			Chord:  intcompose.NewChord(root, typ, chordDur, 0),
			Degree: degree,
			Start:  float64(i) * chordDur,
		})
	}
	return events
}

// mixHarmony renders every chord pitch on the synth pad and adds it at the
// chord gain from the chord's start offset.
func (g *Generator) mixHarmony(buf []float32, harmony []ChordEvent) {
	for _, ev := range harmony {
		start := int(ev.Start * float64(g.sampleRate))
		if start >= len(buf) {
			break
		}
		for _, freq := range ev.Chord.Frequencies() {
			note := Note{
				Frequency: freq,
				Duration:  ev.Chord.Duration,
				Velocity:  chordVelocity,
				Start:     ev.Start,
			}
			rendered := intsynth.Render(g.rng, note, intsynth.InstrumentSynthPad, g.sampleRate)
			mixAt(buf, rendered, start, chordGain)
		}
	}
}

// mixAt adds gain-scaled src into dst starting at offset, clipping at the
// dst boundary.
func mixAt(dst, src []float32, offset int, gain float32) {
	if offset < 0 || offset >= len(dst) || len(src) == 0 {
		return
	}
	end := offset + len(src)
	if end > len(dst) {
		end = len(dst)
	}
	scaled := vek32.MulNumber(src[:end-offset], gain)
	vek32.Add_Inplace(dst[offset:end], scaled)
}

// styleEffects maps a style to its post-processing preset. Most styles
// render dry.
func styleEffects(style Style) inteffects.Settings {
	switch style {
	case StyleAmbient:
		return inteffects.Settings{Reverb: 0.4, Chorus: 0.2}
	case StyleElectronic:
		return inteffects.Settings{Chorus: 0.3, Distortion: 0.1}
	case StyleClassical:
		return inteffects.Settings{Reverb: 0.2}
	default:
		return inteffects.Settings{}
	}
}

// normalize scales the buffer so its absolute peak sits at peakTarget.
// Silence stays silent.
func normalize(buf []float32) {
	if len(buf) == 0 {
		return
	}
	peak := vek32.Max(vek32.Abs(buf))
	if peak > 0 {
		vek32.MulNumber_Inplace(buf, peakTarget/peak)
	}
}
