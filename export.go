package openmusic

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
	"gopkg.in/yaml.v3"
)

// EncodeWAVFloat32LE wraps samples in a 44-byte RIFF header as IEEE float
// (format 3) PCM. Samples are written verbatim; for multi-channel data they
// must already be interleaved.
func EncodeWAVFloat32LE(samples []float32, sampleRate int, channels int) []byte {
	dataSize := len(samples) * 4
	byteRate := sampleRate * channels * 4
	blockAlign := channels * 4
	chunkSize := 36 + dataSize
	out := make([]byte, 44+dataSize)
	copy(out[0:], []byte("RIFF"))
	binary.LittleEndian.PutUint32(out[4:], uint32(chunkSize))
	copy(out[8:], []byte("WAVE"))
	copy(out[12:], []byte("fmt "))
	binary.LittleEndian.PutUint32(out[16:], 16)
	binary.LittleEndian.PutUint16(out[20:], 3)
	binary.LittleEndian.PutUint16(out[22:], uint16(channels))
	binary.LittleEndian.PutUint32(out[24:], uint32(sampleRate))
	binary.LittleEndian.PutUint32(out[28:], uint32(byteRate))
	binary.LittleEndian.PutUint16(out[32:], uint16(blockAlign))
	binary.LittleEndian.PutUint16(out[34:], 32)
	copy(out[36:], []byte("data"))
	binary.LittleEndian.PutUint32(out[40:], uint32(dataSize))
	for i, s := range samples {
		binary.LittleEndian.PutUint32(out[44+i*4:], math.Float32bits(s))
	}
	return out
}

// EncodeWAVPCM16LE converts samples to 16-bit integer PCM (format 1) under
// the same 44-byte header. Samples outside [-1,1] are clipped.
func EncodeWAVPCM16LE(samples []float32, sampleRate int, channels int) []byte {
	dataSize := len(samples) * 2
	byteRate := sampleRate * channels * 2
	blockAlign := channels * 2
	chunkSize := 36 + dataSize
	out := make([]byte, 44+dataSize)
	copy(out[0:], []byte("RIFF"))
	binary.LittleEndian.PutUint32(out[4:], uint32(chunkSize))
	copy(out[8:], []byte("WAVE"))
	copy(out[12:], []byte("fmt "))
	binary.LittleEndian.PutUint32(out[16:], 16)
	binary.LittleEndian.PutUint16(out[20:], 1)
	binary.LittleEndian.PutUint16(out[22:], uint16(channels))
	binary.LittleEndian.PutUint32(out[24:], uint32(sampleRate))
	binary.LittleEndian.PutUint32(out[28:], uint32(byteRate))
	binary.LittleEndian.PutUint16(out[32:], uint16(blockAlign))
	binary.LittleEndian.PutUint16(out[34:], 16)
	copy(out[36:], []byte("data"))
	binary.LittleEndian.PutUint32(out[40:], uint32(dataSize))
	for i, s := range samples {
		v := int(math.Round(float64(s) * 32767))
		if v > 32767 {
			v = 32767
		} else if v < -32768 {
			v = -32768
		}
		binary.LittleEndian.PutUint16(out[44+i*2:], uint16(int16(v)))
	}
	return out
}

// WAV returns the rendered buffer as a mono float32 WAV file.
func (c *Composition) WAV() []byte {
	return EncodeWAVFloat32LE(c.Samples, c.SampleRate, 1)
}

// WAVPCM16 returns the rendered buffer as a mono 16-bit PCM WAV file, the
// format small players expect.
func (c *Composition) WAVPCM16() []byte {
	return EncodeWAVPCM16LE(c.Samples, c.SampleRate, 1)
}

// Score is the serializable snapshot of a composition's musical decisions,
// everything except the samples.
type Score struct {
	Style         string       `yaml:"style"`
	Scale         string       `yaml:"scale"`
	Tempo         int          `yaml:"tempo"`
	TimeSignature string       `yaml:"time_signature"`
	Duration      float64      `yaml:"duration"`
	SampleRate    int          `yaml:"sample_rate"`
	Notes         []Note       `yaml:"notes"`
	Harmony       []ChordEvent `yaml:"harmony"`
}

// Score returns the composition's decisions in exportable form.
func (c *Composition) Score() Score {
	return Score{
		Style:         c.Style.String(),
		Scale:         c.Scale.String(),
		Tempo:         c.Tempo,
		TimeSignature: c.TimeSignature.String(),
		Duration:      c.Duration,
		SampleRate:    c.SampleRate,
		Notes:         c.Notes,
		Harmony:       c.Harmony,
	}
}

// ScoreYAML marshals the score snapshot.
func (c *Composition) ScoreYAML() ([]byte, error) {
	out, err := yaml.Marshal(c.Score())
	if err != nil {
		return nil, fmt.Errorf("marshal score: %w", err)
	}
	return out, nil
}

// midiTicksPerQuarter is the SMF resolution.
const midiTicksPerQuarter = 480

// timedMessage is a MIDI message at an absolute tick, used to assemble
// tracks before converting to delta times.
type timedMessage struct {
	tick uint32
	off  bool
	msg  midi.Message
}

// SMF renders the composition as a two-track Standard MIDI File: melody on
// channel 0, harmony on channel 1. The rendered audio keeps a fixed
// one-second beat, but the exported score is symbolic, so time maps one
// second to one quarter note and the file carries the analyzed tempo and
// meter. Playing the MIDI therefore realizes the tempo the analysis chose.
func (c *Composition) SMF() (*smf.SMF, error) {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(midiTicksPerQuarter)

	num, denom := c.TimeSignature.Beats()

	var melody smf.Track
	melody.Add(0, smf.MetaTrackSequenceName("melody"))
	melody.Add(0, smf.MetaTempo(float64(c.Tempo)))
	melody.Add(0, smf.MetaMeter(uint8(num), uint8(denom)))
	addTimed(&melody, melodyMessages(c.Notes))
	melody.Close(0)
	if err := s.Add(melody); err != nil {
		return nil, fmt.Errorf("add melody track: %w", err)
	}

	var harmony smf.Track
	harmony.Add(0, smf.MetaTrackSequenceName("harmony"))
	addTimed(&harmony, harmonyMessages(c.Harmony))
	harmony.Close(0)
	if err := s.Add(harmony); err != nil {
		return nil, fmt.Errorf("add harmony track: %w", err)
	}
	return s, nil
}

// MIDI returns the composition as SMF bytes.
func (c *Composition) MIDI() ([]byte, error) {
	s, err := c.SMF()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encode midi: %w", err)
	}
	return buf.Bytes(), nil
}

func melodyMessages(notes []Note) []timedMessage {
	msgs := make([]timedMessage, 0, len(notes)*2)
	for _, n := range notes {
		key := frequencyToKey(n.Frequency)
		vel := velocityToMIDI(n.Velocity)
		on := secondsToTicks(n.Start)
		off := secondsToTicks(n.Start + n.Duration)
		if off <= on {
			off = on + 1
		}
		msgs = append(msgs,
			timedMessage{tick: on, msg: midi.NoteOn(0, key, vel)},
			timedMessage{tick: off, off: true, msg: midi.NoteOff(0, key)},
		)
	}
	return msgs
}

func harmonyMessages(harmony []ChordEvent) []timedMessage {
	msgs := make([]timedMessage, 0, len(harmony)*8)
	for _, ev := range harmony {
		on := secondsToTicks(ev.Start)
		off := secondsToTicks(ev.Start + ev.Chord.Duration)
		if off <= on {
			off = on + 1
		}
		for _, freq := range ev.Chord.Frequencies() {
			key := frequencyToKey(freq)
			msgs = append(msgs,
				timedMessage{tick: on, msg: midi.NoteOn(1, key, velocityToMIDI(chordVelocity))},
				timedMessage{tick: off, off: true, msg: midi.NoteOff(1, key)},
			)
		}
	}
	return msgs
}

// addTimed sorts messages by tick, note-offs before note-ons on ties so
// repeated pitches retrigger cleanly, and appends them as delta times.
func addTimed(tr *smf.Track, msgs []timedMessage) {
	sort.SliceStable(msgs, func(i, j int) bool {
		if msgs[i].tick != msgs[j].tick {
			return msgs[i].tick < msgs[j].tick
		}
		return msgs[i].off && !msgs[j].off
	})
	last := uint32(0)
	for _, m := range msgs {
		tr.Add(m.tick-last, m.msg)
		last = m.tick
	}
}

func secondsToTicks(seconds float64) uint32 {
	if seconds < 0 {
		return 0
	}
	return uint32(math.Round(seconds * midiTicksPerQuarter))
}

// frequencyToKey maps a pitch to the nearest MIDI key, clamped to 0..127.
func frequencyToKey(freq float64) uint8 {
	if freq <= 0 {
		return 0
	}
	key := int(math.Round(69 + 12*math.Log2(freq/440)))
	if key < 0 {
		key = 0
	}
	if key > 127 {
		key = 127
	}
	return uint8(key)
}

// velocityToMIDI maps a [0,1] loudness to MIDI 1..127. Audible notes never
// round down to zero, which would read as a note-off.
func velocityToMIDI(v float64) uint8 {
	m := int(math.Round(v * 127))
	if m < 1 {
		m = 1
	}
	if m > 127 {
		m = 127
	}
	return uint8(m)
}
