package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	ebitaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

// BufferReader streams a finite mono buffer as interleaved stereo f32le
// bytes, the format NewPlayerF32 consumes. Each mono sample is duplicated
// into both channels. Read returns io.EOF once the buffer is exhausted.
type BufferReader struct {
	mu      sync.Mutex
	samples []float32
	pos     int
}

func NewBufferReader(samples []float32) *BufferReader {
	return &BufferReader{samples: samples}
}

func (r *BufferReader) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	frames := len(p) / 8
	if frames == 0 {
		return 0, nil
	}
	if r.pos >= len(r.samples) {
		return 0, io.EOF
	}
	n := 0
	for f := 0; f < frames && r.pos < len(r.samples); f++ {
		u := math.Float32bits(r.samples[r.pos])
		binary.LittleEndian.PutUint32(p[n:], u)
		binary.LittleEndian.PutUint32(p[n+4:], u)
		n += 8
		r.pos++
	}
	return n, nil
}

func (r *BufferReader) Close() error { return nil }

// Remaining reports how many mono samples are left to stream.
func (r *BufferReader) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.samples) - r.pos
}

// Player plays one rendered buffer through the process-wide audio device.
type Player struct {
	player *ebitaudio.Player
	reader io.ReadCloser
	length time.Duration
}

var (
	audioContextOnce sync.Once
	audioContext     *ebitaudio.Context
	audioSampleRate  int
)

// sharedAudioContext initializes the device once. The underlying context
// cannot be reopened at a different rate, so later mismatches error.
func sharedAudioContext(sampleRate int) (*ebitaudio.Context, error) {
	audioContextOnce.Do(func() {
		audioSampleRate = sampleRate
		audioContext = ebitaudio.NewContext(sampleRate)
	})
	if audioSampleRate != sampleRate {
		return nil, fmt.Errorf("audio context already initialized at %d Hz (requested %d Hz)", audioSampleRate, sampleRate)
	}
	return audioContext, nil
}

// NewPlayer prepares a rendered buffer for playback. The buffer is not
// copied; the caller must not mutate it while the player is live.
func NewPlayer(sampleRate int, samples []float32) (*Player, error) {
	ctx, err := sharedAudioContext(sampleRate)
	if err != nil {
		return nil, err
	}
	reader := NewBufferReader(samples)
	pl, err := ctx.NewPlayerF32(reader)
	if err != nil {
		return nil, err
	}
	return &Player{
		player: pl,
		reader: reader,
		length: time.Duration(float64(len(samples)) / float64(sampleRate) * float64(time.Second)),
	}, nil
}

func (p *Player) Play()  { p.player.Play() }
func (p *Player) Pause() { p.player.Pause() }
func (p *Player) IsPlaying() bool {
	return p.player.IsPlaying()
}

// Position returns the current playback position (what the listener
// actually hears).
func (p *Player) Position() time.Duration {
	return p.player.Position()
}

// Length returns the total duration of the buffer.
func (p *Player) Length() time.Duration {
	return p.length
}

func (p *Player) Stop() error {
	p.player.Pause()
	p.player.Close()
	return p.reader.Close()
}
