package effects

import (
	"math"
	"testing"
)

func TestReverbEchoAppearsAfterDelay(t *testing.T) {
	r := NewReverb(44100, 0.5)
	out := r.Process(1.0)
	if out != 1.0 {
		t.Fatalf("dry sample should pass through unchanged, got %f", out)
	}
	// The echo tap sits 50ms back: 2205 samples at 44100Hz.
	for i := 0; i < 2204; i++ {
		if out := r.Process(0); out != 0 {
			t.Fatalf("sample %d: expected silence before the tap, got %f", i, out)
		}
	}
	if out := r.Process(0); math.Abs(float64(out)-0.5) > 1e-6 {
		t.Fatalf("expected 0.5 echo at the tap, got %f", out)
	}
}

func TestReverbHasNoFeedbackTail(t *testing.T) {
	r := NewReverb(44100, 0.9)
	r.Process(1.0)
	// One echo only: after two delay periods the output stays silent.
	var second float32
	for i := 0; i < 4410; i++ {
		second = r.Process(0)
	}
	if second != 0 {
		t.Fatalf("expected the echo to die after one pass, got %f", second)
	}
}

func TestChorusTapLevelModulates(t *testing.T) {
	c := NewChorus(44100, 0.5)
	c.Process(1.0)
	delay := int(chorusDelay * 44100)
	for i := 0; i < delay-1; i++ {
		c.Process(0)
	}
	out := c.Process(0)
	// Tap level is amount*(1 +- depth) around 0.5.
	if math.Abs(float64(out)-0.5) > 0.01 {
		t.Fatalf("expected ~0.5 tap, got %f", out)
	}
}

func TestChorusPitchStaysPut(t *testing.T) {
	// A constant input must produce a constant-plus-wobble output, never a
	// resampled (pitch-bent) one: successive outputs differ only by the
	// small level modulation.
	c := NewChorus(44100, 0.3)
	var prev float32
	for i := 0; i < 2000; i++ {
		out := c.Process(1.0)
		if i > 1000 && math.Abs(float64(out-prev)) > 0.01 {
			t.Fatalf("sample %d: output jumped from %f to %f", i, prev, out)
		}
		prev = out
	}
}

func TestDistortionBoundsOutput(t *testing.T) {
	d := NewDistortion(1.0)
	for _, x := range []float32{-10, -1, -0.5, 0, 0.5, 1, 10} {
		out := d.Process(x)
		if math.Abs(float64(out)) > 0.5+1e-6 {
			t.Fatalf("input %f: output %f exceeds the post-gain bound", x, out)
		}
	}
	if d.Process(0) != 0 {
		t.Error("zero input should stay zero")
	}
}

func TestDistortionDriveShapesCurve(t *testing.T) {
	soft := NewDistortion(0.1)
	hard := NewDistortion(1.0)
	// Hard drive saturates: the ratio of outputs at 0.9 vs 0.1 input is
	// much closer to 1 than for soft drive.
	softRatio := soft.Process(0.9) / soft.Process(0.1)
	hardRatio := hard.Process(0.9) / hard.Process(0.1)
	if hardRatio >= softRatio {
		t.Fatalf("expected harder saturation, soft=%f hard=%f", softRatio, hardRatio)
	}
}

func TestChainOrderAndLen(t *testing.T) {
	s := Settings{Reverb: 0.2, Chorus: 0.3, Distortion: 0.1}
	chain := s.Chain(44100)
	if chain.Len() != 3 {
		t.Fatalf("expected 3 effects, got %d", chain.Len())
	}
	if _, ok := chain.effects[0].(*Reverb); !ok {
		t.Error("reverb should run first")
	}
	if _, ok := chain.effects[1].(*Chorus); !ok {
		t.Error("chorus should run second")
	}
	if _, ok := chain.effects[2].(*Distortion); !ok {
		t.Error("distortion should run last")
	}
}

func TestSettingsZeroValueBypasses(t *testing.T) {
	var s Settings
	if s.Active() {
		t.Fatal("zero settings should be inactive")
	}
	buf := []float32{0.1, -0.2, 0.3}
	want := []float32{0.1, -0.2, 0.3}
	s.Apply(buf, 44100)
	for i := range buf {
		if buf[i] != want[i] {
			t.Fatalf("sample %d changed under bypass: %f", i, buf[i])
		}
	}
}

func TestSettingsApplyPreservesLength(t *testing.T) {
	s := Settings{Reverb: 0.4, Chorus: 0.2}
	buf := make([]float32, 4410)
	buf[0] = 1
	s.Apply(buf, 44100)
	if len(buf) != 4410 {
		t.Fatalf("length changed to %d", len(buf))
	}
	var peak float64
	for _, x := range buf {
		if a := math.Abs(float64(x)); a > peak {
			peak = a
		}
	}
	if peak < 0.9 {
		t.Fatalf("dry signal should survive the chain, peak %f", peak)
	}
}

func TestChainReset(t *testing.T) {
	r := NewReverb(44100, 0.5)
	c := NewChorus(44100, 0.5)
	chain := NewChain(r, c)
	for i := 0; i < 5000; i++ {
		chain.Process(1.0)
	}
	chain.Reset()
	if out := chain.Process(0); out != 0 {
		t.Fatalf("expected silence after reset, got %f", out)
	}
}
