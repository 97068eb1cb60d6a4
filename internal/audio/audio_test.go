package audio

import (
	"encoding/binary"
	"errors"
	"math"
	"sync"
	"testing"
)

func TestFloat32LE(t *testing.T) {
	raw := make([]byte, 0, 10)
	for _, v := range []float32{0.5, -0.25} {
		raw = binary.LittleEndian.AppendUint32(raw, math.Float32bits(v))
	}
	raw = append(raw, 0xff, 0xff)

	samples := float32LE(raw)
	if len(samples) != 2 {
		t.Fatalf("Expected 2 samples, got %d", len(samples))
	}
	if samples[0] != 0.5 || samples[1] != -0.25 {
		t.Errorf("Expected [0.5 -0.25], got %v", samples)
	}
}

func TestClipDecodesOnce(t *testing.T) {
	calls := 0
	clip := &Clip{Path: "click.mp3", decode: func(string) ([]byte, error) {
		calls++
		return binary.LittleEndian.AppendUint32(nil, math.Float32bits(1)), nil
	}}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			clip.Samples()
		}()
	}
	wg.Wait()

	if calls != 1 {
		t.Errorf("Expected a single decode, got %d", calls)
	}
	samples, err := clip.Samples()
	if err != nil || len(samples) != 1 || samples[0] != 1 {
		t.Errorf("Expected [1], got %v (%v)", samples, err)
	}
}

func TestClipDecodeError(t *testing.T) {
	clip := &Clip{Path: "missing.mp3", decode: func(string) ([]byte, error) {
		return nil, errors.New("exit status 1")
	}}
	if _, err := clip.Samples(); err == nil {
		t.Error("Expected the decode error")
	}
}

func TestMixSumsAndClips(t *testing.T) {
	out := make([]float32, 4)
	voices := [][]float32{
		{0.25, 0.25, 0.25, 0.25, 0.25, 0.25},
		{0.9, 0.9},
	}

	voices = mix(out, voices)

	want := []float32{1, 1, 0.25, 0.25}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("Sample %d: expected %f, got %f", i, want[i], out[i])
		}
	}
	if len(voices) != 1 || len(voices[0]) != 2 {
		t.Fatalf("Expected one voice with two samples left, got %v", voices)
	}

	voices = mix(out, voices)
	if len(voices) != 0 {
		t.Errorf("Expected every voice finished, got %d", len(voices))
	}
	if out[2] != 0 || out[3] != 0 {
		t.Errorf("Expected silence after the clip ends, got %v", out)
	}
}

func TestAddVoiceDropsOldest(t *testing.T) {
	var voices [][]float32
	for i := 0; i < MaxVoices+3; i++ {
		voices = addVoice(voices, []float32{float32(i)})
	}
	if len(voices) != MaxVoices {
		t.Fatalf("Expected %d voices, got %d", MaxVoices, len(voices))
	}
	if voices[0][0] != 3 || voices[MaxVoices-1][0] != MaxVoices+2 {
		t.Errorf("Expected the newest voices kept, got first %f last %f", voices[0][0], voices[MaxVoices-1][0])
	}
}
