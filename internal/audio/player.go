package audio

import (
	"Floatbook/internal/logger"
	"fmt"
	"sync"

	"github.com/gordonklaus/portaudio"
	"go.uber.org/zap"
)

// MaxVoices caps how many plays of a clip overlap; the oldest is dropped.
const MaxVoices = 8

// Player plays a clip on the default output device. Each Play starts a new
// voice from the beginning, mixed with any still sounding.
type Player struct {
	clip   *Clip
	stream *portaudio.Stream

	mu     sync.Mutex
	voices [][]float32
}

// NewPlayer opens a mono output stream and starts decoding the clip in the
// background.
func NewPlayer(clip *Clip) (*Player, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize portaudio: %w", err)
	}

	p := &Player{clip: clip}
	stream, err := portaudio.OpenDefaultStream(0, 1, SampleRate, 0, p.process)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("failed to open audio stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return nil, fmt.Errorf("failed to start audio stream: %w", err)
	}
	p.stream = stream

	go func() {
		if _, err := clip.Samples(); err != nil {
			logger.Log.Warn("Click sound unavailable", zap.Error(err))
		}
	}()
	return p, nil
}

// Play never blocks the caller. A clip that failed to decode stays silent.
func (p *Player) Play() {
	go func() {
		samples, err := p.clip.Samples()
		if err != nil || len(samples) == 0 {
			logger.Log.Debug("Skipping click sound", zap.Error(err))
			return
		}
		p.mu.Lock()
		p.voices = addVoice(p.voices, samples)
		p.mu.Unlock()
	}()
}

func (p *Player) process(out []float32) {
	p.mu.Lock()
	p.voices = mix(out, p.voices)
	p.mu.Unlock()
}

func (p *Player) Close() error {
	if p.stream == nil {
		return nil
	}
	if err := p.stream.Stop(); err != nil {
		logger.Log.Debug("Audio stream stop failed", zap.Error(err))
	}
	err := p.stream.Close()
	p.stream = nil
	if terr := portaudio.Terminate(); err == nil {
		err = terr
	}
	return err
}

func addVoice(voices [][]float32, samples []float32) [][]float32 {
	if len(voices) >= MaxVoices {
		voices = append(voices[:0], voices[len(voices)-MaxVoices+1:]...)
	}
	return append(voices, samples)
}

// mix writes the sum of all voices into out, clipped to [-1, 1], and returns
// the voices that still have samples left.
func mix(out []float32, voices [][]float32) [][]float32 {
	for i := range out {
		out[i] = 0
	}
	remaining := voices[:0]
	for _, v := range voices {
		n := len(out)
		if len(v) < n {
			n = len(v)
		}
		for i := 0; i < n; i++ {
			out[i] += v[i]
		}
		if v = v[n:]; len(v) > 0 {
			remaining = append(remaining, v)
		}
	}
	for i, s := range out {
		if s > 1 {
			out[i] = 1
		} else if s < -1 {
			out[i] = -1
		}
	}
	return remaining
}
