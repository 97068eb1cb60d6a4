// Package audio decodes short sound effects with ffmpeg and plays them
// through PortAudio.
package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"sync"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// SampleRate of decoded clips and of the output stream. Clips are mono.
const SampleRate = 44100

// Clip is a sound file decoded on first use.
type Clip struct {
	Path string

	decode  func(path string) ([]byte, error)
	once    sync.Once
	samples []float32
	err     error
}

func NewClip(path string) *Clip {
	return &Clip{Path: path, decode: decodeFFmpeg}
}

// Samples returns the decoded clip. Safe for concurrent use; the file is
// decoded at most once.
func (c *Clip) Samples() ([]float32, error) {
	c.once.Do(func() {
		raw, err := c.decode(c.Path)
		if err != nil {
			c.err = fmt.Errorf("decode %s: %w", c.Path, err)
			return
		}
		c.samples = float32LE(raw)
	})
	return c.samples, c.err
}

// decodeFFmpeg converts any input ffmpeg understands to raw little-endian
// float32 mono.
func decodeFFmpeg(path string) ([]byte, error) {
	out := &bytes.Buffer{}
	err := ffmpeg.Input(path).
		Output("pipe:", ffmpeg.KwArgs{"f": "f32le", "ac": 1, "ar": SampleRate, "loglevel": "error"}).
		WithOutput(out).
		Run()
	if err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// float32LE reinterprets raw bytes as samples; a trailing partial sample is
// dropped.
func float32LE(raw []byte) []float32 {
	samples := make([]float32, len(raw)/4)
	for i := range samples {
		samples[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[i*4:]))
	}
	return samples
}
