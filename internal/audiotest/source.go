// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"
)

// Source is a synthetic audio source. It satisfies audio.Source without
// importing it so format packages can use it from their in-package tests.
type Source struct {
	sampleRate int
	channels   int
	frames     int
	pos        int
	wave       func(frame, channel int) float32
}

// NewSource returns a source producing frames frames of wave.
func NewSource(sampleRate, channels, frames int, wave func(frame, channel int) float32) *Source {
	return &Source{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		wave:       wave,
	}
}

// NewToneSource produces a sine at freq Hz and amplitude amp on every channel.
func NewToneSource(sampleRate, channels, frames int, freq, amp float64) *Source {
	return NewSource(sampleRate, channels, frames, func(frame, _ int) float32 {
		return float32(amp * math.Sin(2*math.Pi*freq*float64(frame)/float64(sampleRate)))
	})
}

// NewSilentSource produces digital silence.
func NewSilentSource(sampleRate, channels, frames int) *Source {
	return NewSource(sampleRate, channels, frames, func(int, int) float32 { return 0 })
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) BufSize() int    { return 1024 * s.channels }
func (s *Source) Close() error    { return nil }

// Rewind starts the source over from the first frame.
func (s *Source) Rewind() { s.pos = 0 }

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if s.pos >= s.frames {
		return 0, io.EOF
	}

	n := min(len(dst)/s.channels, s.frames-s.pos)
	for f := range n {
		for ch := range s.channels {
			dst[f*s.channels+ch] = s.wave(s.pos+f, ch)
		}
	}
	s.pos += n

	return n * s.channels, nil
}
