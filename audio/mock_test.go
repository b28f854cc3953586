// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"

	"github.com/kalakriti/storymix/internal/audiotest"
)

func newSilentSource(rate, channels, frames int) Source {
	return audiotest.NewSilentSource(rate, channels, frames)
}

func newConstantSource(rate, channels, frames int, v float32) Source {
	return audiotest.NewSource(rate, channels, frames, func(int, int) float32 { return v })
}

// stallingSource never produces samples and never reports EOF.
type stallingSource struct{}

func (stallingSource) SampleRate() int                    { return 8000 }
func (stallingSource) Channels() int                      { return 1 }
func (stallingSource) BufSize() int                       { return 64 }
func (stallingSource) Close() error                       { return nil }
func (stallingSource) ReadSamples([]float32) (int, error) { return 0, nil }

var errBrokenStream = errors.New("broken stream")

// brokenSource yields one buffer and then fails.
type brokenSource struct {
	sent bool
}

func (b *brokenSource) SampleRate() int { return 8000 }
func (b *brokenSource) Channels() int   { return 1 }
func (b *brokenSource) BufSize() int    { return 64 }
func (b *brokenSource) Close() error    { return nil }

func (b *brokenSource) ReadSamples(dst []float32) (int, error) {
	if b.sent {
		return 0, errBrokenStream
	}
	b.sent = true
	for i := range dst {
		dst[i] = 0.25
	}
	return len(dst), nil
}
