// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"time"

	"github.com/kalakriti/storymix/utils"
)

// Clip is a fully decoded signal held in memory as interleaved float32
// samples. Clip methods never modify the receiver, so a clip can be shared
// between goroutines once built.
type Clip struct {
	SampleRate int
	Channels   int
	Samples    []float32
}

// NewClip returns a silent clip of the given length in frames.
func NewClip(sampleRate, channels, frames int) *Clip {
	return &Clip{
		SampleRate: sampleRate,
		Channels:   channels,
		Samples:    make([]float32, frames*channels),
	}
}

func (c *Clip) Frames() int {
	if c.Channels <= 0 {
		return 0
	}
	return len(c.Samples) / c.Channels
}

func (c *Clip) Duration() time.Duration {
	if c.SampleRate <= 0 {
		return 0
	}
	return time.Duration(c.Frames()) * time.Second / time.Duration(c.SampleRate)
}

// FramesIn returns how many frames of this clip's rate fit in d.
func (c *Clip) FramesIn(d time.Duration) int {
	return int(int64(d) * int64(c.SampleRate) / int64(time.Second))
}

// Peak returns the largest absolute sample value.
func (c *Clip) Peak() float32 {
	var peak float32
	for _, s := range c.Samples {
		if s < 0 {
			s = -s
		}
		if s > peak {
			peak = s
		}
	}
	return peak
}

func (c *Clip) Clone() *Clip {
	return &Clip{
		SampleRate: c.SampleRate,
		Channels:   c.Channels,
		Samples:    append([]float32(nil), c.Samples...),
	}
}

func (c *Clip) sameFormat(o *Clip) bool {
	return c.SampleRate == o.SampleRate && c.Channels == o.Channels
}

// Gain scales the clip by db decibels. Negative values attenuate.
// Samples are not clamped; Normalize brings the level back into range.
func (c *Clip) Gain(db float64) *Clip {
	g := float32(utils.DBToGain(db))
	out := c.Clone()
	for i := range out.Samples {
		out.Samples[i] *= g
	}
	return out
}

// Truncate returns the first frames frames of the clip. A length beyond the
// end of the clip returns the whole clip.
func (c *Clip) Truncate(frames int) *Clip {
	frames = min(max(frames, 0), c.Frames())
	return &Clip{
		SampleRate: c.SampleRate,
		Channels:   c.Channels,
		Samples:    append([]float32(nil), c.Samples[:frames*c.Channels]...),
	}
}

// Loop returns a clip of exactly frames frames: the receiver repeated end
// to end as many times as needed, with the last repetition cut short.
func (c *Clip) Loop(frames int) (*Clip, error) {
	if frames <= 0 {
		return NewClip(c.SampleRate, c.Channels, 0), nil
	}
	if c.Frames() == 0 {
		return nil, ErrEmptyClip
	}
	if frames <= c.Frames() {
		return c.Truncate(frames), nil
	}

	out := NewClip(c.SampleRate, c.Channels, frames)
	src := c.Samples[:c.Frames()*c.Channels]
	for off := 0; off < len(out.Samples); {
		off += copy(out.Samples[off:], src)
	}
	return out, nil
}

// Overlay adds o on top of the clip starting at frame zero. The result has
// the receiver's length; any part of o past that length is dropped.
func (c *Clip) Overlay(o *Clip) (*Clip, error) {
	if !c.sameFormat(o) {
		return nil, ErrFormatMismatch
	}

	out := c.Clone()
	n := min(len(out.Samples), len(o.Samples))
	for i := range n {
		out.Samples[i] += o.Samples[i]
	}
	return out, nil
}

// Normalize scales the clip so that its peak sits headroomDB below full
// scale. Relative dynamics are preserved. A silent clip is returned as is and
// no sample of the result exceeds [-1, 1].
func (c *Clip) Normalize(headroomDB float64) *Clip {
	out := c.Clone()
	peak := c.Peak()
	if peak == 0 {
		return out
	}

	target := float32(utils.DBToGain(-max(headroomDB, 0)))
	scale := target / peak
	for i, s := range out.Samples {
		s *= scale
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		out.Samples[i] = s
	}
	return out
}

// Int16 converts the clip to interleaved 16-bit PCM.
func (c *Clip) Int16() []int16 {
	pcm := make([]int16, len(c.Samples))
	for i, s := range c.Samples {
		pcm[i] = utils.Float32ToInt16(s)
	}
	return pcm
}

// Convert returns the clip at the given sample rate and channel count.
func (c *Clip) Convert(sampleRate, channels int) (*Clip, error) {
	out, err := Remix(c, channels)
	if err != nil {
		return nil, err
	}
	return Resample(out, sampleRate)
}
