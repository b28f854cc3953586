// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"

	"github.com/kalakriti/storymix/utils"
)

// Resample converts c to dstRate using cubic interpolation. Channel count is
// preserved. When downsampling, a one-pole low-pass filter runs over the
// input first as basic anti-aliasing.
//
// The output has round(frames * dstRate / srcRate) frames, so duration is
// preserved to within one output frame.
func Resample(c *Clip, dstRate int) (*Clip, error) {
	if dstRate <= 0 || c.SampleRate <= 0 {
		return nil, ErrInvalidRate
	}
	if c.Channels <= 0 {
		return nil, ErrInvalidChannels
	}
	if dstRate == c.SampleRate {
		return c.Clone(), nil
	}

	channels := c.Channels
	inFrames := c.Frames()
	ratio := float64(c.SampleRate) / float64(dstRate)
	outFrames := int(math.Round(float64(inFrames) / ratio))

	out := NewClip(dstRate, channels, outFrames)
	if inFrames == 0 || outFrames == 0 {
		return out, nil
	}

	in := c.Samples[:inFrames*channels]
	if ratio > 1 {
		in = lowPass(in, channels, 0.5)
	}

	at := func(frame, ch int) float32 {
		frame = min(max(frame, 0), inFrames-1)
		return in[frame*channels+ch]
	}

	for i := range outFrames {
		pos := float64(i) * ratio
		idx := int(pos)
		x := float32(pos - float64(idx))
		for ch := range channels {
			out.Samples[i*channels+ch] = utils.CubicInterpolate(
				at(idx-1, ch), at(idx, ch), at(idx+1, ch), at(idx+2, ch), x,
			)
		}
	}

	return out, nil
}

// lowPass applies y[n] = alpha*x[n] + (1-alpha)*y[n-1] per channel. The
// filter state starts at the first frame to avoid a warm-up transient.
func lowPass(in []float32, channels int, alpha float32) []float32 {
	out := make([]float32, len(in))
	state := make([]float32, channels)
	copy(state, in[:channels])

	for i, x := range in {
		ch := i % channels
		y := alpha*x + (1-alpha)*state[ch]
		state[ch] = y
		out[i] = y
	}
	return out
}
