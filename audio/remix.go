// SPDX-License-Identifier: EPL-2.0

package audio

// Remix converts c to the given channel count.
//
//   - same count: copy
//   - mono to N: the mono signal is duplicated into every channel
//   - N to mono: channels are averaged
//   - N to M otherwise: averaged to mono, then spread to M channels
func Remix(c *Clip, channels int) (*Clip, error) {
	if channels <= 0 || c.Channels <= 0 {
		return nil, ErrInvalidChannels
	}
	if channels == c.Channels {
		return c.Clone(), nil
	}

	mono := c
	if c.Channels != 1 {
		mono = downmix(c)
	}
	if channels == 1 {
		return mono, nil
	}

	frames := mono.Frames()
	out := NewClip(c.SampleRate, channels, frames)
	for f := range frames {
		v := mono.Samples[f]
		base := f * channels
		for ch := range channels {
			out.Samples[base+ch] = v
		}
	}
	return out, nil
}

func downmix(c *Clip) *Clip {
	channels := c.Channels
	frames := c.Frames()
	out := NewClip(c.SampleRate, 1, frames)
	inv := float32(1.0) / float32(channels)

	switch channels {
	case 2:
		for f := range frames {
			idx := f << 1
			out.Samples[f] = (c.Samples[idx] + c.Samples[idx+1]) * 0.5
		}
	default:
		for f := range frames {
			var sum float32
			base := f * channels
			for ch := range channels {
				sum += c.Samples[base+ch]
			}
			out.Samples[f] = sum * inv
		}
	}
	return out
}
