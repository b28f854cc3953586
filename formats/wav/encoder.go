// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"context"

	"github.com/kalakriti/storymix/audio"
)

// Encoder renders a clip as 16-bit PCM WAV. It needs no external tools.
type Encoder struct{}

func (Encoder) ContentType() string { return "audio/wav" }

func (Encoder) Encode(ctx context.Context, c *audio.Clip) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow(headerSize + len(c.Samples)*2)

	if err := WriteWAV16(&buf, c.SampleRate, c.Channels, c.Int16()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
