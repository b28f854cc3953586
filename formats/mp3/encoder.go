// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kalakriti/storymix/audio"
	"github.com/kalakriti/storymix/internal/ffmpeg"
)

const DefaultBitrate = "192k"

// Encoder encodes clips to MP3 by piping PCM through ffmpeg's libmp3lame.
type Encoder struct {
	// FFmpegPath defaults to "ffmpeg" on PATH.
	FFmpegPath string
	// Bitrate in ffmpeg notation, e.g. "192k".
	Bitrate string
}

func (Encoder) ContentType() string { return "audio/mpeg" }

// Encode returns the MP3 bytes for c. A missing ffmpeg, or an ffmpeg built
// without libmp3lame, is reported as audio.ErrEncoderUnavailable.
func (e Encoder) Encode(ctx context.Context, c *audio.Clip) ([]byte, error) {
	args := ffmpeg.EncodeMP3Args(c.SampleRate, c.Channels, cmp.Or(e.Bitrate, DefaultBitrate))

	out, err := ffmpeg.Run(ctx, e.FFmpegPath, args, ffmpeg.PCM16(c.Int16()))
	switch {
	case errors.Is(err, ffmpeg.ErrNotFound):
		return nil, fmt.Errorf("%w: %w", audio.ErrEncoderUnavailable, err)
	case err != nil && strings.Contains(err.Error(), "Unknown encoder"):
		return nil, fmt.Errorf("%w: %w", audio.ErrEncoderUnavailable, err)
	case err != nil:
		return nil, fmt.Errorf("encoding mp3: %w", err)
	}

	if len(out) == 0 {
		return nil, ErrEmptyOutput
	}
	return out, nil
}
