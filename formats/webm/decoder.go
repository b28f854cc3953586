// SPDX-License-Identifier: EPL-2.0

package webm

import (
	"bytes"
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/kalakriti/storymix/audio"
	"github.com/kalakriti/storymix/internal/ffmpeg"
	"github.com/kalakriti/storymix/utils"
)

const (
	// decoded output format
	SampleRate = 48000
	Channels   = 2

	DefaultTimeout = 30 * time.Second
)

var ebmlMagic = []byte{0x1A, 0x45, 0xDF, 0xA3}

// Decoder demuxes and decodes WebM audio with ffmpeg. The whole stream is
// decoded up front to 48 kHz stereo. A missing ffmpeg is reported as
// audio.ErrDecoderUnavailable, and only for input carrying the EBML magic.
type Decoder struct {
	// FFmpegPath defaults to "ffmpeg" on PATH.
	FFmpegPath string
	Timeout    time.Duration
}

func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading webm data: %w", err)
	}
	if !bytes.HasPrefix(data, ebmlMagic) {
		return nil, ErrNotWebM
	}

	ctx, cancel := context.WithTimeout(context.Background(), cmp.Or(d.Timeout, DefaultTimeout))
	defer cancel()

	pcm, err := ffmpeg.Run(ctx, d.FFmpegPath, ffmpeg.DecodeArgs("webm", SampleRate, Channels), data)
	if errors.Is(err, ffmpeg.ErrNotFound) {
		return nil, fmt.Errorf("%w: %w", audio.ErrDecoderUnavailable, err)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding webm: %w", err)
	}

	return &source{samples: ffmpeg.Samples16(pcm)}, nil
}

// source serves already decoded PCM.
type source struct {
	samples []int16
	pos     int
}

func (s *source) SampleRate() int { return SampleRate }
func (s *source) Channels() int   { return Channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return 4096 }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if s.pos >= len(s.samples) {
		return 0, io.EOF
	}

	n := copy16(dst, s.samples[s.pos:])
	s.pos += n
	return n, nil
}

func copy16(dst []float32, src []int16) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = utils.Int16ToFloat32(src[i])
	}
	return n
}
