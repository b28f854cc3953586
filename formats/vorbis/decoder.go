// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"
	"github.com/kalakriti/storymix/audio"
)

// oggReader is the part of oggvorbis.Reader the source needs.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec      oggReader
	channels int
	bufSize  int
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return s.bufSize }

// ReadSamples decodes straight into dst. oggvorbis counts interleaved
// values, not frames, so n is already a sample count.
func (s *source) ReadSamples(dst []float32) (n int, err error) {
	whole := len(dst) - len(dst)%s.channels
	if whole == 0 {
		return 0, nil
	}

	// oggvorbis indexes page data without bounds checks on corrupt input
	defer func() {
		if rec := recover(); rec != nil {
			n, err = 0, fmt.Errorf("decoding vorbis: corrupt stream: %v", rec)
		}
	}()

	n, err = s.dec.Read(dst[:whole])
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("decoding vorbis: %w", err)
	}
	return n, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (src audio.Source, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			src, err = nil, fmt.Errorf("%w: %v", ErrNotVorbis, rec)
		}
	}()

	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotVorbis, err)
	}
	if dec.Channels() < 1 {
		return nil, fmt.Errorf("%w: %d channels", ErrNotVorbis, dec.Channels())
	}

	return &source{
		dec:      dec,
		channels: dec.Channels(),
		bufSize:  4096 * dec.Channels(),
	}, nil
}
