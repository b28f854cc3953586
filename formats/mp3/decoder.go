// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/kalakriti/storymix/audio"
	"github.com/kalakriti/storymix/utils"
)

// go-mp3 always produces 16-bit little-endian stereo.
const outputChannels = 2

// mp3Reader is the part of gomp3.Decoder the source needs.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return outputChannels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / 2 }

func (s *source) ReadSamples(dst []float32) (int, error) {
	need := len(dst) * 2
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	n, err := s.dec.Read(s.buf)
	samples := n / 2
	for i := range samples {
		dst[i] = utils.Int16ToFloat32(int16(binary.LittleEndian.Uint16(s.buf[i*2:])))
	}

	if err != nil && err != io.EOF {
		return samples, fmt.Errorf("decoding mp3: %w", err)
	}
	return samples, err
}

// Decoder reads MPEG-1/2 Layer III streams. go-mp3 resyncs past junk, so
// streams that do not open with an ID3 tag or a frame sync are rejected
// before it sees them.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(4)
	if !looksLikeMP3(head) {
		return nil, ErrNotMP3
	}

	dec, err := gomp3.NewDecoder(br)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3, err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}, nil
}

func looksLikeMP3(head []byte) bool {
	if len(head) >= 3 && string(head[:3]) == "ID3" {
		return true
	}
	return len(head) >= 2 && head[0] == 0xFF && head[1]&0xE0 == 0xE0
}
