// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/riff"
	gowav "github.com/go-audio/wav"
	"github.com/kalakriti/storymix/audio"
)

const (
	formatPCM        = 1
	formatFloat      = 3
	formatExtensible = 0xFFFE

	defaultBufSize = 4096
)

// pcmReader is the part of gowav.Decoder the source needs.
type pcmReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type source struct {
	dec        pcmReader
	sampleRate int
	channels   int
	bitDepth   int
	float      bool
	buf        *goaudio.IntBuffer
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return len(s.buf.Data) }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if cap(s.buf.Data) < len(dst) {
		s.buf.Data = make([]int, len(dst))
	}
	s.buf.Data = s.buf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.buf)
	if err != nil {
		return 0, fmt.Errorf("reading wav samples: %w", err)
	}
	if n == 0 {
		return 0, io.EOF
	}

	if s.float {
		// go-audio hands back the raw 32 bits as a signed int
		for i, v := range s.buf.Data[:n] {
			dst[i] = math.Float32frombits(uint32(v))
		}
		return n, nil
	}

	scale, offset := sampleScale(s.bitDepth)
	for i, v := range s.buf.Data[:n] {
		dst[i] = float32(v-offset) / scale
	}

	return n, nil
}

// sampleScale returns the divisor and the zero offset for a bit depth.
// 8-bit WAV samples are unsigned.
func sampleScale(bitDepth int) (float32, int) {
	switch bitDepth {
	case 8:
		return 128, 128
	case 24:
		return 1 << 23, 0
	case 32:
		return 1 << 31, 0
	default:
		return 1 << 15, 0
	}
}

// subFormatTail is the part of a WAVE_FORMAT_EXTENSIBLE sub-format GUID that
// follows the two-byte format tag.
var subFormatTail = [14]byte{0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x80, 0x00, 0x00, 0xAA, 0x00, 0x38, 0x9B, 0x71}

// extensibleFormat returns the format tag carried in the sub-format GUID of
// an extensible "fmt " chunk. It reads rs from the start.
func extensibleFormat(rs io.ReadSeeker) (uint16, error) {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}

	p := riff.New(rs)
	if err := p.ParseHeaders(); err != nil {
		return 0, err
	}

	for {
		ch, err := p.NextChunk()
		if err != nil {
			return 0, err
		}
		if ch.ID != riff.FmtID {
			ch.Drain()
			continue
		}

		// 16 bytes of common header, cbSize, valid bits, channel mask, GUID
		if ch.Size < 40 {
			return 0, fmt.Errorf("extensible fmt chunk is %d bytes", ch.Size)
		}
		var hdr [24]byte
		var guid struct {
			Tag  uint16
			Tail [14]byte
		}
		if err := ch.ReadLE(&hdr); err != nil {
			return 0, err
		}
		if err := ch.ReadLE(&guid); err != nil {
			return 0, err
		}
		if guid.Tail != subFormatTail {
			return 0, fmt.Errorf("unknown sub-format GUID %x", guid.Tail)
		}
		return guid.Tag, nil
	}
}

// Decoder reads RIFF/WAVE integer PCM at 8, 16, 24 or 32 bits and IEEE float
// at 32 bits, either as a plain format tag or behind WAVE_FORMAT_EXTENSIBLE.
// Chunks other than "fmt " and "data" (LIST, fact, ...) are skipped.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	tag := dec.WavAudioFormat
	if tag == formatExtensible {
		// the decoder sits just past "fmt "; put it back after the GUID lookup
		pos, err := rs.Seek(0, io.SeekCurrent)
		if err != nil {
			return nil, fmt.Errorf("reading wav format: %w", err)
		}
		tag, err = extensibleFormat(rs)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrOnlyPCMSupported, err)
		}
		if _, err := rs.Seek(pos, io.SeekStart); err != nil {
			return nil, fmt.Errorf("reading wav format: %w", err)
		}
	}

	switch tag {
	case formatPCM:
		switch dec.BitDepth {
		case 8, 16, 24, 32:
		default:
			return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, dec.BitDepth)
		}
	case formatFloat:
		if dec.BitDepth != 32 {
			return nil, fmt.Errorf("%w: %d-bit float", ErrUnsupportedBitDepth, dec.BitDepth)
		}
	default:
		return nil, fmt.Errorf("%w: format tag %#x", ErrOnlyPCMSupported, tag)
	}

	return &source{
		dec:        dec,
		sampleRate: int(dec.SampleRate),
		channels:   int(dec.NumChans),
		bitDepth:   int(dec.BitDepth),
		float:      tag == formatFloat,
		buf: &goaudio.IntBuffer{
			Format: dec.Format(),
			Data:   make([]int, defaultBufSize),
		},
	}, nil
}
