// SPDX-License-Identifier: EPL-2.0

package opus

import (
	"bytes"
	"fmt"
	"io"

	"github.com/kalakriti/storymix/audio"
	"gopkg.in/hraban/opus.v2"
)

// SampleRate is fixed: libopusfile always decodes at 48 kHz.
const SampleRate = 48000

// opusStream is the part of opus.Stream the source needs.
type opusStream interface {
	ReadFloat32(pcm []float32) (int, error)
	Close() error
}

type source struct {
	stream   opusStream
	channels int
}

func (s *source) SampleRate() int { return SampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return s.stream.Close() }

// 120 ms, the longest Opus packet
func (s *source) BufSize() int { return SampleRate * 120 / 1000 * s.channels }

// ReadSamples returns interleaved values; the stream reports frames.
func (s *source) ReadSamples(dst []float32) (int, error) {
	whole := len(dst) - len(dst)%s.channels
	if whole == 0 {
		return 0, nil
	}

	frames, err := s.stream.ReadFloat32(dst[:whole])
	if err == io.EOF {
		return 0, io.EOF
	}
	if err != nil {
		return 0, fmt.Errorf("decoding opus: %w", err)
	}
	return frames * s.channels, nil
}

// Decoder reads Ogg Opus through libopusfile. Input that is not an Ogg
// stream opening with an OpusHead packet never reaches the C library.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading opus data: %w", err)
	}

	channels, err := headChannels(data)
	if err != nil {
		return nil, err
	}

	stream, err := opus.NewStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotOpus, err)
	}

	return &source{stream: stream, channels: channels}, nil
}

// headChannels reads the output channel count from the OpusHead packet
// that must open the first Ogg page.
func headChannels(data []byte) (int, error) {
	const pageHeader = 27

	if len(data) < pageHeader || !bytes.HasPrefix(data, []byte("OggS")) {
		return 0, ErrNotOpus
	}

	start := pageHeader + int(data[26])
	if len(data) < start+10 || !bytes.HasPrefix(data[start:], []byte("OpusHead")) {
		return 0, ErrNotOpus
	}

	channels := int(data[start+9])
	if channels == 0 {
		return 0, fmt.Errorf("%w: zero channels", ErrNotOpus)
	}
	return channels, nil
}
