// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/kalakriti/storymix/audio"
	"github.com/kalakriti/storymix/internal/audiotest"
	"github.com/kalakriti/storymix/internal/ffmpeg"
)

// mockOggReader returns interleaved values the way oggvorbis.Reader does,
// at most chunk values per call.
type mockOggReader struct {
	sampleRate int
	channels   int
	samples    []float32
	chunk      int
	offset     int
	err        error
}

func (m *mockOggReader) SampleRate() int { return m.sampleRate }
func (m *mockOggReader) Channels() int   { return m.channels }

func (m *mockOggReader) Read(p []float32) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	n := min(len(p), len(m.samples)-m.offset)
	if m.chunk > 0 {
		n = min(n, m.chunk)
	}
	copy(p, m.samples[m.offset:m.offset+n])
	m.offset += n

	return n, nil
}

func ramp(n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(i) / float32(n)
	}
	return out
}

func TestSource_ReadSamplesCountsValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		values   int
		chunk    int
	}{
		{"mono", 1, 1000, 0},
		{"stereo", 2, 2000, 0},
		{"stereo small packets", 2, 2000, 128},
		{"5.1", 6, 6 * 500, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			want := ramp(tt.values)
			src := &source{
				dec:      &mockOggReader{sampleRate: 44100, channels: tt.channels, samples: want, chunk: tt.chunk},
				channels: tt.channels,
				bufSize:  256 * tt.channels,
			}

			clip, err := audio.ReadClip(src)
			if err != nil {
				t.Fatalf("ReadClip() error = %v", err)
			}
			if len(clip.Samples) != len(want) {
				t.Fatalf("read %d values, want %d", len(clip.Samples), len(want))
			}
			for i := range want {
				if clip.Samples[i] != want[i] {
					t.Fatalf("Samples[%d] = %v, want %v", i, clip.Samples[i], want[i])
				}
			}
		})
	}
}

func TestSource_ShortBuffer(t *testing.T) {
	t.Parallel()

	src := &source{dec: &mockOggReader{channels: 2, samples: ramp(10)}, channels: 2}

	if n, err := src.ReadSamples(make([]float32, 1)); n != 0 || err != nil {
		t.Errorf("ReadSamples(1) = %d, %v, want 0, nil", n, err)
	}

	// odd lengths are cut to whole frames
	n, err := src.ReadSamples(make([]float32, 5))
	if n != 4 || err != nil {
		t.Errorf("ReadSamples(5) = %d, %v, want 4, nil", n, err)
	}
}

func TestSource_ReadError(t *testing.T) {
	t.Parallel()

	src := &source{dec: &mockOggReader{channels: 1, err: io.ErrUnexpectedEOF}, channels: 1}

	if _, err := src.ReadSamples(make([]float32, 8)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v", err)
	}
}

type panickingReader struct{ mockOggReader }

func (panickingReader) Read([]float32) (int, error) {
	var page []byte
	return int(page[255]), nil
}

func TestSource_CorruptPageDoesNotPanic(t *testing.T) {
	t.Parallel()

	src := &source{dec: &panickingReader{mockOggReader{channels: 1}}, channels: 1}

	n, err := src.ReadSamples(make([]float32, 8))
	if n != 0 || err == nil {
		t.Errorf("ReadSamples() = %d, %v, want 0 and an error", n, err)
	}
}

func TestDecoder_Rejects(t *testing.T) {
	t.Parallel()

	opusHead := append([]byte("OggS"), make([]byte, 24)...)
	opusHead = append(opusHead, []byte("OpusHead")...)

	for name, data := range map[string][]byte{
		"empty":                   nil,
		"garbage":                 audiotest.Garbage(256),
		"wav":                     audiotest.ToneWAV(8000, 1, 100, 440, 0.5),
		"opus":                    opusHead,
		"short page":              append([]byte("OggS"), make([]byte, 24)...),
		"truncated segment table": append([]byte("OggS\x00\x02"), make([]byte, 20)...),
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if _, err := (Decoder{}).Decode(bytes.NewReader(data)); !errors.Is(err, ErrNotVorbis) {
				t.Errorf("Decode() error = %v, want ErrNotVorbis", err)
			}
		})
	}
}

func TestDecoder_FFmpegVorbis(t *testing.T) {
	t.Parallel()
	if !ffmpeg.Available("") {
		t.Skip("ffmpeg not on PATH")
	}

	pcm := ffmpeg.PCM16(audiotest.Tone(44100, 2, 44100, 440, 0.5))
	args := []string{
		"-hide_banner", "-loglevel", "error",
		"-f", "s16le", "-ar", "44100", "-ac", "2", "-i", "pipe:0",
		"-c:a", "libvorbis", "-f", "ogg", "pipe:1",
	}
	data, err := ffmpeg.Run(context.Background(), "", args, pcm)
	if err != nil {
		t.Skipf("ffmpeg cannot encode vorbis: %v", err)
	}

	src, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	clip, err := audio.ReadClip(src)
	if err != nil {
		t.Fatalf("ReadClip() error = %v", err)
	}

	if clip.Channels != 2 || clip.SampleRate != 44100 {
		t.Errorf("decoded %d Hz %d ch", clip.SampleRate, clip.Channels)
	}
	if math.Abs(float64(clip.Frames()-44100)) > 2048 {
		t.Errorf("decoded %d frames, want about 44100", clip.Frames())
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	values := ramp(44100 * 2)

	b.ReportAllocs()
	for range b.N {
		src := &source{dec: &mockOggReader{channels: 2, samples: values}, channels: 2, bufSize: 8192}
		_, _ = audio.ReadClip(src)
	}
}
