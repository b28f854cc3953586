// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func TestWriteWAV16_Header(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		rate       int
		channels   int
		samples    int
		byteRate   uint32
		blockAlign uint16
	}{
		{"mono 8k", 8000, 1, 10, 16000, 2},
		{"stereo 44.1k", 44100, 2, 20, 176400, 4},
		{"six channels", 48000, 6, 12, 576000, 12},
		{"empty", 16000, 1, 0, 32000, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := WriteWAV16(&buf, tt.rate, tt.channels, make([]int16, tt.samples)); err != nil {
				t.Fatalf("WriteWAV16() error = %v", err)
			}

			h := buf.Bytes()
			if len(h) != headerSize+tt.samples*2 {
				t.Fatalf("size = %d, want %d", len(h), headerSize+tt.samples*2)
			}
			if string(h[0:4]) != "RIFF" || string(h[8:12]) != "WAVE" || string(h[12:16]) != "fmt " || string(h[36:40]) != "data" {
				t.Fatalf("bad chunk ids in % x", h[:44])
			}
			if got := binary.LittleEndian.Uint32(h[4:]); got != uint32(36+tt.samples*2) {
				t.Errorf("riff size = %d, want %d", got, 36+tt.samples*2)
			}
			if got := binary.LittleEndian.Uint16(h[22:]); got != uint16(tt.channels) {
				t.Errorf("channels = %d, want %d", got, tt.channels)
			}
			if got := binary.LittleEndian.Uint32(h[24:]); got != uint32(tt.rate) {
				t.Errorf("sample rate = %d, want %d", got, tt.rate)
			}
			if got := binary.LittleEndian.Uint32(h[28:]); got != tt.byteRate {
				t.Errorf("byte rate = %d, want %d", got, tt.byteRate)
			}
			if got := binary.LittleEndian.Uint16(h[32:]); got != tt.blockAlign {
				t.Errorf("block align = %d, want %d", got, tt.blockAlign)
			}
			if got := binary.LittleEndian.Uint32(h[40:]); got != uint32(tt.samples*2) {
				t.Errorf("data size = %d, want %d", got, tt.samples*2)
			}
		})
	}
}

func TestWriteWAV16_SampleBytes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteWAV16(&buf, 8000, 1, []int16{0x0102, -2}); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	got := buf.Bytes()[headerSize:]
	want := []byte{0x02, 0x01, 0xFE, 0xFF}
	if !bytes.Equal(got, want) {
		t.Errorf("data = % x, want % x", got, want)
	}
}

func TestWriteWAV16_LargeRoundTrip(t *testing.T) {
	t.Parallel()

	// spans several write chunks with a partial last one
	samples := make([]int16, writeChunk*3+17)
	for i := range samples {
		samples[i] = int16(i*7 - 20000)
	}

	var buf bytes.Buffer
	if err := WriteWAV16(&buf, 22050, 1, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	clip := decodeAll(t, buf.Bytes())
	if len(clip.Samples) != len(samples) {
		t.Fatalf("decoded %d samples, want %d", len(clip.Samples), len(samples))
	}
	for i, s := range samples {
		if clip.Samples[i] != float32(s)/32768 {
			t.Fatalf("sample %d = %v, want %v", i, clip.Samples[i], float32(s)/32768)
		}
	}
}

func TestWriteWAV16_InvalidFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteWAV16(&buf, 8000, 0, nil); !errors.Is(err, ErrInvalidChannels) {
		t.Errorf("channels=0 error = %v, want ErrInvalidChannels", err)
	}
	if err := WriteWAV16(&buf, 0, 1, nil); !errors.Is(err, ErrInvalidSampleRate) {
		t.Errorf("rate=0 error = %v, want ErrInvalidSampleRate", err)
	}
	if buf.Len() != 0 {
		t.Error("invalid format wrote output")
	}
}

type failWriter struct{ after int }

var errDiskFull = errors.New("disk full")

func (w *failWriter) Write(p []byte) (int, error) {
	if w.after <= 0 {
		return 0, errDiskFull
	}
	w.after--
	return len(p), nil
}

func TestWriteWAV16_WriterErrors(t *testing.T) {
	t.Parallel()

	for _, after := range []int{0, 1} {
		err := WriteWAV16(&failWriter{after: after}, 8000, 1, make([]int16, 10))
		if !errors.Is(err, errDiskFull) {
			t.Errorf("after %d writes: error = %v, want errDiskFull", after, err)
		}
	}
}

func BenchmarkWriteWAV16(b *testing.B) {
	samples := make([]int16, 44100*2)
	var buf bytes.Buffer

	b.ReportAllocs()
	for range b.N {
		buf.Reset()
		_ = WriteWAV16(&buf, 44100, 2, samples)
	}
}
