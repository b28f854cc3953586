// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/kalakriti/storymix/audio"
)

func TestEncoder_Encode(t *testing.T) {
	t.Parallel()

	clip := &audio.Clip{SampleRate: 44100, Channels: 2, Samples: []float32{0, 0.5, -0.5, 1, -1, 0.25}}

	data, err := Encoder{}.Encode(context.Background(), clip)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	got := decodeAll(t, data)
	if got.SampleRate != 44100 || got.Channels != 2 || got.Frames() != 3 {
		t.Fatalf("decoded %d Hz %d ch %d frames", got.SampleRate, got.Channels, got.Frames())
	}

	want := clip.Int16()
	for i := range want {
		if got.Samples[i] != float32(want[i])/32768 {
			t.Errorf("Samples[%d] = %v, want %v", i, got.Samples[i], float32(want[i])/32768)
		}
	}
}

func TestEncoder_Deterministic(t *testing.T) {
	t.Parallel()

	clip := &audio.Clip{SampleRate: 8000, Channels: 1, Samples: []float32{0.1, 0.2, 0.3}}

	a, _ := Encoder{}.Encode(context.Background(), clip)
	b, _ := Encoder{}.Encode(context.Background(), clip)
	if !bytes.Equal(a, b) {
		t.Error("Encode() is not deterministic")
	}
}

func TestEncoder_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Encoder{}.Encode(ctx, audio.NewClip(8000, 1, 10))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Encode() error = %v, want context.Canceled", err)
	}
}

func TestEncoder_ContentType(t *testing.T) {
	t.Parallel()

	if got := (Encoder{}).ContentType(); got != "audio/wav" {
		t.Errorf("ContentType() = %q", got)
	}
}
