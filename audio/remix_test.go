// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"math"
	"testing"
)

func TestRemix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       *Clip
		channels int
		want     []float32
	}{
		{
			name:     "mono to stereo duplicates",
			in:       &Clip{SampleRate: 8000, Channels: 1, Samples: []float32{0.1, 0.2}},
			channels: 2,
			want:     []float32{0.1, 0.1, 0.2, 0.2},
		},
		{
			name:     "stereo to mono averages",
			in:       &Clip{SampleRate: 8000, Channels: 2, Samples: []float32{0.4, 0.6, -1, 1}},
			channels: 1,
			want:     []float32{0.5, 0},
		},
		{
			name:     "quad to stereo",
			in:       &Clip{SampleRate: 8000, Channels: 4, Samples: []float32{0.1, 0.2, 0.3, 0.4}},
			channels: 2,
			want:     []float32{0.25, 0.25},
		},
		{
			name:     "same count copies",
			in:       &Clip{SampleRate: 8000, Channels: 2, Samples: []float32{0.1, 0.2}},
			channels: 2,
			want:     []float32{0.1, 0.2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Remix(tt.in, tt.channels)
			if err != nil {
				t.Fatalf("Remix() error = %v", err)
			}
			if got.Channels != tt.channels || got.SampleRate != tt.in.SampleRate {
				t.Errorf("Remix() format = %d Hz %d ch", got.SampleRate, got.Channels)
			}
			if len(got.Samples) != len(tt.want) {
				t.Fatalf("Remix() samples = %v, want %v", got.Samples, tt.want)
			}
			for i := range tt.want {
				if math.Abs(float64(got.Samples[i]-tt.want[i])) > 1e-6 {
					t.Errorf("Samples[%d] = %v, want %v", i, got.Samples[i], tt.want[i])
				}
			}
		})
	}
}

func TestRemix_DoesNotAlias(t *testing.T) {
	t.Parallel()

	in := &Clip{SampleRate: 8000, Channels: 1, Samples: []float32{0.1, 0.2}}
	got, _ := Remix(in, 1)
	got.Samples[0] = 9

	if in.Samples[0] != 0.1 {
		t.Error("Remix() shares storage with its input")
	}
}

func TestRemix_Invalid(t *testing.T) {
	t.Parallel()

	if _, err := Remix(NewClip(8000, 1, 4), 0); !errors.Is(err, ErrInvalidChannels) {
		t.Errorf("Remix(0) error = %v, want ErrInvalidChannels", err)
	}
}

func BenchmarkRemix_StereoToMono(b *testing.B) {
	c := NewClip(44100, 2, 44100)

	b.ReportAllocs()
	for range b.N {
		_, _ = Remix(c, 1)
	}
}
