// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"context"
	"fmt"

	"github.com/kalakriti/storymix/audio"
	"github.com/kalakriti/storymix/formats/wav"
)

// Example_roundTrip writes a short stereo file and reads it back.
func Example_roundTrip() {
	samples := []int16{100, -100, 200, -200, 300, -300}

	var file bytes.Buffer
	if err := wav.WriteWAV16(&file, 16000, 2, samples); err != nil {
		fmt.Println(err)
		return
	}

	src, err := wav.Decoder{}.Decode(&file)
	if err != nil {
		fmt.Println(err)
		return
	}

	clip, err := audio.ReadClip(src)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%d Hz, %d channels, %d frames\n", clip.SampleRate, clip.Channels, clip.Frames())
	// Output: 16000 Hz, 2 channels, 3 frames
}

// Example_encoder renders a clip with the Encoder used for WAV output.
func Example_encoder() {
	clip := audio.NewClip(44100, 2, 441)

	data, err := wav.Encoder{}.Encode(context.Background(), clip)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(len(data), wav.Encoder{}.ContentType())
	// Output: 1808 audio/wav
}
