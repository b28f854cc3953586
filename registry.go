// SPDX-License-Identifier: EPL-2.0

package storymix

import (
	"github.com/kalakriti/storymix/audio"
	"github.com/kalakriti/storymix/formats/aiff"
	"github.com/kalakriti/storymix/formats/mp3"
	"github.com/kalakriti/storymix/formats/opus"
	"github.com/kalakriti/storymix/formats/vorbis"
	"github.com/kalakriti/storymix/formats/wav"
	"github.com/kalakriti/storymix/formats/webm"
)

// Candidates lists the voice encodings in the order they are probed.
// Browsers most often send Opus, so it goes first.
var Candidates = []string{"opus", "ogg", "wav", "aiff", "mp3", "webm"}

// NewRegistry returns a registry holding every candidate decoder in probe
// order. ffmpegPath is used by the WebM decoder; empty means "ffmpeg" on
// PATH.
func NewRegistry(ffmpegPath string) *audio.Registry {
	decoders := map[string]audio.Decoder{
		"opus": opus.Decoder{},
		"ogg":  vorbis.Decoder{},
		"wav":  wav.Decoder{},
		"aiff": aiff.Decoder{},
		"mp3":  mp3.Decoder{},
		"webm": webm.Decoder{FFmpegPath: ffmpegPath},
	}

	reg := audio.NewRegistry()
	for _, name := range Candidates {
		reg.Register(name, decoders[name])
	}
	return reg
}
