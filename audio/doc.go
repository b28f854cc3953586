// SPDX-License-Identifier: EPL-2.0

// Package audio provides the decoding contract and the in-memory signal
// operations used to build a story mix.
//
// # Sources and Decoders
//
// Every format package exposes a Decoder that turns an io.Reader into a
// Source streaming interleaved float32 samples in [-1, 1]:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// ReadClip drains a Source into a Clip.
//
// # Format Probing
//
// A Registry keeps decoders in registration order. Probe tries each of them
// on the same bytes and keeps the first one that decodes the whole stream:
//
//	reg := audio.NewRegistry()
//	reg.Register("ogg", vorbis.Decoder{})
//	reg.Register("wav", wav.Decoder{})
//	reg.Register("mp3", mp3.Decoder{})
//
//	clip, format, err := reg.Probe(data)
//	var perr *audio.ProbeError
//	if errors.As(err, &perr) {
//	    // perr.Tried lists every format attempted
//	}
//
// # Clips
//
// A Clip is a complete signal in memory. Its operations return new clips and
// leave the receiver untouched:
//
//	music := background.Gain(-12)          // attenuate
//	bed, _ := music.Loop(voice.Frames())   // tile or cut to length
//	mixed, _ := bed.Overlay(voice)         // additive overlay
//	out := mixed.Normalize(0.1)            // peak at -0.1 dBFS
//
// # Format Conversion
//
// Resample changes the sample rate with cubic (Catmull-Rom) interpolation
// and a one-pole low-pass when downsampling. Remix changes the channel
// count. Clip.Convert applies both.
package audio
