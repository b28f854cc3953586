// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio.
//
// Decoding is done by github.com/jfreymuth/oggvorbis, a pure Go decoder, so
// no cgo or system library is needed. Vorbis is the lossy codec that
// Firefox's MediaRecorder and many Android voice apps put inside an Ogg
// container.
//
// # Supported Streams
//
// The decoder accepts:
//   - Ogg Vorbis (.ogg, .oga) with the three Vorbis header packets
//   - any bitrate, fixed or variable
//   - mono, stereo and multichannel layouts
//   - any sample rate the stream declares
//
// Anything else fails with ErrNotVorbis:
//   - Ogg Opus (an OpusHead packet in place of the Vorbis identification
//     header); the opus package handles those
//   - a short or truncated first page
//   - non-Ogg input such as WAV, MP3 or random bytes
//
// A corrupt page makes oggvorbis index past the end of its buffers. Decode
// and ReadSamples recover from that and return an error, so a broken upload
// never takes the caller down.
//
// # Decoding
//
//	src, err := vorbis.Decoder{}.Decode(r)
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//
//	clip, err := audio.ReadClip(src)
//
// The returned audio.Source yields interleaved float32 values in [-1, 1] at
// the stream's own rate and channel count:
//
//	[L0, R0, L1, R1, L2, R2, ...]
//
// oggvorbis counts interleaved values, not frames. ReadSamples trims dst to
// a whole number of frames, so the count it returns is always a multiple of
// Channels().
//
// # Converting
//
// The mixer works at the background track's format. Convert a decoded clip
// before overlaying it:
//
//	clip, _ := audio.ReadClip(src)
//	voice, err := clip.Convert(44100, 2)
//
// # Limitations
//
//   - decoding only; there is no Vorbis encoder
//   - the whole stream is decoded into memory by audio.ReadClip
package vorbis
