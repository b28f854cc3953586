// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 with github.com/hajimehoshi/go-mp3 and encodes
// MP3 through ffmpeg.
//
// MP3 shows up here twice: as an uploaded voice note exported from a phone
// recorder, and as the format every mixed story is delivered in.
//
// # Decoding
//
// The decoder accepts MPEG-1 and MPEG-2 Layer III streams at any bitrate,
// including VBR files with a Xing or Info header. A stream has to open with
// an ID3v2 tag or a frame sync word; go-mp3 happily resyncs past leading
// junk, so anything else is turned away up front with ErrNotMP3 rather than
// decoded as a second of noise.
//
//	src, err := mp3.Decoder{}.Decode(r)
//	if err != nil {
//	    return err
//	}
//	clip, err := audio.ReadClip(src)
//
// go-mp3 always produces 16-bit stereo at the stream's sample rate, mono
// files included. The source converts to float32 in [-1, 1]:
//
//   - Channels: always 2
//   - Sample rate: as encoded (commonly 44.1 kHz or 48 kHz)
//   - Sample format: float32, one value per channel, interleaved
//
// Use Clip.Convert to bring a decoded clip to another rate or layout.
//
// # Encoding
//
// Encoder writes s16le PCM to ffmpeg's stdin with -codec:a libmp3lame and
// returns what ffmpeg writes to stdout. Bitrate defaults to DefaultBitrate.
//
//	enc := mp3.Encoder{Bitrate: "128k"}
//	data, err := enc.Encode(ctx, clip)
//	if errors.Is(err, audio.ErrEncoderUnavailable) {
//	    // ffmpeg is missing or was built without libmp3lame
//	}
//
// Metadata is stripped and ffmpeg runs with +bitexact, so the same clip
// always encodes to the same bytes. Encode honours ctx: cancelling it kills
// the ffmpeg process.
//
// # Errors
//
//   - ErrNotMP3: the input is not an MP3 stream
//   - ErrEmptyOutput: ffmpeg exited cleanly but wrote nothing
//   - audio.ErrEncoderUnavailable: no usable ffmpeg or libmp3lame
//
// # Limitations
//
//   - Layer I and II streams are not decoded
//   - free-format bitrate streams are rejected by go-mp3
//   - encoding needs an ffmpeg binary; there is no pure Go MP3 encoder
package mp3
