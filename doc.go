// SPDX-License-Identifier: EPL-2.0

// Package storymix mixes recorded voice stories with background music.
//
// A Mixer takes the raw bytes of a voice recording in whatever format the
// browser or app produced, and returns an MP3 of the voice laid over a
// quieter background track:
//
//	m := storymix.New(storymix.DefaultConfig())
//	res, err := m.Mix(ctx, voice)
//	if err != nil {
//	    return err
//	}
//	w.Header().Set("Content-Type", res.ContentType)
//	w.Write(res.Data)
//
// # Pipeline
//
//  1. The voice is probed against Candidates in order (opus, ogg, wav,
//     aiff, mp3, webm); the first decoder that reads the whole stream wins.
//  2. The background track is decoded, converted to the mix format and
//     attenuated by Config.AttenuationDB. The result is cached until the
//     file changes.
//  3. The track is looped or cut to the exact length of the voice, the
//     voice is added on top, and the sum is peak-normalised to
//     Config.HeadroomDB below full scale.
//  4. The mix is encoded, by default to MP3 through ffmpeg.
//
// # Errors
//
// Mix reports three kinds of failure. *InputError means the voice could
// not be decoded; its message lists every format tried. *EnvironmentError
// means the deployment is at fault (background missing or corrupt, ffmpeg
// not installed). *ProcessingError wraps anything else, including panics
// recovered during mixing.
//
// # Formats
//
// Decoders live under formats/: wav, aiff, mp3, vorbis and opus decode in
// process; webm and the MP3 encoder need the ffmpeg binary. The opus
// package uses cgo and libopusfile.
package storymix
