// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes RIFF/WAVE audio.
//
// Decoding is done by github.com/go-audio/wav, so files written by browsers
// and tools that add LIST or fact chunks before the sample data are read
// without trouble.
//
// # Supported Formats
//
// The decoder accepts:
//   - integer PCM (format tag 1) at 8, 16, 24 and 32 bits
//   - IEEE float (format tag 3) at 32 bits, as written by Web Audio
//     recorders
//   - WAVE_FORMAT_EXTENSIBLE (0xFFFE) whose sub-format GUID names PCM or
//     IEEE float, at the same depths
//   - any channel count and sample rate
//
// It rejects:
//   - compressed formats (A-law, mu-law, ADPCM, ...) and extensible files
//     with any other sub-format, with ErrOnlyPCMSupported
//   - other sample sizes, including 64-bit float, with
//     ErrUnsupportedBitDepth
//   - anything that is not a RIFF/WAVE container, with ErrNotWavFile
//
// # Sample Conversion
//
// Samples are returned as float32 in [-1, 1]:
//   - 8-bit PCM is unsigned with 128 as silence
//   - 16, 24 and 32-bit PCM are signed and divided by 2^(bits-1)
//   - float samples are passed through unchanged
//
// # Decoding
//
//	src, err := wav.Decoder{}.Decode(r)
//	if err != nil {
//	    return err
//	}
//	clip, err := audio.ReadClip(src)
//
// go-audio needs an io.ReadSeeker; other readers are buffered in memory
// first.
//
// # Writing
//
// WriteWAV16 writes interleaved int16 samples with a canonical 44-byte
// header:
//
//	err := wav.WriteWAV16(w, 44100, 2, clip.Int16())
//
// Encoder wraps it for callers that hold an *audio.Clip; the CLI selects it
// for WAV output:
//
//	data, err := wav.Encoder{}.Encode(ctx, clip)
//
// Output is always 16-bit PCM; float and higher depths are not written.
package wav
