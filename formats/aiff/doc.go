// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// Decoding is delegated to github.com/go-audio/aiff. AIFF is the
// uncompressed format macOS and iOS voice tools tend to export.
//
// # Supported Formats
//
//   - AIFF and uncompressed AIFF-C
//   - signed PCM at 8, 16, 24 or 32 bits
//   - any channel count and sample rate
//
// Other sample sizes are rejected with ErrUnsupportedBitDepth; anything
// that is not an AIFF container gets ErrNotAiffFile.
//
// # Decoding
//
//	src, err := aiff.Decoder{}.Decode(r)
//	if err != nil {
//	    return err
//	}
//	clip, err := audio.ReadClip(src)
//
// Samples are normalised by bit depth to float32 in [-1, 1]. go-audio needs
// an io.ReadSeeker; other readers are buffered in memory first.
//
// # AIFF vs. WAV
//
// AIFF stores samples big-endian and the sample rate as an 80-bit float,
// where WAV uses little-endian integers. Both carry plain PCM, so once
// decoded the two are interchangeable.
package aiff
