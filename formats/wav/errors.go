// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile          = errors.New("not a WAV file")
	ErrOnlyPCMSupported    = errors.New("only PCM and 32-bit float WAV are supported")
	ErrUnsupportedBitDepth = errors.New("unsupported WAV bit depth")
	ErrInvalidChannels     = errors.New("invalid channel count")
	ErrInvalidSampleRate   = errors.New("invalid sample rate")
)
