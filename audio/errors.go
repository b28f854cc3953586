// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidRate     = errors.New("sample rate must be positive")
	ErrInvalidChannels = errors.New("channel count must be positive")
	ErrEmptyClip       = errors.New("clip has no frames")
	ErrFormatMismatch  = errors.New("clips differ in sample rate or channel count")
	ErrEmptyStream     = errors.New("stream produced no audio")
	ErrNoProgress      = errors.New("source stopped producing samples without EOF")
	ErrDecoderPanic    = errors.New("decoder panicked")
)

// ErrEncoderUnavailable is wrapped by encoders whose backing tool or
// library is missing from the host.
var ErrEncoderUnavailable = errors.New("audio encoder unavailable")

// ErrDecoderUnavailable is wrapped by decoders that recognised their
// format but whose backing tool is missing from the host.
var ErrDecoderUnavailable = errors.New("audio decoder unavailable")
