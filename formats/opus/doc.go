// SPDX-License-Identifier: EPL-2.0

// Package opus decodes Ogg Opus, the format browsers record voice notes in,
// using gopkg.in/hraban/opus.v2.
//
// The package needs cgo with libopus and libopusfile available. Audio is
// always produced at 48 kHz; the channel count is taken from the stream's
// OpusHead packet.
package opus
