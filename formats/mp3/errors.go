// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

var (
	// ErrNotMP3 is returned when the stream starts with neither an ID3 tag
	// nor an MPEG audio frame sync.
	ErrNotMP3 = errors.New("not an MP3 stream")

	ErrEmptyOutput = errors.New("mp3 encoder produced no output")
)
