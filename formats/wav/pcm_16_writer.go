// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	headerSize = 44
	// samples converted per Write call
	writeChunk = 8192
)

// WriteWAV16 writes interleaved 16-bit PCM as a canonical 44-byte-header
// WAV file.
func WriteWAV16(w io.Writer, sampleRate, channels int, samples []int16) error {
	if channels < 1 || channels > 0xFFFF {
		return fmt.Errorf("%w: %d", ErrInvalidChannels, channels)
	}
	if sampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	blockAlign := channels * 2
	dataSize := uint32(len(samples) * 2)

	header := make([]byte, headerSize)
	copy(header[0:], "RIFF")
	binary.LittleEndian.PutUint32(header[4:], headerSize-8+dataSize)
	copy(header[8:], "WAVE")
	copy(header[12:], "fmt ")
	binary.LittleEndian.PutUint32(header[16:], 16)
	binary.LittleEndian.PutUint16(header[20:], formatPCM)
	binary.LittleEndian.PutUint16(header[22:], uint16(channels))
	binary.LittleEndian.PutUint32(header[24:], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:], uint32(sampleRate*blockAlign))
	binary.LittleEndian.PutUint16(header[32:], uint16(blockAlign))
	binary.LittleEndian.PutUint16(header[34:], 16)
	copy(header[36:], "data")
	binary.LittleEndian.PutUint32(header[40:], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("writing wav header: %w", err)
	}
	if len(samples) == 0 {
		return nil
	}

	buf := make([]byte, min(len(samples), writeChunk)*2)
	for start := 0; start < len(samples); start += writeChunk {
		part := samples[start:min(start+writeChunk, len(samples))]
		out := buf[:len(part)*2]
		for i, s := range part {
			binary.LittleEndian.PutUint16(out[i*2:], uint16(s))
		}
		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("writing wav data: %w", err)
		}
	}

	return nil
}
