// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
	"math"
)

// Chunk is an extra RIFF chunk placed between "fmt " and "data".
type Chunk struct {
	ID   string
	Data []byte
}

// Tone returns frames frames of an interleaved int16 sine wave.
func Tone(sampleRate, channels, frames int, freq, amp float64) []int16 {
	out := make([]int16, frames*channels)
	for f := range frames {
		v := int16(math.Round(amp * 32767 * math.Sin(2*math.Pi*freq*float64(f)/float64(sampleRate))))
		for ch := range channels {
			out[f*channels+ch] = v
		}
	}
	return out
}

// PCM16 encodes samples as little-endian bytes.
func PCM16(samples []int16) []byte {
	b := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(b[i*2:], uint16(s))
	}
	return b
}

// WAV builds a canonical PCM WAV file around raw sample bytes. The header
// is written by hand so tests do not depend on the writer they exercise.
func WAV(sampleRate, channels, bits int, pcm []byte, extra ...Chunk) []byte {
	var body bytes.Buffer

	blockAlign := channels * bits / 8
	fmtChunk := make([]byte, 16)
	binary.LittleEndian.PutUint16(fmtChunk[0:], 1)
	binary.LittleEndian.PutUint16(fmtChunk[2:], uint16(channels))
	binary.LittleEndian.PutUint32(fmtChunk[4:], uint32(sampleRate))
	binary.LittleEndian.PutUint32(fmtChunk[8:], uint32(sampleRate*blockAlign))
	binary.LittleEndian.PutUint16(fmtChunk[12:], uint16(blockAlign))
	binary.LittleEndian.PutUint16(fmtChunk[14:], uint16(bits))

	writeChunk(&body, "fmt ", fmtChunk)
	for _, c := range extra {
		writeChunk(&body, c.ID, c.Data)
	}
	writeChunk(&body, "data", pcm)

	var out bytes.Buffer
	out.WriteString("RIFF")
	_ = binary.Write(&out, binary.LittleEndian, uint32(4+body.Len()))
	out.WriteString("WAVE")
	out.Write(body.Bytes())

	return out.Bytes()
}

// ToneWAV is a 16-bit WAV of a sine tone.
func ToneWAV(sampleRate, channels, frames int, freq, amp float64) []byte {
	return WAV(sampleRate, channels, 16, PCM16(Tone(sampleRate, channels, frames, freq, amp)))
}

// Garbage returns n bytes that no supported container accepts. It avoids
// 0xFF so MP3 frame sync never matches.
func Garbage(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('a' + i%23)
	}
	return b
}

func writeChunk(w *bytes.Buffer, id string, data []byte) {
	w.WriteString(id)
	_ = binary.Write(w, binary.LittleEndian, uint32(len(data)))
	w.Write(data)
	if len(data)%2 == 1 {
		w.WriteByte(0)
	}
}
