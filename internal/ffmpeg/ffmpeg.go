// SPDX-License-Identifier: EPL-2.0

// Package ffmpeg runs the ffmpeg binary as a filter: bytes in on stdin,
// bytes out on stdout.
package ffmpeg

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// DefaultBinary is looked up on PATH when no binary is configured.
const DefaultBinary = "ffmpeg"

// ErrNotFound reports that the ffmpeg binary could not be located.
var ErrNotFound = errors.New("ffmpeg binary not found")

// Available reports whether bin (or DefaultBinary when empty) can be run.
func Available(bin string) bool {
	_, err := exec.LookPath(resolve(bin))
	return err == nil
}

// Run executes bin with args, feeding input on stdin, and returns stdout.
// On failure the last line ffmpeg wrote to stderr is part of the error.
func Run(ctx context.Context, bin string, args []string, input []byte) ([]byte, error) {
	path, err := exec.LookPath(resolve(bin))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = bytes.NewReader(input)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if msg := lastLine(stderr.String()); msg != "" {
			return nil, fmt.Errorf("ffmpeg: %w: %s", err, msg)
		}
		return nil, fmt.Errorf("ffmpeg: %w", err)
	}

	return stdout.Bytes(), nil
}

// DecodeArgs reads container format from stdin and writes s16le PCM at
// the given rate and channel count to stdout.
func DecodeArgs(format string, sampleRate, channels int) []string {
	return []string{
		"-hide_banner", "-loglevel", "error",
		"-f", format, "-i", "pipe:0",
		"-f", "s16le", "-acodec", "pcm_s16le",
		"-ar", strconv.Itoa(sampleRate),
		"-ac", strconv.Itoa(channels),
		"pipe:1",
	}
}

// EncodeMP3Args reads s16le PCM from stdin and writes MP3. The bitexact
// flags and stripped metadata keep output identical for identical input.
func EncodeMP3Args(sampleRate, channels int, bitrate string) []string {
	return []string{
		"-hide_banner", "-loglevel", "error",
		"-f", "s16le",
		"-ar", strconv.Itoa(sampleRate),
		"-ac", strconv.Itoa(channels),
		"-i", "pipe:0",
		"-map_metadata", "-1",
		"-fflags", "+bitexact", "-flags:a", "+bitexact",
		"-codec:a", "libmp3lame", "-b:a", bitrate,
		"-f", "mp3", "pipe:1",
	}
}

// PCM16 packs samples as little-endian bytes for ffmpeg's s16le input.
func PCM16(samples []int16) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(s))
	}
	return out
}

// Samples16 unpacks s16le output. A trailing odd byte is dropped.
func Samples16(data []byte) []int16 {
	out := make([]int16, len(data)/2)
	for i := range out {
		out[i] = int16(binary.LittleEndian.Uint16(data[i*2:]))
	}
	return out
}

func resolve(bin string) string {
	if bin == "" {
		return DefaultBinary
	}
	return bin
}

func lastLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[i+1:])
	}
	return s
}
