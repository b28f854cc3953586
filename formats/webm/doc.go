// SPDX-License-Identifier: EPL-2.0

// Package webm decodes WebM voice recordings, as produced by the browser
// MediaRecorder API, by piping them through ffmpeg.
package webm
