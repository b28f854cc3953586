// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"
)

type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry holds decoders by format key (e.g., "wav", "mp3", "ogg") in
// registration order. The order is the probing order used by Probe.
type Registry struct {
	codecs map[string]Decoder
	order  []string

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

// Register adds a decoder under format. Registering an existing format
// replaces its decoder but keeps its original position.
func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.codecs[format]; !ok {
		r.order = append(r.order, format)
	}
	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}

// Formats returns the registered format keys in probing order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	return append([]string(nil), r.order...)
}

// Probe decodes data with each registered decoder in order and returns the
// first clip that decodes completely, along with the format key that
// produced it. Remaining decoders are not attempted once one succeeds.
//
// When every decoder fails the error is a *ProbeError listing the formats
// that were tried.
func (r *Registry) Probe(data []byte) (*Clip, string, error) {
	r.mtx.Lock()
	formats := append([]string(nil), r.order...)
	decoders := make([]Decoder, len(formats))
	for i, f := range formats {
		decoders[i] = r.codecs[f]
	}
	r.mtx.Unlock()

	perr := &ProbeError{}
	for i, format := range formats {
		clip, err := decodeClip(decoders[i], data)
		if err == nil {
			return clip, format, nil
		}
		perr.Tried = append(perr.Tried, format)
		perr.Errs = append(perr.Errs, fmt.Errorf("%s: %w", format, err))
	}

	return nil, "", perr
}

// decodeClip runs a single decode attempt. Third-party decoders are not
// guaranteed to be panic free on corrupt input, so panics become errors.
func decodeClip(d Decoder, data []byte) (clip *Clip, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			clip = nil
			err = fmt.Errorf("%w: %v", ErrDecoderPanic, rec)
		}
	}()

	if len(data) == 0 {
		return nil, ErrEmptyStream
	}

	src, err := d.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("read samples: %w", err)
	}
	defer src.Close()

	clip, err = ReadClip(src)
	if err != nil {
		return nil, err
	}
	if clip.Frames() == 0 {
		return nil, ErrEmptyStream
	}

	return clip, nil
}

// ProbeError reports that no registered decoder could read the input.
type ProbeError struct {
	Tried []string
	Errs  []error
}

func (e *ProbeError) Error() string {
	if len(e.Tried) == 0 {
		return "decode failed: no decoders registered"
	}
	return "decode failed: tried " + strings.Join(e.Tried, ", ")
}

func (e *ProbeError) Unwrap() []error { return e.Errs }

// ReadClip drains src into memory. The source is not closed.
func ReadClip(src Source) (*Clip, error) {
	rate, channels := src.SampleRate(), src.Channels()
	if rate <= 0 {
		return nil, ErrInvalidRate
	}
	if channels <= 0 {
		return nil, ErrInvalidChannels
	}

	size := max(src.BufSize(), 4096)
	size -= size % channels
	buf := make([]float32, size)

	var samples []float32
	idle := 0
	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
			idle = 0
		} else if err == nil {
			idle++
			if idle > maxIdleReads {
				return nil, ErrNoProgress
			}
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read samples: %w", err)
		}
	}

	// drop a trailing partial frame
	samples = samples[:len(samples)-len(samples)%channels]

	return &Clip{SampleRate: rate, Channels: channels, Samples: samples}, nil
}

const maxIdleReads = 64
