// SPDX-License-Identifier: EPL-2.0

package storymix

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kalakriti/storymix/audio"
	"github.com/kalakriti/storymix/formats/mp3"
	"github.com/kalakriti/storymix/utils"
)

const (
	DefaultBackgroundPath = "assets/music.mp3"
	DefaultAttenuationDB  = 12
	DefaultSampleRate     = 44100
	DefaultChannels       = 2
	DefaultHeadroomDB     = 0.1
)

// Encoder turns the finished mix into bytes for the client.
type Encoder interface {
	Encode(ctx context.Context, c *audio.Clip) ([]byte, error)
	ContentType() string
}

// Config describes the mix. SampleRate and Channels fall back to the
// defaults when zero; the decibel fields are used as given.
type Config struct {
	// BackgroundPath is the music bed, in any candidate format.
	BackgroundPath string
	// AttenuationDB is how far the background sits under the voice.
	AttenuationDB float64
	// SampleRate and Channels are the format everything is mixed in.
	SampleRate int
	Channels   int
	// HeadroomDB is the gap left under full scale after normalising.
	HeadroomDB float64
}

func DefaultConfig() Config {
	return Config{
		BackgroundPath: DefaultBackgroundPath,
		AttenuationDB:  DefaultAttenuationDB,
		SampleRate:     DefaultSampleRate,
		Channels:       DefaultChannels,
		HeadroomDB:     DefaultHeadroomDB,
	}
}

// Result is a finished mix.
type Result struct {
	Data        []byte
	ContentType string
	// Format is the candidate encoding the voice was decoded as.
	Format   string
	Duration time.Duration
}

type Option func(*Mixer)

// WithRegistry replaces the candidate decoders. The registry's order is the
// probe order.
func WithRegistry(r *audio.Registry) Option {
	return func(m *Mixer) { m.registry = r }
}

// WithEncoder replaces the default MP3 encoder.
func WithEncoder(e Encoder) Option {
	return func(m *Mixer) { m.encoder = e }
}

func WithLogger(l *slog.Logger) Option {
	return func(m *Mixer) { m.logger = l }
}

// Mixer lays voice recordings over a looped, attenuated background track.
// A Mixer is safe for concurrent use.
type Mixer struct {
	cfg      Config
	registry *audio.Registry
	encoder  Encoder
	logger   *slog.Logger
	bg       *background
}

func New(cfg Config, opts ...Option) *Mixer {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultSampleRate
	}
	if cfg.Channels <= 0 {
		cfg.Channels = DefaultChannels
	}

	m := &Mixer{cfg: cfg}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = NewRegistry("")
	}
	if m.encoder == nil {
		m.encoder = mp3.Encoder{}
	}
	if m.logger == nil {
		m.logger = slog.Default()
	}

	m.bg = &background{
		path:     cfg.BackgroundPath,
		registry: m.registry,
		logger:   m.logger,
		prepare: func(c *audio.Clip) (*audio.Clip, error) {
			conv, err := c.Convert(cfg.SampleRate, cfg.Channels)
			if err != nil {
				return nil, err
			}
			return conv.Gain(-cfg.AttenuationDB), nil
		},
	}

	return m
}

func (m *Mixer) Config() Config { return m.cfg }

// Mix decodes voice, lays it over the background track and encodes the
// result. The output always lasts exactly as long as the voice.
//
// Errors are *InputError when the voice is not decodable,
// *EnvironmentError when the background or an external tool is missing,
// and *ProcessingError otherwise. Mix never panics.
func (m *Mixer) Mix(ctx context.Context, voice []byte) (res *Result, err error) {
	start := time.Now()

	defer func() {
		if rec := recover(); rec != nil {
			res = nil
			err = &ProcessingError{Op: "mix", Err: fmt.Errorf("panic: %v", rec)}
		}

		if err != nil {
			m.logger.Warn("mix failed",
				slog.Int("voice_bytes", len(voice)),
				slog.Duration("elapsed", time.Since(start)),
				slog.Any("error", err),
			)
			return
		}
		m.logger.Info("mix done",
			slog.String("format", res.Format),
			slog.Duration("duration", res.Duration),
			slog.Int("bytes", len(res.Data)),
			slog.Duration("elapsed", time.Since(start)),
		)
	}()

	if err := ctx.Err(); err != nil {
		return nil, &ProcessingError{Op: "mix", Err: err}
	}

	decoded, format, err := m.registry.Probe(voice)
	if err != nil {
		if errors.Is(err, audio.ErrDecoderUnavailable) {
			return nil, &EnvironmentError{Op: "decode voice", Err: err}
		}
		return nil, &InputError{Err: err}
	}
	m.logger.Debug("voice decoded",
		slog.String("format", format),
		slog.Int("sample_rate", decoded.SampleRate),
		slog.Int("channels", decoded.Channels),
		slog.Duration("duration", decoded.Duration()),
	)

	voiceClip, err := decoded.Convert(m.cfg.SampleRate, m.cfg.Channels)
	if err != nil {
		return nil, &ProcessingError{Op: "convert voice", Err: err}
	}

	bg, err := m.bg.get()
	if err != nil {
		return nil, &EnvironmentError{Op: "load background", Err: err}
	}

	bed, err := musicSegment(bg, voiceClip.Frames())
	if err != nil {
		return nil, &ProcessingError{Op: "match duration", Err: err}
	}

	mixed, err := bed.Overlay(voiceClip)
	if err != nil {
		return nil, &ProcessingError{Op: "overlay", Err: err}
	}
	if peak := mixed.Peak(); peak > 0 {
		m.logger.Debug("normalizing",
			slog.Float64("peak_db", utils.GainToDB(float64(peak))),
			slog.Float64("headroom_db", m.cfg.HeadroomDB),
		)
	}
	mixed = mixed.Normalize(m.cfg.HeadroomDB)

	if err := ctx.Err(); err != nil {
		return nil, &ProcessingError{Op: "mix", Err: err}
	}

	data, err := m.encoder.Encode(ctx, mixed)
	if errors.Is(err, audio.ErrEncoderUnavailable) {
		return nil, &EnvironmentError{Op: "encode", Err: err}
	}
	if err != nil {
		return nil, &ProcessingError{Op: "encode", Err: err}
	}

	return &Result{
		Data:        data,
		ContentType: m.encoder.ContentType(),
		Format:      format,
		Duration:    mixed.Duration(),
	}, nil
}

// musicSegment tiles or truncates the (already attenuated) track to
// exactly frames frames.
func musicSegment(track *audio.Clip, frames int) (*audio.Clip, error) {
	if track.Frames() >= frames {
		return track.Truncate(frames), nil
	}
	return track.Loop(frames)
}
