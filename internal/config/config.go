// SPDX-License-Identifier: EPL-2.0

// Package config loads the service configuration from the environment.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/kalakriti/storymix"
)

// Config holds all runtime configuration, loaded from environment variables.
type Config struct {
	// Server
	Port           int
	StaticDir      string
	CORSOrigins    []string
	MaxUploadBytes int64
	MixTimeout     time.Duration
	LogLevel       slog.Level

	// Google
	GoogleAPIKey string
	TextModel    string
	ImageModel   string

	// Mixer
	BackgroundPath string
	AttenuationDB  float64
	SampleRate     int
	Channels       int
	OutputFormat   string // mp3 or wav
	MP3Bitrate     string
	FFmpegPath     string
}

// Load reads a .env file from the working directory when there is one, then
// the environment. Unset or unparsable variables fall back to defaults.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv is Load without the .env file.
func FromEnv() Config {
	return Config{
		Port:           envInt("STORYMIX_PORT", 5000),
		StaticDir:      envStr("STORYMIX_STATIC_DIR", "frontend/build"),
		CORSOrigins:    envList("STORYMIX_CORS_ORIGINS", []string{"*"}),
		MaxUploadBytes: int64(envInt("STORYMIX_MAX_UPLOAD_MB", 25)) << 20,
		MixTimeout:     envDuration("STORYMIX_MIX_TIMEOUT", 60*time.Second),
		LogLevel:       envLevel("STORYMIX_LOG_LEVEL", slog.LevelInfo),

		GoogleAPIKey: envStr("GOOGLE_API_KEY", ""),
		TextModel:    envStr("STORYMIX_TEXT_MODEL", "gemini-2.5-flash"),
		ImageModel:   envStr("STORYMIX_IMAGE_MODEL", "imagen-3.0-generate-002"),

		BackgroundPath: envStr("STORYMIX_BACKGROUND_PATH", storymix.DefaultBackgroundPath),
		AttenuationDB:  envFloat("STORYMIX_ATTENUATION_DB", storymix.DefaultAttenuationDB),
		SampleRate:     envInt("STORYMIX_SAMPLE_RATE", storymix.DefaultSampleRate),
		Channels:       envInt("STORYMIX_CHANNELS", storymix.DefaultChannels),
		OutputFormat:   strings.ToLower(envStr("STORYMIX_OUTPUT_FORMAT", "mp3")),
		MP3Bitrate:     envStr("STORYMIX_MP3_BITRATE", "192k"),
		FFmpegPath:     envStr("STORYMIX_FFMPEG", "ffmpeg"),
	}
}

// Mixer returns the mixer settings.
func (c Config) Mixer() storymix.Config {
	return storymix.Config{
		BackgroundPath: c.BackgroundPath,
		AttenuationDB:  c.AttenuationDB,
		SampleRate:     c.SampleRate,
		Channels:       c.Channels,
		HeadroomDB:     storymix.DefaultHeadroomDB,
	}
}

func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

// envDuration accepts Go durations ("90s") or a bare number of seconds.
func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

func envLevel(key string, fallback slog.Level) slog.Level {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(v)); err != nil {
		return fallback
	}
	return l
}
