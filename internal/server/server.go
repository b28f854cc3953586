// SPDX-License-Identifier: EPL-2.0

// Package server exposes the mixer and the marketing copilot over HTTP and
// serves the single page frontend.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/kalakriti/storymix"
	"github.com/kalakriti/storymix/internal/config"
	"github.com/kalakriti/storymix/internal/copilot"
)

const shutdownTimeout = 10 * time.Second

// Mixer is implemented by *storymix.Mixer.
type Mixer interface {
	Mix(ctx context.Context, voice []byte) (*storymix.Result, error)
}

// Copilot is implemented by *copilot.Copilot.
type Copilot interface {
	GenerateMarketingKit(ctx context.Context, image, audio []byte, platform string) (*copilot.MarketingKit, error)
	GenerateBrandKit(ctx context.Context, images [][]byte) (*copilot.BrandKit, error)
}

type Server struct {
	cfg     config.Config
	mixer   Mixer
	copilot Copilot
	logger  *slog.Logger
	engine  *gin.Engine
}

// New wires the routes. A nil copilot means no API key is configured: the
// mixer keeps working and the kit endpoints answer 500.
func New(cfg config.Config, mixer Mixer, cp Copilot, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		cfg:     cfg,
		mixer:   mixer,
		copilot: cp,
		logger:  logger,
	}

	r := gin.New()
	r.Use(requestID(), requestLogger(logger), recovery(logger))
	r.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	api := r.Group("/api")
	api.GET("/health", s.handleHealth)
	api.POST("/audio-story", s.limitBody, s.handleAudioStory)
	api.POST("/generate-kit", s.limitBody, s.handleMarketingKit)
	api.POST("/generate-marketing-kit", s.limitBody, s.handleMarketingKit)
	api.POST("/generate-brand-kit", s.limitBody, s.handleBrandKit)

	r.NoRoute(s.handleStatic)

	s.engine = r
	return s
}

func (s *Server) Handler() http.Handler { return s.engine }

// Run serves on addr until ctx is done, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", slog.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("http server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", requestIDHeader},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition", requestIDHeader, voiceFormatHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
