// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"context"
	"errors"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/kalakriti/storymix/internal/copilot"
	"github.com/kalakriti/storymix/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and frontend",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "listen port (default $STORYMIX_PORT or 5000)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	if servePort > 0 {
		cfg.Port = servePort
	}
	if !verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	mixer, err := newMixer(cfg, cfg.OutputFormat)
	if err != nil {
		return err
	}

	var cp server.Copilot
	c, err := copilot.Dial(ctx, cfg.GoogleAPIKey,
		copilot.WithTextModel(cfg.TextModel),
		copilot.WithImageModel(cfg.ImageModel),
		copilot.WithLogger(slog.Default()),
	)
	switch {
	case err == nil:
		cp = c
	case errors.Is(err, copilot.ErrMissingAPIKey):
		slog.Warn("GOOGLE_API_KEY not set; marketing and brand kit endpoints are disabled")
	default:
		return err
	}

	srv := server.New(cfg, mixer, cp, slog.Default())
	if err := srv.Run(ctx, cfg.Addr()); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
