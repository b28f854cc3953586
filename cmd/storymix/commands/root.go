// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/kalakriti/storymix"
	"github.com/kalakriti/storymix/formats/mp3"
	"github.com/kalakriti/storymix/formats/wav"
	"github.com/kalakriti/storymix/internal/config"
)

var (
	verbose bool
	logJSON bool

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "storymix",
	Short: "Audio story mixer and artisan marketing copilot",
	Long: `storymix lays an artisan's recorded story over a background track and
serves the marketing copilot API.

Examples:
  # Run the HTTP API and frontend on :5000
  storymix serve

  # Mix a local recording
  storymix mix voice.webm story.mp3
`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func Command() *cobra.Command {
	return rootCmd
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "log as JSON")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mixCmd)
}

func setup(cmd *cobra.Command, _ []string) error {
	cfg = config.Load()

	level := cfg.LogLevel
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler = slog.NewTextHandler(cmd.ErrOrStderr(), opts)
	if logJSON {
		handler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	}
	slog.SetDefault(slog.New(handler))
	return nil
}

// encoderFor picks the output encoder by name.
func encoderFor(format string, c config.Config) (storymix.Encoder, error) {
	switch format {
	case "", "mp3":
		return mp3.Encoder{FFmpegPath: c.FFmpegPath, Bitrate: c.MP3Bitrate}, nil
	case "wav":
		return wav.Encoder{}, nil
	}
	return nil, fmt.Errorf("unsupported output format %q (want mp3 or wav)", format)
}

func newMixer(c config.Config, format string) (*storymix.Mixer, error) {
	enc, err := encoderFor(format, c)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(c.BackgroundPath); err != nil {
		slog.Warn("background track not found; mixes will fail until it exists",
			slog.String("path", c.BackgroundPath))
	}
	return storymix.New(c.Mixer(),
		storymix.WithRegistry(storymix.NewRegistry(c.FFmpegPath)),
		storymix.WithEncoder(enc),
		storymix.WithLogger(slog.Default()),
	), nil
}
