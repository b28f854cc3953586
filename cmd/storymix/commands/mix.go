// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var (
	mixFormat     string
	mixBackground string
)

var mixCmd = &cobra.Command{
	Use:   "mix <voice> <out>",
	Short: "Mix a voice recording over the background track",
	Long: `Mix decodes a voice recording (opus, ogg, wav, aiff, mp3 or webm), lays
it over the looped background track and writes the result.

Use "-" for stdin or stdout. The output format follows --format, then the
extension of <out>, then $STORYMIX_OUTPUT_FORMAT.`,
	Args: cobra.ExactArgs(2),
	RunE: runMix,
}

func init() {
	mixCmd.Flags().StringVar(&mixFormat, "format", "", "output format: mp3 or wav")
	mixCmd.Flags().StringVarP(&mixBackground, "background", "b", "", "background track (default $STORYMIX_BACKGROUND_PATH)")
}

func runMix(cmd *cobra.Command, args []string) error {
	in, out := args[0], args[1]
	if mixBackground != "" {
		cfg.BackgroundPath = mixBackground
	}

	mixer, err := newMixer(cfg, outputFormat(out))
	if err != nil {
		return err
	}

	voice, err := readInput(cmd, in)
	if err != nil {
		return err
	}

	res, err := mixer.Mix(cmd.Context(), voice)
	if err != nil {
		return err
	}

	if out == "-" {
		_, err = cmd.OutOrStdout().Write(res.Data)
		return err
	}
	if err := os.WriteFile(out, res.Data, 0o644); err != nil {
		return err
	}
	slog.Info("story written",
		slog.String("path", out),
		slog.String("voice_format", res.Format),
		slog.Duration("duration", res.Duration),
	)
	return nil
}

func outputFormat(out string) string {
	if mixFormat != "" {
		return strings.ToLower(mixFormat)
	}
	switch strings.ToLower(filepath.Ext(out)) {
	case ".wav":
		return "wav"
	case ".mp3":
		return "mp3"
	}
	return cfg.OutputFormat
}

func readInput(cmd *cobra.Command, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(name)
}
