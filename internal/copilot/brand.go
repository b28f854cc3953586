// SPDX-License-Identifier: EPL-2.0

package copilot

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/genai"
)

const brandPrompt = `You are an expert brand designer for artisanal crafts. Analyze this collection of images.
Identify the core artistic style, dominant colors, and recurring motifs.
Respond ONLY with a valid JSON object with the following structure:
{
  "brandNameSuggestions": ["Creative name 1", "Creative name 2"],
  "brandTaglineSuggestions": ["Catchy tagline 1", "Catchy tagline 2"],
  "colorPalette": ["#HEX1", "#HEX2", "#HEX3", "#HEX4"],
  "logoPrompt": "A detailed, descriptive prompt for an AI image generator to create a simple, elegant logo based on the art style."
}`

type BrandKit struct {
	BrandNameSuggestions    []string `json:"brandNameSuggestions"`
	BrandTaglineSuggestions []string `json:"brandTaglineSuggestions"`
	ColorPalette            []string `json:"colorPalette"`
	LogoPrompt              string   `json:"logoPrompt"`
	GeneratedLogo           *Logo    `json:"generatedLogo,omitempty"`
}

type Logo struct {
	PromptUsed  string `json:"promptUsed"`
	ImageBase64 string `json:"imageBase64"`
	MIMEType    string `json:"mimeType,omitempty"`
}

// GenerateBrandKit analyses a collection of product photos for names,
// taglines and a palette, then renders a logo from the suggested prompt.
// Failures wrap ErrStrategy or ErrLogo depending on the stage.
func (c *Copilot) GenerateBrandKit(ctx context.Context, images [][]byte) (*BrandKit, error) {
	if len(images) == 0 {
		return nil, ErrNoImages
	}
	start := time.Now()

	parts := make([]*genai.Part, 0, len(images)+1)
	for _, img := range images {
		parts = append(parts, genai.NewPartFromBytes(img, imageMIMEType(img)))
	}
	parts = append(parts, genai.NewPartFromText(brandPrompt))

	kit, err := c.brandStrategy(ctx, parts)
	if err != nil {
		c.logger.Warn("brand strategy failed", slog.Int("images", len(images)), slog.Any("error", err))
		return nil, fmt.Errorf("%w: %w", ErrStrategy, err)
	}

	logo, err := c.logo(ctx, kit.LogoPrompt)
	if err != nil {
		c.logger.Warn("logo generation failed", slog.String("model", c.imageModel), slog.Any("error", err))
		return nil, fmt.Errorf("%w: %w", ErrLogo, err)
	}
	kit.GeneratedLogo = logo

	c.logger.Info("brand kit generated",
		slog.Int("images", len(images)),
		slog.Duration("elapsed", time.Since(start)),
	)
	return kit, nil
}

func (c *Copilot) brandStrategy(ctx context.Context, parts []*genai.Part) (*BrandKit, error) {
	raw, err := c.generateJSON(ctx, parts, nil)
	if err != nil {
		return nil, err
	}
	var kit BrandKit
	if err := decodeValidated(brandSchema, raw, &kit); err != nil {
		return nil, err
	}
	return &kit, nil
}

func (c *Copilot) logo(ctx context.Context, prompt string) (*Logo, error) {
	resp, err := c.gen.GenerateImages(ctx, c.imageModel, prompt, &genai.GenerateImagesConfig{
		NumberOfImages: 1,
	})
	if err != nil {
		return nil, err
	}
	if resp == nil || len(resp.GeneratedImages) == 0 {
		return nil, errors.New("no images returned")
	}
	img := resp.GeneratedImages[0].Image
	if img == nil || len(img.ImageBytes) == 0 {
		return nil, errors.New("empty image returned")
	}

	return &Logo{
		PromptUsed:  prompt,
		ImageBase64: base64.StdEncoding.EncodeToString(img.ImageBytes),
		MIMEType:    img.MIMEType,
	}, nil
}
