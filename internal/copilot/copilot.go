// SPDX-License-Identifier: EPL-2.0

// Package copilot generates marketing copy and brand kits for artisan
// products with Gemini and Imagen.
package copilot

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

const (
	DefaultTextModel  = "gemini-2.5-flash"
	DefaultImageModel = "imagen-3.0-generate-002"

	// DefaultAudioMIMEType matches what browsers record with MediaRecorder.
	DefaultAudioMIMEType = "audio/webm"
)

// Generator is the subset of *genai.Models the copilot calls.
type Generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
	GenerateImages(ctx context.Context, model, prompt string, config *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error)
}

type Option func(*Copilot)

func WithTextModel(model string) Option {
	return func(c *Copilot) {
		if model != "" {
			c.textModel = model
		}
	}
}

func WithImageModel(model string) Option {
	return func(c *Copilot) {
		if model != "" {
			c.imageModel = model
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Copilot) { c.logger = l }
}

// Copilot is safe for concurrent use.
type Copilot struct {
	gen        Generator
	textModel  string
	imageModel string
	logger     *slog.Logger
}

func New(gen Generator, opts ...Option) *Copilot {
	c := &Copilot{
		gen:        gen,
		textModel:  DefaultTextModel,
		imageModel: DefaultImageModel,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Dial creates a Gemini API client for apiKey and wraps it.
func Dial(ctx context.Context, apiKey string, opts ...Option) (*Copilot, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("genai client: %w", err)
	}
	return New(client.Models, opts...), nil
}

// generateJSON sends parts to the text model and returns the cleaned JSON
// object from the first candidate. A nil temperature leaves the model default.
func (c *Copilot) generateJSON(ctx context.Context, parts []*genai.Part, temperature *float32) ([]byte, error) {
	resp, err := c.gen.GenerateContent(ctx, c.textModel, []*genai.Content{
		{Role: "user", Parts: parts},
	}, &genai.GenerateContentConfig{
		Temperature:      temperature,
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, ErrBlocked
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}

	raw := cleanJSON(sb.String())
	if raw == "" {
		return nil, fmt.Errorf("%w: empty response", ErrMalformed)
	}
	return []byte(raw), nil
}

// imageMIMEType sniffs uploaded pictures, defaulting to JPEG.
func imageMIMEType(data []byte) string {
	ct := http.DetectContentType(data)
	if strings.HasPrefix(ct, "image/") {
		return ct
	}
	return "image/jpeg"
}
