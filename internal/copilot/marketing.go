// SPDX-License-Identifier: EPL-2.0

package copilot

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/genai"
)

const marketingTemperature = 0.7

// MarketingKit is the social media copy for one product.
type MarketingKit struct {
	ProductTitle       string `json:"productTitle"`
	ProductDescription string `json:"productDescription"`
	ProductHighlights  string `json:"productHighlights"`
	Post               string `json:"post"`
	Hashtags           string `json:"hashtags"`
}

func hashtagInstruction(platform string) string {
	if platform == "instagram" {
		return "Generate exactly 30 mixed (broad & niche) viral hashtags."
	}
	return "Generate 30 high-traffic, niche-specific, and viral hashtags."
}

func marketingPrompt(platform string) string {
	return fmt.Sprintf(`You are a world-class marketing copywriter.

**Primary Goal:** Analyze the attached IMAGE and AUDIO (Artisan's Story) to create a viral social media kit for %[1]s.

**Instructions:**
1. Listen to the audio. Identify the language.
2. **Authenticity:** Use 2-3 powerful KEYWORDS from the story in *italics* with (translation).
3. **Accuracy:** Do not invent words.

**JSON Output Rules:**
- Respond ONLY with a valid JSON object.
- Structure:
{
  "productTitle": "Short catchy title",
  "productDescription": "Compelling description (70-90 words)",
  "productHighlights": "Story highlights using native words",
  "post": "Viral caption for %[1]s. NO HASHTAGS HERE.",
  "hashtags": "%[2]s Space separated tags."
}`, platform, hashtagInstruction(platform))
}

// GenerateMarketingKit writes a product listing and social post from a
// product photo and the artisan's recorded story.
func (c *Copilot) GenerateMarketingKit(ctx context.Context, image, audio []byte, platform string) (*MarketingKit, error) {
	if platform == "" {
		platform = "instagram"
	}
	start := time.Now()

	raw, err := c.generateJSON(ctx, []*genai.Part{
		genai.NewPartFromText(marketingPrompt(platform)),
		genai.NewPartFromBytes(image, imageMIMEType(image)),
		genai.NewPartFromBytes(audio, DefaultAudioMIMEType),
	}, genai.Ptr[float32](marketingTemperature))
	if err != nil {
		c.logger.Warn("marketing kit failed", slog.String("platform", platform), slog.Any("error", err))
		return nil, err
	}

	var kit MarketingKit
	if err := decodeValidated(marketingSchema, raw, &kit); err != nil {
		c.logger.Warn("marketing kit rejected", slog.String("platform", platform), slog.Any("error", err))
		return nil, err
	}

	c.logger.Info("marketing kit generated",
		slog.String("platform", platform),
		slog.String("model", c.textModel),
		slog.Duration("elapsed", time.Since(start)),
	)
	return &kit, nil
}
