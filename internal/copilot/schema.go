// SPDX-License-Identifier: EPL-2.0

package copilot

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	marketingSchema = mustCompile("marketing-kit.json", `{
  "type": "object",
  "required": ["productTitle", "productDescription", "productHighlights", "post", "hashtags"],
  "properties": {
    "productTitle":       {"type": "string", "minLength": 1},
    "productDescription": {"type": "string", "minLength": 1},
    "productHighlights":  {"type": "string"},
    "post":               {"type": "string", "minLength": 1},
    "hashtags":           {"type": "string"}
  }
}`)

	brandSchema = mustCompile("brand-kit.json", `{
  "type": "object",
  "required": ["brandNameSuggestions", "brandTaglineSuggestions", "colorPalette", "logoPrompt"],
  "properties": {
    "brandNameSuggestions":    {"type": "array", "minItems": 1, "items": {"type": "string"}},
    "brandTaglineSuggestions": {"type": "array", "minItems": 1, "items": {"type": "string"}},
    "colorPalette": {
      "type": "array",
      "items": {"type": "string", "pattern": "^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$"}
    },
    "logoPrompt": {"type": "string", "minLength": 1}
  }
}`)
)

func mustCompile(name, src string) *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(name, strings.NewReader(src)); err != nil {
		panic(fmt.Sprintf("schema resource %s: %v", name, err))
	}
	return c.MustCompile(name)
}

// decodeValidated checks raw against schema before unmarshalling into v.
func decodeValidated(schema *jsonschema.Schema, raw []byte, v any) error {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}

var objectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// cleanJSON strips markdown code fences and keeps the outermost object.
func cleanJSON(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	s = strings.TrimSpace(s)
	if m := objectPattern.FindString(s); m != "" {
		return m
	}
	return s
}
