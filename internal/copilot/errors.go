// SPDX-License-Identifier: EPL-2.0

package copilot

import "errors"

var (
	ErrMissingAPIKey = errors.New("google api key is not configured")
	// ErrBlocked means the model returned no candidates, which the Gemini
	// API does when a safety filter trips.
	ErrBlocked   = errors.New("model blocked the response")
	ErrMalformed = errors.New("model returned malformed json")
	ErrNoImages  = errors.New("no images provided")
	ErrStrategy  = errors.New("brand strategy generation failed")
	ErrLogo      = errors.New("logo generation failed")
)
