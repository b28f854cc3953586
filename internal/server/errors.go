// SPDX-License-Identifier: EPL-2.0

package server

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	msgMissingAPIKey  = "Google API key is not configured on the server."
	msgMissingKitFile = "Missing image or audio file."
	msgMissingAudio   = "Missing audio file."
	msgNoImages       = "No image files provided."
	msgTooLarge       = "Upload exceeds the size limit."
	msgEnvironment    = "internal configuration problem"
	msgProcessing     = "Failed to process the audio story."
	msgBlocked        = "The AI model blocked the response (Safety Filter)."
	msgStrategy       = "Failed to generate brand strategy from Gemini."
	msgLogo           = "Failed to generate logo with Imagen."
	msgInternal       = "An internal server error occurred: "
)

type errorResponse struct {
	Error string `json:"error"`
}

func abortWithError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, errorResponse{Error: msg})
}

// uploadStatus maps a multipart read failure to a client error.
func uploadStatus(err error) (int, bool) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge, true
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart), errors.Is(err, multipart.ErrMessageTooLarge):
		return http.StatusBadRequest, true
	}
	return 0, false
}
