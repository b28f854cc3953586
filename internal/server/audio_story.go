// SPDX-License-Identifier: EPL-2.0

package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kalakriti/storymix"
)

const voiceFormatHeader = "X-Voice-Format"

var extensions = map[string]string{
	"audio/mpeg": "mp3",
	"audio/wav":  "wav",
}

// handleAudioStory mixes the uploaded voice recording over the background
// track and answers with the encoded audio.
func (s *Server) handleAudioStory(c *gin.Context) {
	voice, err := readFormFile(c, "audio")
	if err != nil {
		if status, ok := uploadStatus(err); ok {
			msg := msgMissingAudio
			if status == http.StatusRequestEntityTooLarge {
				msg = msgTooLarge
			}
			abortWithError(c, status, msg)
			return
		}
		_ = c.Error(err)
		abortWithError(c, http.StatusInternalServerError, msgInternal+err.Error())
		return
	}

	ctx := c.Request.Context()
	if s.cfg.MixTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.MixTimeout)
		defer cancel()
	}

	res, err := s.mixer.Mix(ctx, voice)
	if err != nil {
		_ = c.Error(err)
		switch {
		case storymix.IsInputError(err):
			abortWithError(c, http.StatusUnprocessableEntity, err.Error())
		case storymix.IsEnvironmentError(err):
			s.logger.Error("mixer environment problem",
				slog.String("request_id", c.GetString(requestIDKey)),
				slog.Any("error", err),
			)
			abortWithError(c, http.StatusInternalServerError, msgEnvironment)
		default:
			abortWithError(c, http.StatusInternalServerError, msgProcessing)
		}
		return
	}

	ext, ok := extensions[res.ContentType]
	if !ok {
		ext = "bin"
	}
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="audio-story.%s"`, ext))
	c.Header(voiceFormatHeader, res.Format)
	c.Data(http.StatusOK, res.ContentType, res.Data)
}
