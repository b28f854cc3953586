// SPDX-License-Identifier: EPL-2.0

package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kalakriti/storymix/internal/ffmpeg"
)

type healthResponse struct {
	Status  string `json:"status"`
	Copilot bool   `json:"copilot"`
	FFmpeg  bool   `json:"ffmpeg"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{
		Status:  "ok",
		Copilot: s.copilot != nil,
		FFmpeg:  ffmpeg.Available(s.cfg.FFmpegPath),
	})
}
