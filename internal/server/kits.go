// SPDX-License-Identifier: EPL-2.0

package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kalakriti/storymix/internal/copilot"
)

const defaultPlatform = "instagram"

func (s *Server) handleMarketingKit(c *gin.Context) {
	if s.copilot == nil {
		abortWithError(c, http.StatusInternalServerError, msgMissingAPIKey)
		return
	}

	image, err := readFormFile(c, "image")
	if err != nil {
		s.uploadFailed(c, err, msgMissingKitFile)
		return
	}
	audio, err := readFormFile(c, "audio")
	if err != nil {
		s.uploadFailed(c, err, msgMissingKitFile)
		return
	}

	platform := c.DefaultPostForm("platform", defaultPlatform)
	if platform == "" {
		platform = defaultPlatform
	}

	kit, err := s.copilot.GenerateMarketingKit(c.Request.Context(), image, audio, platform)
	if err != nil {
		s.copilotFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, kit)
}

func (s *Server) handleBrandKit(c *gin.Context) {
	if s.copilot == nil {
		abortWithError(c, http.StatusInternalServerError, msgMissingAPIKey)
		return
	}

	images, err := readFormFiles(c, "images")
	if err != nil {
		s.uploadFailed(c, err, msgNoImages)
		return
	}
	if len(images) == 0 {
		abortWithError(c, http.StatusBadRequest, msgNoImages)
		return
	}

	kit, err := s.copilot.GenerateBrandKit(c.Request.Context(), images)
	if err != nil {
		s.copilotFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, kit)
}

func (s *Server) uploadFailed(c *gin.Context, err error, missing string) {
	_ = c.Error(err)
	status, ok := uploadStatus(err)
	switch {
	case !ok:
		abortWithError(c, http.StatusInternalServerError, msgInternal+err.Error())
	case status == http.StatusRequestEntityTooLarge:
		abortWithError(c, status, msgTooLarge)
	default:
		abortWithError(c, status, missing)
	}
}

func (s *Server) copilotFailed(c *gin.Context, err error) {
	_ = c.Error(err)
	msg := msgInternal + err.Error()
	switch {
	case errors.Is(err, copilot.ErrStrategy):
		msg = msgStrategy
	case errors.Is(err, copilot.ErrLogo):
		msg = msgLogo
	case errors.Is(err, copilot.ErrBlocked):
		msg = msgBlocked
	}
	abortWithError(c, http.StatusInternalServerError, msg)
}
