// SPDX-License-Identifier: EPL-2.0

package server

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// handleStatic serves the built frontend. Unknown paths fall back to
// index.html so client side routes survive a reload; unknown /api paths
// stay 404.
func (s *Server) handleStatic(c *gin.Context) {
	p := c.Request.URL.Path
	if strings.HasPrefix(p, "/api/") || p == "/api" {
		abortWithError(c, http.StatusNotFound, "Not found.")
		return
	}
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		abortWithError(c, http.StatusMethodNotAllowed, "Method not allowed.")
		return
	}

	// http.ServeFile refuses these outright
	if strings.Contains(p, "..") {
		abortWithError(c, http.StatusNotFound, "Not found.")
		return
	}

	if file, ok := s.staticFile(p); ok {
		c.File(file)
		return
	}
	if index, ok := s.staticFile("/index.html"); ok {
		c.File(index)
		return
	}
	abortWithError(c, http.StatusNotFound, "Not found.")
}

// staticFile resolves urlPath inside the static directory.
func (s *Server) staticFile(urlPath string) (string, bool) {
	if s.cfg.StaticDir == "" {
		return "", false
	}
	clean := path.Clean("/" + urlPath)
	if clean == "/" {
		return "", false
	}
	full := filepath.Join(s.cfg.StaticDir, filepath.FromSlash(clean))
	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		return "", false
	}
	return full, true
}
