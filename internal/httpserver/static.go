package httpserver

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"fish-classification-website/pkg/response"
)

// serveIndex serves the site's landing page.
func (srv *HTTPServer) serveIndex(c *gin.Context) {
	index := filepath.Join(srv.staticDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		srv.l.Warnf(c.Request.Context(), "static: index.html missing in %s", srv.staticDir)
		response.NotFound(c)
		return
	}
	c.File(index)
}

// serveStatic serves single-segment assets from the static dir and doubles
// as the JSON 404 handler for everything else. One specific asset is always
// rejected regardless of whether it exists on disk.
func (srv *HTTPServer) serveStatic(c *gin.Context) {
	if c.Request.Method != http.MethodGet {
		response.NotFound(c)
		return
	}

	name := strings.TrimPrefix(c.Request.URL.Path, "/")

	// Only flat asset names are served; anything nested or traversal-shaped
	// falls through to 404.
	if name == "" || strings.Contains(name, "/") || strings.Contains(name, "\\") || strings.Contains(name, "..") {
		response.NotFound(c)
		return
	}

	if srv.blockedAsset != "" && name == srv.blockedAsset {
		response.NotFound(c)
		return
	}

	path := filepath.Join(srv.staticDir, name)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		response.NotFound(c)
		return
	}

	c.File(path)
}
