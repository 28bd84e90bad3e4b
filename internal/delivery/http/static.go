package delivery_http

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// StaticFallback serves the browser front end for any path no API route
// claimed, with a plain-text 404 for everything else.
func StaticFallback(staticDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
			reqPath := filepath.Clean("/" + c.Request.URL.Path)
			if reqPath == "/" {
				reqPath = "/index.html"
			}

			fullPath := filepath.Join(staticDir, reqPath)
			if info, err := os.Stat(fullPath); err == nil && !info.IsDir() {
				c.File(fullPath)
				return
			}
		}

		c.String(http.StatusNotFound, "Az oldal nem található!")
	}
}
