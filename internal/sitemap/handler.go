package sitemap

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler serves GET /sitemap.xml.
func Handler(gen *Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := gen.Sitemap(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": "sitemap unavailable"})
			return
		}
		c.Data(http.StatusOK, "application/xml; charset=utf-8", doc)
	}
}
