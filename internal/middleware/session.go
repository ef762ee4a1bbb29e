package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"evermore/internal/modules/session"
)

// GallerySession authenticates requests carrying a gallery session token and
// pins them to the gallery in the URL. A token issued for one gallery never
// opens another, even while it is still valid.
func GallerySession(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "AUTH_MISSING", "Authorization header is required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			abortUnauthorized(c, "AUTH_INVALID", "Authorization header must be 'Bearer <token>'")
			return
		}

		sess, err := sessions.Validate(parts[1])
		if err != nil {
			abortUnauthorized(c, "SESSION_EXPIRED", "Session is invalid or expired")
			return
		}

		if galleryID := c.Param("id"); galleryID != "" && galleryID != sess.GalleryID {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   gin.H{"code": "FORBIDDEN", "message": "Session does not grant access to this gallery"},
			})
			return
		}

		c.Set("session_id", sess.ID)
		c.Set("gallery_id", sess.GalleryID)
		c.Set("client_email", sess.ClientEmail)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error":   gin.H{"code": code, "message": message},
	})
}
