package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AdminToken protects the admin surface using a static bearer token.
func AdminToken(expected string, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if expected == "" {
			logAdminFailure(c, log, http.StatusInternalServerError, "token_not_configured")
			abortAdmin(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Admin token is not configured")
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logAdminFailure(c, log, http.StatusUnauthorized, "missing_auth")
			abortAdmin(c, http.StatusUnauthorized, "AUTH_MISSING", "Authorization header is required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logAdminFailure(c, log, http.StatusUnauthorized, "invalid_auth_format")
			abortAdmin(c, http.StatusUnauthorized, "AUTH_INVALID", "Authorization header must be 'Bearer <token>'")
			return
		}

		if subtle.ConstantTimeCompare([]byte(parts[1]), []byte(expected)) != 1 {
			logAdminFailure(c, log, http.StatusForbidden, "invalid_token")
			abortAdmin(c, http.StatusForbidden, "AUTH_INVALID", "Invalid admin token")
			return
		}

		c.Next()
	}
}

func abortAdmin(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"error":   gin.H{"code": code, "message": message},
	})
}

func logAdminFailure(c *gin.Context, log *slog.Logger, status int, reason string) {
	log.Warn("admin auth failure",
		"status", status,
		"reason", reason,
		"client_ip", c.ClientIP(),
		"path", c.Request.URL.Path,
	)
}
