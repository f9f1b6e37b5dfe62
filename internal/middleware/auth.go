package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	portssvc "github.com/cgcym1234/authserver/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// The chain is split in two stages: extractors resolve an identity when the
// matching credential is present, and Guard fails the request when none did.
// A route that wants an optional identity mounts an extractor without Guard.
//
// A present-but-invalid credential is terminal: the extractor rejects at the
// transport level (401) without the JSON envelope, unlike domain errors which
// ride an HTTP 200. Both behaviors are part of the client contract.

// BasicAuth resolves an identity from an Authorization: Basic header holding
// email:password.
func BasicAuth(auth portssvc.AuthSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, done := GetUserID(c); done {
			c.Next()
			return
		}
		identifier, password, ok := c.Request.BasicAuth()
		if !ok {
			if c.GetHeader("Authorization") != "" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Basic base64(user:password)"})
				return
			}
			c.Next()
			return
		}

		user, err := auth.VerifyPassword(c.Request.Context(), identifier, password)
		if err != nil {
			logger := GetLoggerFromCtx(c.Request.Context())
			logger.Warn("Basic auth failed", slog.String("identifier", identifier))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}

		SetUserID(c, user.UserID)
		c.Next()
	}
}

// BearerAuth resolves an identity from an Authorization: Bearer header holding
// an opaque access token.
func BearerAuth(auth portssvc.AuthSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, done := GetUserID(c); done {
			c.Next()
			return
		}
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		user, err := auth.ResolveAccessToken(c.Request.Context(), parts[1])
		if err != nil {
			logger := GetLoggerFromCtx(c.Request.Context())
			logger.Warn("Bearer auth failed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		SetUserID(c, user.UserID)
		c.Next()
	}
}

// Guard fails the request when no preceding extractor attached an identity.
func Guard() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetUserID(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		c.Next()
	}
}
