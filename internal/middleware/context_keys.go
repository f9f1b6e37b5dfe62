package middleware

import "github.com/gin-gonic/gin"

// contextKey is a private type so context values cannot collide with other
// packages.
type contextKey string

const (
	loggerKey = contextKey("logger")
	userIDKey = contextKey("userID")
)

// SetUserID attaches the authenticated user's ID to the request. Called by
// the credential extractors only.
func SetUserID(c *gin.Context, userID int64) {
	c.Set(string(userIDKey), userID)
}

// GetUserID retrieves the authenticated user's ID. The boolean is false when
// no extractor resolved an identity for this request.
func GetUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(string(userIDKey))
	if !exists {
		return 0, false
	}
	userID, ok := v.(int64)
	if !ok {
		return 0, false
	}
	return userID, true
}
