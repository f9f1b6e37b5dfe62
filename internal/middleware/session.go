package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// WebSession resolves an identity from a signed session cookie. This is the
// browser-facing variant of the extractor chain; an absent or invalid cookie
// leaves the request unauthenticated rather than failing it, so GuardWeb can
// redirect to the login page.
func WebSession(cookieName, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, done := GetUserID(c); done {
			c.Next()
			return
		}
		cookie, err := c.Cookie(cookieName)
		if err != nil {
			c.Next()
			return
		}

		token, err := jwt.ParseWithClaims(cookie, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.Next()
			return
		}

		claims, ok := token.Claims.(*jwt.RegisteredClaims)
		if !ok {
			c.Next()
			return
		}
		userID, err := strconv.ParseInt(claims.Subject, 10, 64)
		if err != nil {
			c.Next()
			return
		}

		SetUserID(c, userID)
		c.Next()
	}
}

// GuardWeb redirects unauthenticated requests to the login page instead of
// returning 401, for browser flows.
func GuardWeb(loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetUserID(c); !ok {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// NewSessionCookie signs a session token for the user, for the web login
// handler to set as a cookie.
func NewSessionCookie(userID int64, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
