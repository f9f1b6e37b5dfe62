package middleware_test

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cgcym1234/authserver/internal/apperrors"
	"github.com/cgcym1234/authserver/internal/core/domain"
	"github.com/cgcym1234/authserver/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAuth resolves fixed credentials: password "secret" for "a@b.com" and
// the access token "tok-live", both for user 7.
type stubAuth struct{}

func (stubAuth) Issue(context.Context, int64) (*domain.TokenPair, error) {
	return nil, apperrors.New(apperrors.CodeCustom)
}

func (stubAuth) Refresh(context.Context, string) (*domain.TokenPair, error) {
	return nil, apperrors.New(apperrors.CodeRefreshTokenNotExist)
}

func (stubAuth) RevokeAll(context.Context, int64) error { return nil }

func (stubAuth) RevokeByEmail(context.Context, string) error { return nil }

func (stubAuth) VerifyPassword(_ context.Context, identifier, password string) (*domain.User, error) {
	if identifier == "a@b.com" && password == "secret" {
		return &domain.User{UserID: 7}, nil
	}
	return nil, apperrors.New(apperrors.CodeAuthFail)
}

func (stubAuth) ResolveAccessToken(_ context.Context, token string) (*domain.User, error) {
	if token == "tok-live" {
		return &domain.User{UserID: 7}, nil
	}
	return nil, apperrors.New(apperrors.CodeAuthFail)
}

func newGuardedRouter(extractors ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append(extractors, middleware.Guard(), func(c *gin.Context) {
		userID, _ := middleware.GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"userId": userID})
	})
	r.GET("/guarded", handlers...)
	return r
}

func basicHeader(user, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+password))
}

func perform(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBasicAuth(t *testing.T) {
	r := newGuardedRouter(middleware.BasicAuth(stubAuth{}))

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"valid credentials", basicHeader("a@b.com", "secret"), http.StatusOK},
		{"wrong password", basicHeader("a@b.com", "nope"), http.StatusUnauthorized},
		{"malformed header", "Basic not-base64", http.StatusUnauthorized},
		{"no header", "", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, perform(r, tt.header).Code)
		})
	}
}

func TestBearerAuth(t *testing.T) {
	r := newGuardedRouter(middleware.BearerAuth(stubAuth{}))

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"valid token", "Bearer tok-live", http.StatusOK},
		{"case-insensitive scheme", "bearer tok-live", http.StatusOK},
		{"unknown token", "Bearer tok-dead", http.StatusUnauthorized},
		{"missing scheme", "tok-live", http.StatusUnauthorized},
		{"no header", "", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, perform(r, tt.header).Code)
		})
	}
}

// Basic and bearer extractors chain on the same routes; whichever matches the
// header shape resolves the identity.
func TestExtractorChain(t *testing.T) {
	r := newGuardedRouter(middleware.BasicAuth(stubAuth{}), middleware.BearerAuth(stubAuth{}))

	assert.Equal(t, http.StatusOK, perform(r, basicHeader("a@b.com", "secret")).Code)
	assert.Equal(t, http.StatusOK, perform(r, "Bearer tok-live").Code)
	assert.Equal(t, http.StatusUnauthorized, perform(r, "").Code)
}

func TestExtractorWithoutGuardIsOptional(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/open", middleware.BearerAuth(stubAuth{}), func(c *gin.Context) {
		_, authed := middleware.GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"authed": authed})
	})

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authed":false`)
}

func TestWebSession(t *testing.T) {
	const (
		secret     = "session-secret"
		cookieName = "asid"
	)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/account",
		middleware.WebSession(cookieName, secret),
		middleware.GuardWeb("/web/login"),
		func(c *gin.Context) {
			userID, _ := middleware.GetUserID(c)
			c.JSON(http.StatusOK, gin.H{"userId": userID})
		})

	get := func(cookie string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/account", nil)
		if cookie != "" {
			req.AddCookie(&http.Cookie{Name: cookieName, Value: cookie})
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("valid cookie", func(t *testing.T) {
		cookie, err := middleware.NewSessionCookie(7, secret, time.Hour)
		require.NoError(t, err)
		w := get(cookie)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"userId":7`)
	})

	t.Run("wrong signing key redirects", func(t *testing.T) {
		cookie, err := middleware.NewSessionCookie(7, "other-secret", time.Hour)
		require.NoError(t, err)
		w := get(cookie)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/web/login", w.Header().Get("Location"))
	})

	t.Run("expired cookie redirects", func(t *testing.T) {
		cookie, err := middleware.NewSessionCookie(7, secret, -time.Minute)
		require.NoError(t, err)
		assert.Equal(t, http.StatusFound, get(cookie).Code)
	})

	t.Run("no cookie redirects", func(t *testing.T) {
		assert.Equal(t, http.StatusFound, get("").Code)
	})
}
