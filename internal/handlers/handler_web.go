package handlers

import (
	"time"

	portssvc "github.com/cgcym1234/authserver/internal/core/ports/services"
	"github.com/cgcym1234/authserver/internal/dto"
	"github.com/cgcym1234/authserver/internal/middleware"
	"github.com/gin-gonic/gin"
)

// WebHandler serves the browser session flow: login sets a signed session
// cookie instead of returning a token pair.
type WebHandler struct {
	users portssvc.UserSvcFacade
	auth  portssvc.AuthSvcFacade

	cookieName    string
	sessionSecret string
	sessionTTL    time.Duration
	secureCookie  bool
}

func NewWebHandler(users portssvc.UserSvcFacade, auth portssvc.AuthSvcFacade, cookieName, sessionSecret string, sessionTTL time.Duration, secureCookie bool) *WebHandler {
	return &WebHandler{
		users:         users,
		auth:          auth,
		cookieName:    cookieName,
		sessionSecret: sessionSecret,
		sessionTTL:    sessionTTL,
		secureCookie:  secureCookie,
	}
}

// Login verifies email credentials and establishes a session cookie.
func (h *WebHandler) Login(c *gin.Context) {
	var req dto.EmailLoginRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := h.auth.VerifyPassword(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		Fail(c, err)
		return
	}

	cookie, err := middleware.NewSessionCookie(user.UserID, h.sessionSecret, h.sessionTTL)
	if err != nil {
		Fail(c, err)
		return
	}
	c.SetCookie(h.cookieName, cookie, int(h.sessionTTL.Seconds()), "/", "", h.secureCookie, true)
	OK(c, nil)
}

// Logout clears the session cookie.
func (h *WebHandler) Logout(c *gin.Context) {
	c.SetCookie(h.cookieName, "", -1, "/", "", h.secureCookie, true)
	OK(c, nil)
}

// Account returns the session user's profile. GuardWeb redirects
// unauthenticated browsers to the login page before this runs.
func (h *WebHandler) Account(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	user, err := h.users.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, dto.ToUserResponse(user))
}
