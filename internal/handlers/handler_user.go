package handlers

import (
	portssvc "github.com/cgcym1234/authserver/internal/core/ports/services"
	"github.com/cgcym1234/authserver/internal/dto"
	"github.com/gin-gonic/gin"
)

// UserHandler serves registration, login and the email verification flows.
type UserHandler struct {
	users  portssvc.UserSvcFacade
	wechat portssvc.WeChatSvcFacade
}

func NewUserHandler(users portssvc.UserSvcFacade, wechat portssvc.WeChatSvcFacade) *UserHandler {
	return &UserHandler{users: users, wechat: wechat}
}

// Register creates an account and returns a token pair. An email that already
// has an email credential fails with CodeUserExist and performs no write.
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	pair, err := h.users.Register(c.Request.Context(), req)
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, dto.ToTokenPairResponse(pair))
}

// Login verifies email credentials and returns a fresh token pair, revoking
// any previously issued tokens for the user.
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.EmailLoginRequest
	if !bindJSON(c, &req) {
		return
	}
	pair, err := h.users.Login(c.Request.Context(), req)
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, dto.ToTokenPairResponse(pair))
}

// NewPassword replaces the password after checking the old one and an
// already-activated change-password code.
func (h *UserHandler) NewPassword(c *gin.Context) {
	var req dto.NewPasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.users.NewPassword(c.Request.Context(), req); err != nil {
		Fail(c, err)
		return
	}
	OK(c, nil)
}

// ChangePasswordCode mails a one-time code authorizing a password change.
func (h *UserHandler) ChangePasswordCode(c *gin.Context) {
	var req dto.EmailRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.users.SendChangePasswordCode(c.Request.Context(), req.Email); err != nil {
		Fail(c, err)
		return
	}
	OK(c, nil)
}

// ActivateCode consumes a verification code from an emailed link.
func (h *UserHandler) ActivateCode(c *gin.Context) {
	var req dto.ActivateCodeRequest
	if !bindQuery(c, &req) {
		return
	}
	if err := h.users.ActivateRegisterCode(c.Request.Context(), req.UserID, req.Code); err != nil {
		Fail(c, err)
		return
	}
	OK(c, nil)
}

// OAuthToken trades WeChat mini-program login artifacts for a token pair,
// creating the local identity on first login.
func (h *UserHandler) OAuthToken(c *gin.Context) {
	var req dto.WxAppOAuthRequest
	if !bindJSON(c, &req) {
		return
	}
	pair, err := h.wechat.OAuthToken(c.Request.Context(), req)
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, dto.ToTokenPairResponse(pair))
}
