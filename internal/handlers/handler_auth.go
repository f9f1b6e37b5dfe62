package handlers

import (
	"net/http"

	portssvc "github.com/cgcym1234/authserver/internal/core/ports/services"
	"github.com/cgcym1234/authserver/internal/dto"
	"github.com/cgcym1234/authserver/internal/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler serves the token lifecycle: refresh and revocation.
type AuthHandler struct {
	auth portssvc.AuthSvcFacade
}

func NewAuthHandler(auth portssvc.AuthSvcFacade) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Refresh trades a refresh token for a new access/refresh pair. The old pair
// is invalid afterwards.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if !bindJSON(c, &req) {
		return
	}
	pair, err := h.auth.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, dto.ToTokenPairResponse(pair))
}

// Revoke deletes every token for the email's owner. The route is guarded by
// basic auth; the body names whose tokens to revoke, which lets an
// administrator revoke another account. Responds 204, outside the envelope.
func (h *AuthHandler) Revoke(c *gin.Context) {
	var req dto.EmailRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.auth.RevokeByEmail(c.Request.Context(), req.Email); err != nil {
		Fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Logout revokes the caller's own tokens. Idempotent.
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	if err := h.auth.RevokeAll(c.Request.Context(), userID); err != nil {
		Fail(c, err)
		return
	}
	OK(c, nil)
}
