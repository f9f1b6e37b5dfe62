package handlers

import (
	"net/http"

	portssvc "github.com/cgcym1234/authserver/internal/core/ports/services"
	"github.com/cgcym1234/authserver/internal/dto"
	"github.com/cgcym1234/authserver/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ProtectedHandler exposes minimal echo endpoints behind each extractor
// variant, which client developers use to verify their credential handling.
type ProtectedHandler struct {
	users portssvc.UserSvcFacade
}

func NewProtectedHandler(users portssvc.UserSvcFacade) *ProtectedHandler {
	return &ProtectedHandler{users: users}
}

// WhoAmI returns the profile the extractor chain resolved.
func (h *ProtectedHandler) WhoAmI(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	user, err := h.users.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, dto.ToUserResponse(user))
}
