package handlers

import (
	"net/http"

	portssvc "github.com/cgcym1234/authserver/internal/core/ports/services"
	"github.com/cgcym1234/authserver/internal/dto"
	"github.com/cgcym1234/authserver/internal/middleware"
	"github.com/gin-gonic/gin"
)

// AccountHandler serves the authenticated user's own profile.
type AccountHandler struct {
	users portssvc.UserSvcFacade
}

func NewAccountHandler(users portssvc.UserSvcFacade) *AccountHandler {
	return &AccountHandler{users: users}
}

// Info returns the caller's profile.
func (h *AccountHandler) Info(c *gin.Context) {
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

// Update applies partial profile changes to the caller's account.
func (h *AccountHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	var req dto.UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := h.users.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, dto.ToUserResponse(user))
}
