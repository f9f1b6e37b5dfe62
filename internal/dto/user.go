package dto

import "github.com/cgcym1234/authserver/internal/core/domain"

// UpdateProfileRequest updates the caller's own profile. Pointers distinguish
// omitted fields from zero values.
type UpdateProfileRequest struct {
	Name      *string `json:"name"`
	Avatar    *string `json:"avatar"`
	Phone     *string `json:"phone"`
	Info      *string `json:"info"`
	OrganizID *int64  `json:"organizId"`
}

// UserResponse is the identity profile exposed over the API.
type UserResponse struct {
	UserID    int64  `json:"userId"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
	Info      string `json:"info,omitempty"`
	OrganizID int64  `json:"organizId"`
}

// ToUserResponse converts a domain user to its wire shape.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Avatar:    u.Avatar,
		Info:      u.Info,
		OrganizID: u.OrganizID,
	}
}
