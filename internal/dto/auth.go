package dto

import "github.com/cgcym1234/authserver/internal/core/domain"

// RegisterRequest creates a new email-backed account.
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,userpassword"`
	Name      string `json:"name" binding:"required"`
	OrganizID *int64 `json:"organizId"`
}

// EmailLoginRequest authenticates with email credentials.
type EmailLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// EmailRequest carries just an email address (revoke, change-password code).
type EmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// NewPasswordRequest replaces the password after code verification.
type NewPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,userpassword"`
	Code        string `json:"code" binding:"required"`
}

// ActivateCodeRequest is the query of the account-activation link.
type ActivateCodeRequest struct {
	UserID int64  `form:"userId" binding:"required"`
	Code   string `form:"code" binding:"required"`
}

// RefreshTokenRequest trades a refresh token for a new pair.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// WxAppOAuthRequest carries the mini-program login artifacts.
type WxAppOAuthRequest struct {
	EncryptedData string `json:"encryptedData" binding:"required"`
	IV            string `json:"iv" binding:"required"`
	Code          string `json:"code" binding:"required"`
}

// TokenPairResponse is returned by every successful authentication. ExpiresIn
// is the access token's absolute expiry as a Unix timestamp, an estimate the
// clients use for proactive refresh.
type TokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	ExpiresIn    int64  `json:"expiresIn"`
	RefreshToken string `json:"refreshToken"`
}

// ToTokenPairResponse converts a domain token pair to its wire shape.
func ToTokenPairResponse(pair *domain.TokenPair) TokenPairResponse {
	return TokenPairResponse{
		AccessToken:  pair.AccessToken,
		ExpiresIn:    pair.ExpiresIn.Unix(),
		RefreshToken: pair.RefreshToken,
	}
}
