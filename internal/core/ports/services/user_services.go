package services

import (
	"context"

	"github.com/cgcym1234/authserver/internal/core/domain"
	"github.com/cgcym1234/authserver/internal/dto"
)

// UserSvcFacade covers registration, login and account lifecycle.
type UserSvcFacade interface {
	// Register creates the user plus its email credential, mails an activation
	// link and returns a fresh token pair. Fails with CodeUserExist when the
	// email already has an email-type credential.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.TokenPair, error)
	// Login verifies the password and returns a fresh token pair.
	Login(ctx context.Context, req dto.EmailLoginRequest) (*domain.TokenPair, error)
	// NewPassword replaces the password after re-checking the old one and an
	// already-activated changePassword code.
	NewPassword(ctx context.Context, req dto.NewPasswordRequest) error
	// SendChangePasswordCode mails a 4-character code authorizing a password change.
	SendChangePasswordCode(ctx context.Context, email string) error
	// ActivateRegisterCode consumes an account-activation code.
	ActivateRegisterCode(ctx context.Context, userID int64, code string) error

	GetUserByID(ctx context.Context, userID int64) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int64, req dto.UpdateProfileRequest) (*domain.User, error)
}
