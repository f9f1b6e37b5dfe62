package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cgcym1234/authserver/internal/apperrors"
	"github.com/cgcym1234/authserver/internal/core/domain"
	portsrepo "github.com/cgcym1234/authserver/internal/core/ports/repositories"
	portssvc "github.com/cgcym1234/authserver/internal/core/ports/services"
	"github.com/cgcym1234/authserver/internal/utils"
)

// tokenByteLength is the entropy of every opaque token value before base64.
const tokenByteLength = 32

type authService struct {
	tokenRepo    portsrepo.TokenRepository
	userRepo     portsrepo.UserRepository
	userAuthRepo portsrepo.UserAuthRepository

	accessTTL  time.Duration
	refreshTTL time.Duration // zero disables refresh expiry
}

// NewAuthService creates the token issuer.
func NewAuthService(repos *portsrepo.Container, accessTTL, refreshTTL time.Duration) portssvc.AuthSvcFacade {
	return &authService{
		tokenRepo:    repos.Token,
		userRepo:     repos.User,
		userAuthRepo: repos.UserAuth,
		accessTTL:    accessTTL,
		refreshTTL:   refreshTTL,
	}
}

func (s *authService) Issue(ctx context.Context, userID int64) (*domain.TokenPair, error) {
	accessValue, err := utils.GenerateTokenString(tokenByteLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshValue, err := utils.GenerateTokenString(tokenByteLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	now := time.Now()
	access := &domain.AccessToken{
		Token:      accessValue,
		UserID:     userID,
		ExpiryTime: now.Add(s.accessTTL),
	}
	refresh := &domain.RefreshToken{
		Token:  refreshValue,
		UserID: userID,
	}
	if s.refreshTTL > 0 {
		refresh.ExpiryTime = now.Add(s.refreshTTL)
	}

	// Delete-then-create in one transaction: a fresh login revokes every
	// other live session for the user.
	if err := s.tokenRepo.RotateTokens(ctx, userID, access, refresh); err != nil {
		return nil, err
	}

	return &domain.TokenPair{
		AccessToken:  access.Token,
		ExpiresIn:    access.ExpiryTime,
		RefreshToken: refresh.Token,
	}, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	token, err := s.tokenRepo.FindRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.New(apperrors.CodeRefreshTokenNotExist)
		}
		return nil, err
	}
	if token.IsExpired() {
		return nil, apperrors.New(apperrors.CodeRefreshTokenNotExist)
	}
	return s.Issue(ctx, token.UserID)
}

func (s *authService) RevokeAll(ctx context.Context, userID int64) error {
	return s.tokenRepo.DeleteTokensForUser(ctx, userID)
}

func (s *authService) RevokeByEmail(ctx context.Context, email string) error {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Revoking for an unknown email is a no-op, not an error.
			return nil
		}
		return err
	}
	return s.RevokeAll(ctx, user.UserID)
}

func (s *authService) VerifyPassword(ctx context.Context, identifier, password string) (*domain.User, error) {
	auth, err := s.userAuthRepo.FindByTypeAndIdentifier(ctx, domain.AuthTypeEmail, identifier)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.New(apperrors.CodeUserNotExist)
		}
		return nil, err
	}
	if !utils.CheckPasswordHash(password, auth.Credential) {
		return nil, apperrors.New(apperrors.CodeAuthFail)
	}
	return s.userRepo.FindUserByID(ctx, auth.UserID)
}

func (s *authService) ResolveAccessToken(ctx context.Context, token string) (*domain.User, error) {
	access, err := s.tokenRepo.FindAccessToken(ctx, token)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.New(apperrors.CodeAuthFail)
		}
		return nil, err
	}
	if access.IsExpired() {
		return nil, apperrors.New(apperrors.CodeAuthFail)
	}
	return s.userRepo.FindUserByID(ctx, access.UserID)
}
