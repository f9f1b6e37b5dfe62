package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/cgcym1234/authserver/internal/apperrors"
	"github.com/cgcym1234/authserver/internal/core/domain"
	portsrepo "github.com/cgcym1234/authserver/internal/core/ports/repositories"
	portssvc "github.com/cgcym1234/authserver/internal/core/ports/services"
	"github.com/cgcym1234/authserver/internal/dto"
	"github.com/cgcym1234/authserver/internal/utils"
)

type weChatService struct {
	bridge       portssvc.WxBridge
	userRepo     portsrepo.UserRepository
	userAuthRepo portsrepo.UserAuthRepository
	auth         portssvc.AuthSvcFacade

	appID string
}

// NewWeChatService creates the mini-program identity bridge.
func NewWeChatService(bridge portssvc.WxBridge, repos *portsrepo.Container, auth portssvc.AuthSvcFacade, appID string) portssvc.WeChatSvcFacade {
	return &weChatService{
		bridge:       bridge,
		userRepo:     repos.User,
		userAuthRepo: repos.UserAuth,
		auth:         auth,
		appID:        appID,
	}
}

func (s *weChatService) OAuthToken(ctx context.Context, req dto.WxAppOAuthRequest) (*domain.TokenPair, error) {
	session, err := s.bridge.Jscode2Session(ctx, req.Code)
	if err != nil {
		return nil, err
	}

	info, err := s.bridge.DecryptUserInfo(session.SessionKey, req.EncryptedData, req.IV)
	if err != nil {
		return nil, err
	}

	// Replay/cross-app protection: nothing is looked up or written before the
	// watermark is verified.
	if info.Watermark.AppID != s.appID {
		return nil, apperrors.New(apperrors.CodeCustom)
	}

	credential, err := utils.HashPassword(session.SessionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to hash session key: %w", err)
	}

	auth, err := s.userAuthRepo.FindByTypeAndIdentifier(ctx, domain.AuthTypeWxApp, info.OpenID)
	switch {
	case err == nil:
		// Known identity: refresh the stored session-key hash.
		if err := s.userAuthRepo.UpdateCredential(ctx, auth.ID, credential); err != nil {
			return nil, err
		}
		return s.auth.Issue(ctx, auth.UserID)

	case errors.Is(err, apperrors.ErrNotFound):
		user := &domain.User{
			Name:   info.NickName,
			Avatar: info.AvatarURL,
		}
		if err := s.userRepo.CreateUser(ctx, user); err != nil {
			return nil, err
		}
		newAuth := &domain.UserAuth{
			UserID:       user.UserID,
			IdentityType: domain.AuthTypeWxApp,
			Identifier:   info.OpenID,
			Credential:   credential,
		}
		if err := s.userAuthRepo.Create(ctx, newAuth); err != nil {
			return nil, err
		}
		return s.auth.Issue(ctx, user.UserID)

	default:
		return nil, err
	}
}
