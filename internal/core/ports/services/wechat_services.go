package services

import (
	"context"

	"github.com/cgcym1234/authserver/internal/core/domain"
	"github.com/cgcym1234/authserver/internal/dto"
)

// WeChatSvcFacade bridges mini-program login onto local identities.
type WeChatSvcFacade interface {
	// OAuthToken exchanges the mini-program code, decrypts and validates the
	// profile payload, finds or creates the local identity and returns a fresh
	// token pair. No identity lookup or write happens before the watermark check.
	OAuthToken(ctx context.Context, req dto.WxAppOAuthRequest) (*domain.TokenPair, error)
}

// WxBridge is the outbound WeChat collaborator: the jscode2session HTTP call
// and the AES-128-CBC payload decryption.
type WxBridge interface {
	Jscode2Session(ctx context.Context, code string) (*domain.WxSession, error)
	// DecryptUserInfo takes the base64 session key, payload and IV. Decode
	// failures map to CodeBase64DecodeError.
	DecryptUserInfo(sessionKey, encryptedData, iv string) (*domain.WxUserInfo, error)
}
