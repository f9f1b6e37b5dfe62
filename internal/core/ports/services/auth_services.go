package services

import (
	"context"

	"github.com/cgcym1234/authserver/internal/core/domain"
)

// AuthSvcFacade issues, refreshes and revokes token pairs, and resolves
// request credentials for the middleware chain.
type AuthSvcFacade interface {
	// Issue purges every existing token for the user and mints a fresh
	// access/refresh pair. Revoke-on-login: any other live session for the
	// same user is invalidated.
	Issue(ctx context.Context, userID int64) (*domain.TokenPair, error)
	// Refresh resolves the refresh token's owner and delegates to Issue.
	// Unknown values fail with CodeRefreshTokenNotExist.
	Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error)
	// RevokeAll deletes every token for the user. Idempotent.
	RevokeAll(ctx context.Context, userID int64) error
	// RevokeByEmail revokes all tokens of the user owning the email. A missing
	// user is a no-op.
	RevokeByEmail(ctx context.Context, email string) error

	// VerifyPassword resolves a user from email credentials, for the basic
	// extractor. Fails with CodeAuthFail on a bad password.
	VerifyPassword(ctx context.Context, identifier, password string) (*domain.User, error)
	// ResolveAccessToken resolves a user from a live access token, for the
	// bearer extractor.
	ResolveAccessToken(ctx context.Context, token string) (*domain.User, error)
}
