package repositories

import (
	"context"

	"github.com/cgcym1234/authserver/internal/core/domain"
)

// TokenRepository persists access and refresh tokens.
type TokenRepository interface {
	// RotateTokens deletes every token owned by the user and inserts the new
	// pair in a single transaction, so concurrent logins cannot interleave
	// their delete/create halves.
	RotateTokens(ctx context.Context, userID int64, access *domain.AccessToken, refresh *domain.RefreshToken) error
	// FindAccessToken returns apperrors.ErrNotFound for unknown token values.
	FindAccessToken(ctx context.Context, token string) (*domain.AccessToken, error)
	// FindRefreshToken returns apperrors.ErrNotFound for unknown token values.
	FindRefreshToken(ctx context.Context, token string) (*domain.RefreshToken, error)
	// DeleteTokensForUser removes every token for the user. Idempotent.
	DeleteTokensForUser(ctx context.Context, userID int64) error
}
