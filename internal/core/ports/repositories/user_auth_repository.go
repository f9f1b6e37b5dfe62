package repositories

import (
	"context"

	"github.com/cgcym1234/authserver/internal/core/domain"
)

// UserAuthRepository persists credential records. Uniqueness of
// (identity_type, identifier) and the user foreign key are enforced by the
// storage layer, not by callers.
type UserAuthRepository interface {
	// FindByTypeAndIdentifier returns apperrors.ErrNotFound on absence; callers
	// translate that into their own domain error.
	FindByTypeAndIdentifier(ctx context.Context, identityType domain.AuthType, identifier string) (*domain.UserAuth, error)
	// Create inserts the record and fills in its generated ID.
	Create(ctx context.Context, auth *domain.UserAuth) error
	// UpdateCredential replaces the stored hashed secret.
	UpdateCredential(ctx context.Context, authID int64, credential string) error
}
