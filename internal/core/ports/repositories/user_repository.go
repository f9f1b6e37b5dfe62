package repositories

import (
	"context"

	"github.com/cgcym1234/authserver/internal/core/domain"
)

// UserRepository persists identities.
type UserRepository interface {
	// CreateUser inserts the user and fills in its generated ID.
	CreateUser(ctx context.Context, user *domain.User) error
	// FindUserByID returns apperrors.ErrNotFound for unknown or soft-deleted users.
	FindUserByID(ctx context.Context, userID int64) (*domain.User, error)
	// FindUserByEmail returns apperrors.ErrNotFound when no live user has the email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	// UpdateUser persists profile changes.
	UpdateUser(ctx context.Context, user *domain.User) error
}
