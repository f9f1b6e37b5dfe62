package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cgcym1234/authserver/internal/apperrors"
	"github.com/cgcym1234/authserver/internal/core/domain"
	portsrepo "github.com/cgcym1234/authserver/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserAuthRepository struct {
	BaseRepository
}

func NewUserAuthRepository(db *pgxpool.Pool) portsrepo.UserAuthRepository {
	return &PgxUserAuthRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.UserAuthRepository = (*PgxUserAuthRepository)(nil)

func (r *PgxUserAuthRepository) FindByTypeAndIdentifier(ctx context.Context, identityType domain.AuthType, identifier string) (*domain.UserAuth, error) {
	query := `
        SELECT id, user_id, identity_type, identifier, credential, created_at, updated_at, deleted_at
        FROM user_auths
        WHERE identity_type = $1 AND identifier = $2 AND deleted_at IS NULL;
    `
	var a domain.UserAuth
	err := r.Pool.QueryRow(ctx, query, identityType, identifier).Scan(
		&a.ID,
		&a.UserID,
		&a.IdentityType,
		&a.Identifier,
		&a.Credential,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find credential (%s, %s): %w", identityType, identifier, err)
	}
	return &a, nil
}

func (r *PgxUserAuthRepository) Create(ctx context.Context, auth *domain.UserAuth) error {
	now := time.Now()
	query := `
        INSERT INTO user_auths (user_id, identity_type, identifier, credential, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $5)
        RETURNING id;
    `
	err := r.Pool.QueryRow(ctx, query,
		auth.UserID,
		auth.IdentityType,
		auth.Identifier,
		auth.Credential,
		now,
	).Scan(&auth.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505 unique_violation on (identity_type, identifier)
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to create credential: %w", err)
	}
	auth.CreatedAt = now
	auth.UpdatedAt = now
	return nil
}

func (r *PgxUserAuthRepository) UpdateCredential(ctx context.Context, authID int64, credential string) error {
	query := `
        UPDATE user_auths
        SET credential = $2, updated_at = $3
        WHERE id = $1 AND deleted_at IS NULL;
    `
	tag, err := r.Pool.Exec(ctx, query, authID, credential, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update credential %d: %w", authID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
