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
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTokenRepository struct {
	BaseRepository
}

func NewTokenRepository(db *pgxpool.Pool) portsrepo.TokenRepository {
	return &PgxTokenRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.TokenRepository = (*PgxTokenRepository)(nil)

// RotateTokens performs the delete-then-create rotation atomically. Two
// concurrent logins for the same user serialize here instead of interleaving
// their halves and leaving zero or duplicate live tokens.
func (r *PgxTokenRepository) RotateTokens(ctx context.Context, userID int64, access *domain.AccessToken, refresh *domain.RefreshToken) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM access_tokens WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to delete access tokens for user %d: %w", userID, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM refresh_tokens WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to delete refresh tokens for user %d: %w", userID, err)
	}

	now := time.Now()
	err = tx.QueryRow(ctx, `
        INSERT INTO access_tokens (token, user_id, expiry_time, created_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id;
    `, access.Token, userID, access.ExpiryTime, now).Scan(&access.ID)
	if err != nil {
		return fmt.Errorf("failed to create access token: %w", err)
	}
	access.CreatedAt = now

	var refreshExpiry *time.Time
	if !refresh.ExpiryTime.IsZero() {
		refreshExpiry = &refresh.ExpiryTime
	}
	err = tx.QueryRow(ctx, `
        INSERT INTO refresh_tokens (token, user_id, expiry_time, created_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id;
    `, refresh.Token, userID, refreshExpiry, now).Scan(&refresh.ID)
	if err != nil {
		return fmt.Errorf("failed to create refresh token: %w", err)
	}
	refresh.CreatedAt = now

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit token rotation: %w", err)
	}
	return nil
}

func (r *PgxTokenRepository) FindAccessToken(ctx context.Context, token string) (*domain.AccessToken, error) {
	query := `
        SELECT id, token, user_id, expiry_time, created_at
        FROM access_tokens
        WHERE token = $1;
    `
	var t domain.AccessToken
	err := r.Pool.QueryRow(ctx, query, token).Scan(
		&t.ID,
		&t.Token,
		&t.UserID,
		&t.ExpiryTime,
		&t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find access token: %w", err)
	}
	return &t, nil
}

func (r *PgxTokenRepository) FindRefreshToken(ctx context.Context, token string) (*domain.RefreshToken, error) {
	query := `
        SELECT id, token, user_id, expiry_time, created_at
        FROM refresh_tokens
        WHERE token = $1;
    `
	var t domain.RefreshToken
	var expiry *time.Time
	err := r.Pool.QueryRow(ctx, query, token).Scan(
		&t.ID,
		&t.Token,
		&t.UserID,
		&expiry,
		&t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find refresh token: %w", err)
	}
	if expiry != nil {
		t.ExpiryTime = *expiry
	}
	return &t, nil
}

func (r *PgxTokenRepository) DeleteTokensForUser(ctx context.Context, userID int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM access_tokens WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to delete access tokens for user %d: %w", userID, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM refresh_tokens WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to delete refresh tokens for user %d: %w", userID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit token revocation: %w", err)
	}
	return nil
}
