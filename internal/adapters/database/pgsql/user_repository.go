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

type PgxUserRepository struct {
	BaseRepository
}

func NewUserRepository(db *pgxpool.Pool) portsrepo.UserRepository {
	return &PgxUserRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

func (r *PgxUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	if user.OrganizID == 0 {
		user.OrganizID = domain.DefaultOrganizationID
	}
	now := time.Now()
	query := `
        INSERT INTO users (name, email, phone, avatar, info, organiz_id, created_at, updated_at)
        VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''), $5, $6, $7, $7)
        RETURNING id;
    `
	err := r.Pool.QueryRow(ctx, query,
		user.Name,
		user.Email,
		user.Phone,
		user.Avatar,
		user.Info,
		user.OrganizID,
		now,
	).Scan(&user.UserID)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	user.CreatedAt = now
	user.UpdatedAt = now
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	query := `
        SELECT id, name, COALESCE(email, ''), COALESCE(phone, ''), COALESCE(avatar, ''), COALESCE(info, ''),
               organiz_id, created_at, updated_at, deleted_at
        FROM users
        WHERE id = $1 AND deleted_at IS NULL;
    `
	return r.scanUser(r.Pool.QueryRow(ctx, query, userID))
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
        SELECT id, name, COALESCE(email, ''), COALESCE(phone, ''), COALESCE(avatar, ''), COALESCE(info, ''),
               organiz_id, created_at, updated_at, deleted_at
        FROM users
        WHERE email = $1 AND deleted_at IS NULL;
    `
	return r.scanUser(r.Pool.QueryRow(ctx, query, email))
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	query := `
        UPDATE users
        SET name = $2, email = NULLIF($3, ''), phone = NULLIF($4, ''), avatar = NULLIF($5, ''),
            info = $6, organiz_id = $7, updated_at = $8
        WHERE id = $1 AND deleted_at IS NULL;
    `
	tag, err := r.Pool.Exec(ctx, query,
		user.UserID,
		user.Name,
		user.Email,
		user.Phone,
		user.Avatar,
		user.Info,
		user.OrganizID,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to update user %d: %w", user.UserID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.UserID,
		&u.Name,
		&u.Email,
		&u.Phone,
		&u.Avatar,
		&u.Info,
		&u.OrganizID,
		&u.CreatedAt,
		&u.UpdatedAt,
		&u.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return &u, nil
}
