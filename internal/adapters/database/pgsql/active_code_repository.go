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

type PgxActiveCodeRepository struct {
	BaseRepository
}

func NewActiveCodeRepository(db *pgxpool.Pool) portsrepo.ActiveCodeRepository {
	return &PgxActiveCodeRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ActiveCodeRepository = (*PgxActiveCodeRepository)(nil)

func (r *PgxActiveCodeRepository) Create(ctx context.Context, code *domain.ActiveCode) error {
	now := time.Now()
	query := `
        INSERT INTO active_codes (user_id, code, code_type, state, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $5)
        RETURNING id;
    `
	err := r.Pool.QueryRow(ctx, query,
		code.UserID,
		code.Code,
		code.CodeType,
		code.State,
		now,
	).Scan(&code.ID)
	if err != nil {
		return fmt.Errorf("failed to create active code: %w", err)
	}
	code.CreatedAt = now
	code.UpdatedAt = now
	return nil
}

func (r *PgxActiveCodeRepository) FindByUserTypeAndCode(ctx context.Context, userID int64, codeType domain.CodeType, code string) (*domain.ActiveCode, error) {
	// Most recent first: re-requesting a code should not resurrect older ones.
	query := `
        SELECT id, user_id, code, code_type, state, created_at, updated_at
        FROM active_codes
        WHERE user_id = $1 AND code_type = $2 AND code = $3
        ORDER BY created_at DESC
        LIMIT 1;
    `
	var c domain.ActiveCode
	err := r.Pool.QueryRow(ctx, query, userID, codeType, code).Scan(
		&c.ID,
		&c.UserID,
		&c.Code,
		&c.CodeType,
		&c.State,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find active code: %w", err)
	}
	return &c, nil
}

func (r *PgxActiveCodeRepository) MarkConsumed(ctx context.Context, codeID int64) error {
	query := `
        UPDATE active_codes
        SET state = TRUE, updated_at = $2
        WHERE id = $1;
    `
	tag, err := r.Pool.Exec(ctx, query, codeID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to mark code %d consumed: %w", codeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
