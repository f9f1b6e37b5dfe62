package repositories

import (
	"context"

	"github.com/cgcym1234/authserver/internal/core/domain"
)

// ActiveCodeRepository persists verification codes. Codes are never deleted;
// consumption flips State.
type ActiveCodeRepository interface {
	// Create inserts the code and fills in its generated ID.
	Create(ctx context.Context, code *domain.ActiveCode) error
	// FindByUserTypeAndCode returns apperrors.ErrNotFound when no code row
	// matches the triple.
	FindByUserTypeAndCode(ctx context.Context, userID int64, codeType domain.CodeType, code string) (*domain.ActiveCode, error)
	// MarkConsumed sets State to true.
	MarkConsumed(ctx context.Context, codeID int64) error
}
