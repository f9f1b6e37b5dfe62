package services

import (
	"context"

	"github.com/cgcym1234/authserver/internal/core/domain"
)

// VerificationSvcFacade manages one-time email verification codes.
type VerificationSvcFacade interface {
	// IssueCode generates and persists an unconsumed code of the given type.
	IssueCode(ctx context.Context, userID int64, codeType domain.CodeType) (*domain.ActiveCode, error)
	// Confirm matches an unconsumed code and flips it to consumed. Any
	// mismatch, including an already-consumed code, fails with CodeCodeFail.
	Confirm(ctx context.Context, userID int64, codeType domain.CodeType, code string) error
	// RequireConsumed checks that the code exists and has already been
	// activated. The password-change flow runs Confirm first and re-checks the
	// consumed code when the new password is finally submitted.
	RequireConsumed(ctx context.Context, userID int64, codeType domain.CodeType, code string) error
}

// Mailer delivers verification mail out of band.
type Mailer interface {
	SendAccountActivation(to, link string) error
	SendChangePasswordCode(to, code string) error
}
