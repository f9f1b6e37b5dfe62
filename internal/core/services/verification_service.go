package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/cgcym1234/authserver/internal/apperrors"
	"github.com/cgcym1234/authserver/internal/core/domain"
	portsrepo "github.com/cgcym1234/authserver/internal/core/ports/repositories"
	portssvc "github.com/cgcym1234/authserver/internal/core/ports/services"
	"github.com/cgcym1234/authserver/internal/utils"
)

const (
	// changePasswordCodeLength matches what users type from the email.
	changePasswordCodeLength = 4
	// activationCodeBytes sizes the hex code embedded in activation links.
	activationCodeBytes = 16
)

type verificationService struct {
	codeRepo portsrepo.ActiveCodeRepository
}

// NewVerificationService creates the verification-code service.
func NewVerificationService(repos *portsrepo.Container) portssvc.VerificationSvcFacade {
	return &verificationService{codeRepo: repos.ActiveCode}
}

func (s *verificationService) IssueCode(ctx context.Context, userID int64, codeType domain.CodeType) (*domain.ActiveCode, error) {
	var value string
	var err error
	switch codeType {
	case domain.CodeTypeChangePassword:
		value, err = utils.GenerateShortCode(changePasswordCodeLength)
	default:
		value, err = utils.GenerateHexString(activationCodeBytes)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to generate verification code: %w", err)
	}

	code := &domain.ActiveCode{
		UserID:   userID,
		Code:     value,
		CodeType: codeType,
		State:    false,
	}
	if err := s.codeRepo.Create(ctx, code); err != nil {
		return nil, err
	}
	return code, nil
}

func (s *verificationService) Confirm(ctx context.Context, userID int64, codeType domain.CodeType, code string) error {
	found, err := s.codeRepo.FindByUserTypeAndCode(ctx, userID, codeType, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.New(apperrors.CodeCodeFail)
		}
		return err
	}
	if found.State {
		// Consumed exactly once; a second confirm with the same code fails.
		return apperrors.New(apperrors.CodeCodeFail)
	}
	return s.codeRepo.MarkConsumed(ctx, found.ID)
}

func (s *verificationService) RequireConsumed(ctx context.Context, userID int64, codeType domain.CodeType, code string) error {
	found, err := s.codeRepo.FindByUserTypeAndCode(ctx, userID, codeType, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.New(apperrors.CodeCodeFail)
		}
		return err
	}
	// The code must have been activated through Confirm first; the password
	// change re-checks the consumed code rather than consuming it itself.
	if !found.State {
		return apperrors.New(apperrors.CodeCodeFail)
	}
	return nil
}
