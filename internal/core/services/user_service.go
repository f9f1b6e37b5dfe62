package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/cgcym1234/authserver/internal/apperrors"
	"github.com/cgcym1234/authserver/internal/core/domain"
	portsrepo "github.com/cgcym1234/authserver/internal/core/ports/repositories"
	portssvc "github.com/cgcym1234/authserver/internal/core/ports/services"
	"github.com/cgcym1234/authserver/internal/dto"
	"github.com/cgcym1234/authserver/internal/utils"
)

type userService struct {
	userRepo     portsrepo.UserRepository
	userAuthRepo portsrepo.UserAuthRepository

	auth         portssvc.AuthSvcFacade
	verification portssvc.VerificationSvcFacade
	mailer       portssvc.Mailer

	publicBaseURL string
}

// NewUserService creates the registration/login/account service.
func NewUserService(
	repos *portsrepo.Container,
	auth portssvc.AuthSvcFacade,
	verification portssvc.VerificationSvcFacade,
	mailer portssvc.Mailer,
	publicBaseURL string,
) portssvc.UserSvcFacade {
	return &userService{
		userRepo:      repos.User,
		userAuthRepo:  repos.UserAuth,
		auth:          auth,
		verification:  verification,
		mailer:        mailer,
		publicBaseURL: publicBaseURL,
	}
}

func (s *userService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.TokenPair, error) {
	// Uniqueness check happens before any write.
	_, err := s.userAuthRepo.FindByTypeAndIdentifier(ctx, domain.AuthTypeEmail, req.Email)
	if err == nil {
		return nil, apperrors.New(apperrors.CodeUserExist)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	user := &domain.User{
		Name:  req.Name,
		Email: req.Email,
	}
	if req.OrganizID != nil {
		user.OrganizID = *req.OrganizID
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	auth := &domain.UserAuth{
		UserID:       user.UserID,
		IdentityType: domain.AuthTypeEmail,
		Identifier:   req.Email,
		Credential:   hashed,
	}
	if err := s.userAuthRepo.Create(ctx, auth); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.New(apperrors.CodeUserExist)
		}
		return nil, err
	}

	if err := s.sendActivationEmail(ctx, user); err != nil {
		return nil, err
	}

	return s.auth.Issue(ctx, user.UserID)
}

func (s *userService) Login(ctx context.Context, req dto.EmailLoginRequest) (*domain.TokenPair, error) {
	user, err := s.auth.VerifyPassword(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	return s.auth.Issue(ctx, user.UserID)
}

func (s *userService) NewPassword(ctx context.Context, req dto.NewPasswordRequest) error {
	auth, err := s.userAuthRepo.FindByTypeAndIdentifier(ctx, domain.AuthTypeEmail, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.New(apperrors.CodeModelNotExist)
		}
		return err
	}

	if !utils.CheckPasswordHash(req.Password, auth.Credential) {
		return apperrors.New(apperrors.CodeAuthFail)
	}

	// The code must already be in the consumed state: the client first hits
	// the activation endpoint with it, then submits the new password.
	if err := s.verification.RequireConsumed(ctx, auth.UserID, domain.CodeTypeChangePassword, req.Code); err != nil {
		return err
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.userAuthRepo.UpdateCredential(ctx, auth.ID, hashed)
}

func (s *userService) SendChangePasswordCode(ctx context.Context, email string) error {
	auth, err := s.userAuthRepo.FindByTypeAndIdentifier(ctx, domain.AuthTypeEmail, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.New(apperrors.CodeModelNotExist)
		}
		return err
	}

	code, err := s.verification.IssueCode(ctx, auth.UserID, domain.CodeTypeChangePassword)
	if err != nil {
		return err
	}
	return s.mailer.SendChangePasswordCode(email, code.Code)
}

func (s *userService) ActivateRegisterCode(ctx context.Context, userID int64, code string) error {
	return s.verification.Confirm(ctx, userID, domain.CodeTypeActiveAccount, code)
}

func (s *userService) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.New(apperrors.CodeUserNotExist)
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID int64, req dto.UpdateProfileRequest) (*domain.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Avatar != nil {
		user.Avatar = *req.Avatar
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Info != nil {
		user.Info = *req.Info
	}
	if req.OrganizID != nil {
		user.OrganizID = *req.OrganizID
	}

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) sendActivationEmail(ctx context.Context, user *domain.User) error {
	if user.Email == "" {
		return apperrors.New(apperrors.CodeEmailNotExist)
	}
	code, err := s.verification.IssueCode(ctx, user.UserID, domain.CodeTypeActiveAccount)
	if err != nil {
		return err
	}
	link := fmt.Sprintf("%s/api/users/activate?userId=%d&code=%s", s.publicBaseURL, user.UserID, code.Code)
	return s.mailer.SendAccountActivation(user.Email, link)
}
