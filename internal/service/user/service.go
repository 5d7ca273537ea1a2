package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/medqueue/hospital-api/internal/model"
	"github.com/medqueue/hospital-api/internal/repository"
	"github.com/medqueue/hospital-api/internal/service/captcha"
	"github.com/medqueue/hospital-api/pkg/auth"
	apperrors "github.com/medqueue/hospital-api/pkg/errors"
	"github.com/medqueue/hospital-api/pkg/security"
	"github.com/medqueue/hospital-api/pkg/validator"
)

const dateLayout = "2006-01-02"

type Service struct {
	users      repository.UserRepository
	hasher     security.PasswordHasher
	jwtSvc     auth.JWTService
	captchaSvc *captcha.Service
}

func NewService(users repository.UserRepository, hasher security.PasswordHasher,
	jwtSvc auth.JWTService, captchaSvc *captcha.Service) *Service {
	return &Service{
		users:      users,
		hasher:     hasher,
		jwtSvc:     jwtSvc,
		captchaSvc: captchaSvc,
	}
}

// Register validates the registration predicates, rejects duplicate
// usernames and stores the account with a hashed password.
func (s *Service) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	if !validator.IsValidUsername(req.Username) {
		return nil, apperrors.BadRequest("username must contain at least 3 letters", nil)
	}
	if !validator.IsValidPassword(req.Password) {
		return nil, apperrors.BadRequest("password must contain at least one uppercase letter, one number and one special character", nil)
	}
	if !validator.IsValidEmail(req.Email) {
		return nil, apperrors.BadRequest("email must be a valid gmail address", nil)
	}

	dob, err := time.Parse(dateLayout, req.DOB)
	if err != nil {
		return nil, apperrors.BadRequest("date of birth must be YYYY-MM-DD", err)
	}

	exists, err := s.users.Exists(ctx, req.Username)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if exists {
		return nil, apperrors.Conflict("username already exists", nil)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to hash password: %w", err))
	}

	user := &model.User{
		Username:     req.Username,
		PasswordHash: hash,
		FullName:     req.FullName,
		FatherName:   req.FatherName,
		DOB:          dob,
		Email:        req.Email,
		City:         req.City,
		State:        req.State,
		Country:      req.Country,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.Conflict("username already exists", err)
		}
		return nil, apperrors.Internal(err)
	}
	return user, nil
}

// Login verifies the captcha challenge, then the credentials, and
// issues a session token.
func (s *Service) Login(ctx context.Context, req *model.LoginRequest) (*model.TokenResponse, error) {
	if !validator.IsValidUsername(req.Username) {
		return nil, apperrors.BadRequest("username must contain at least 3 letters", nil)
	}
	if !validator.IsValidPassword(req.Password) {
		return nil, apperrors.BadRequest("password must contain at least one uppercase letter, one number and one special character", nil)
	}

	if err := s.captchaSvc.Verify(ctx, req.CaptchaID, req.CaptchaAnswer); err != nil {
		return nil, apperrors.BadRequest("incorrect captcha", err)
	}

	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("user", err)
		}
		return nil, apperrors.Internal(err)
	}

	if err := s.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		return nil, apperrors.Unauthorized(errors.New("incorrect password"))
	}

	token, err := s.jwtSvc.GenerateAccessToken(user.Username)
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to generate token: %w", err))
	}
	return &model.TokenResponse{AccessToken: token}, nil
}

// Profile returns the stored account for the authenticated user.
func (s *Service) Profile(ctx context.Context, username string) (*model.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("user", err)
		}
		return nil, apperrors.Internal(err)
	}
	return user, nil
}
