package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"contact-manager/internal/config"
	domainUser "contact-manager/internal/domain/user"
	"contact-manager/internal/logger"
	"contact-manager/internal/validation"
	apperrors "contact-manager/pkg/errors"
	"contact-manager/pkg/utils"
)

// Service implements user use cases.
type Service struct {
	userRepo domainUser.Repository
	config   *config.Config
}

func NewService(userRepo domainUser.Repository, cfg *config.Config) *Service {
	return &Service{
		userRepo: userRepo,
		config:   cfg,
	}
}

func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*UserResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	count, err := s.userRepo.CountByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if count != 0 {
		logger.Warn("Registration attempt with existing username",
			zap.String("username", req.Username),
			zap.String("event", "registration_failed_duplicate_username"),
		)
		return nil, apperrors.ErrUserAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(req.Password, s.config.Auth.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domainUser.User{
		Username:     req.Username,
		Name:         req.Name,
		PasswordHash: hashedPassword,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domainUser.ErrUserAlreadyExists) {
			return nil, apperrors.ErrUserAlreadyExists
		}
		return nil, err
	}

	logger.Info("User registered",
		zap.String("username", user.Username),
		zap.String("event", "user_registered"),
	)

	return ToUserResponse(user), nil
}

// Login verifies credentials and rotates the session token. Unknown username
// and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*UserResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, domainUser.ErrUserNotFound) {
			logger.Warn("Login attempt with unknown username",
				zap.String("username", req.Username),
				zap.String("event", "login_failed_unknown_username"),
			)
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		logger.Warn("Login attempt with invalid password",
			zap.String("username", user.Username),
			zap.String("event", "login_failed_invalid_password"),
		)
		return nil, apperrors.ErrInvalidCredentials
	}

	token := uuid.New().String()
	user.Token = &token
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to store session token: %w", err)
	}

	logger.Info("User logged in",
		zap.String("username", user.Username),
		zap.String("event", "login_success"),
	)

	response := ToUserResponse(user)
	response.Token = token

	return response, nil
}

// Current shapes the already-authenticated identity. No validation, no lookup.
func (s *Service) Current(_ context.Context, user *domainUser.User) (*UserResponse, error) {
	return ToUserResponse(user), nil
}

func (s *Service) Update(ctx context.Context, user *domainUser.User, req *UpdateUserRequest) (*UserResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}

	if req.Password != nil {
		hashedPassword, err := utils.HashPassword(*req.Password, s.config.Auth.BcryptCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hashedPassword
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("User updated",
		zap.String("username", user.Username),
		zap.String("event", "user_updated"),
	)

	return ToUserResponse(user), nil
}

// Logout clears the session token. The user row itself survives, so the
// username stays taken and later registrations with it keep failing.
func (s *Service) Logout(ctx context.Context, user *domainUser.User) (*UserResponse, error) {
	snapshot := ToUserResponse(user)

	user.Token = nil
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("User logged out",
		zap.String("username", user.Username),
		zap.String("event", "user_logged_out"),
	)

	return snapshot, nil
}
