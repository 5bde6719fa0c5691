package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	apperrors "ouma-web/internal/errors"
	"ouma-web/internal/models"
	"ouma-web/internal/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ===========================================================================
// Auth Service Implementation
// ===========================================================================

// authServiceImpl implements AuthService
type authServiceImpl struct {
	userRepo repositories.AdminUserRepository
	logger   *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.AdminUserRepository, logger *zap.Logger) AuthService {
	return &authServiceImpl{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Login authenticates the admin with username and password
func (s *authServiceImpl) Login(ctx context.Context, username, password string) (*models.AdminUser, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		s.logger.Error("find admin by username failed",
			zap.Error(err),
			zap.String("username", username),
		)
		return nil, fmt.Errorf("find admin by username: %w", err)
	}

	if !user.CheckPassword(password) {
		s.logger.Warn("admin login rejected", zap.String("username", username))
		return nil, apperrors.ErrInvalidCredentials
	}

	s.logger.Info("admin logged in", zap.Uint("user_id", user.ID))
	return user, nil
}

// Account prefers the account named "admin", then the oldest one
func (s *authServiceImpl) Account(ctx context.Context) (*models.AdminUser, error) {
	user, err := s.userRepo.FindByUsername(ctx, models.DefaultAdminUsername)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find admin account: %w", err)
	}

	user, err = s.userRepo.FindFirst(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find admin account: %w", err)
	}
	return user, nil
}

// UpdateAccount the password is re-hashed only when provided
func (s *authServiceImpl) UpdateAccount(ctx context.Context, in AccountUpdate) (*models.AdminUser, error) {
	username := strings.TrimSpace(in.Username)

	user, err := s.Account(ctx)
	if err != nil {
		return nil, err
	}

	if user == nil {
		if username == "" || in.Password == "" {
			return nil, apperrors.New(apperrors.ErrInvalidInput, "username and password are required")
		}
		user = &models.AdminUser{Username: username}
		if err := user.SetPassword(in.Password); err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, apperrors.FromDB(err, "create admin account")
		}
		s.logger.Info("admin account created", zap.Uint("user_id", user.ID))
		return user, nil
	}

	if username != "" {
		user.Username = username
	}
	if in.Password != "" {
		if err := user.SetPassword(in.Password); err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, apperrors.FromDB(err, "update admin account")
	}

	s.logger.Info("admin account updated",
		zap.Uint("user_id", user.ID),
		zap.Bool("password_changed", in.Password != ""),
	)
	return user, nil
}
