package service

import (
	"FrameVault/config"
	"FrameVault/internal/repo"
	"FrameVault/model"
	"FrameVault/utils"
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// AuthService verifies credentials and issues and validates session tokens.
type AuthService struct {
	users repo.UserRepo
	log   logrus.FieldLogger
}

// NewAuthService builds an AuthService.
func NewAuthService(users repo.UserRepo, log logrus.FieldLogger) *AuthService {
	return &AuthService{users: users, log: log}
}

// Register hashes the raw password and persists a new user. A taken
// username yields ErrDuplicateUser.
func (s *AuthService) Register(ctx context.Context, username, rawPassword string) (*model.User, error) {
	hash, err := utils.GetPwd(rawPassword)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &model.User{Username: username, Password: hash}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrDuplicateUser
		}
		return nil, fmt.Errorf("register user: %w", err)
	}
	return user, nil
}

// Authenticate looks the user up and checks the password. Both an unknown
// username and a hash mismatch yield ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, username, rawPassword string) (*model.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("authenticate user: %w", err)
	}
	if !utils.CheckPwd(rawPassword, user.Password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// IssueToken produces a signed session token for the user, expiring after
// the configured token lifetime.
func (s *AuthService) IssueToken(user *model.User) (string, error) {
	token, err := utils.GenerateToken(user.Username, config.AppConfig.TokenTTL())
	if err != nil {
		s.log.WithField("username", user.Username).WithError(err).Error("sign token failed")
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// CurrentUser validates a token and resolves its subject against the
// credential store. Any failure along the way is ErrUnauthenticated.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*model.User, error) {
	claims, err := utils.VerifyToken(token)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	user, err := s.users.FindByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("resolve token subject: %w", err)
	}
	return user, nil
}
