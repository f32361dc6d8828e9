package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"task-tracker.com/task-tracker/internal/auth"
	dto "task-tracker.com/task-tracker/internal/data_models"
	errs "task-tracker.com/task-tracker/internal/errors"
	model "task-tracker.com/task-tracker/internal/models"
	repository "task-tracker.com/task-tracker/internal/repositories"
)

type AuthService struct {
	users    *repository.UserRepository
	jwt      *auth.JWTManager
	denylist auth.TokenDenylist
}

func NewAuthService(
	users *repository.UserRepository,
	jwt *auth.JWTManager,
	denylist auth.TokenDenylist,
) *AuthService {
	return &AuthService{
		users:    users,
		jwt:      jwt,
		denylist: denylist,
	}
}

func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := normalizeEmail(req.Email)

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, errs.ErrEmailTaken
	} else if !errors.Is(err, errs.ErrUserNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, errs.ErrInvalidCredentials
	}

	return s.issueToken(user)
}

// Logout revokes the presented token until its natural expiry.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.jwt.Validate(token)
	if err != nil {
		return errs.ErrUnauthorized
	}

	return s.denylist.Revoke(ctx, token, claims.ExpiresAt.Time)
}

func (s *AuthService) Me(ctx context.Context, userID string) (*model.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *AuthService) issueToken(user *model.User) (*dto.AuthResponse, error) {
	token, _, err := s.jwt.Generate(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: token,
		User:  user,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
