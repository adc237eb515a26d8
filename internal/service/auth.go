package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/tellis/tellis-go/internal/apperr"
	"github.com/tellis/tellis-go/internal/crypto"
	"github.com/tellis/tellis-go/internal/model"
	"github.com/tellis/tellis-go/internal/repository"
)

// AuthService handles registration, credential verification and token
// issuance.
type AuthService struct {
	repo      *repository.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		repo:      repo,
		jwtSecret: secret,
		tokenTTL:  ttl,
	}
}

// Register creates a new user account and mints a session token for it.
// The plaintext password is hashed immediately and never stored or logged.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, string, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, "", apperr.New(apperr.Validation, "Required fields missing")
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return nil, "", apperr.Wrap(apperr.Internal, "Internal server error", err)
	}

	now := time.Now().UTC()
	user := &model.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, "", apperr.New(apperr.Conflict, "User already exist with this email")
		}
		return nil, "", apperr.Wrap(apperr.Internal, "Internal server error", err)
	}

	token, err := crypto.GenerateToken(user.ID, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return nil, "", apperr.Wrap(apperr.Internal, "Internal server error", err)
	}

	return user, token, nil
}

// Login verifies credentials and mints a session token. A missing email and
// a wrong password fail differently on purpose: the API distinguishes an
// unknown account (404) from bad credentials (401).
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (*model.User, string, error) {
	if req.Email == "" || req.Password == "" {
		return nil, "", apperr.New(apperr.Validation, "Email or password missing")
	}

	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, "", apperr.New(apperr.NotFound, "User does not exist with this email")
		}
		return nil, "", apperr.Wrap(apperr.Internal, "Internal server error", err)
	}

	if !crypto.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, "", apperr.New(apperr.Unauthorized, "Invalid credentials")
	}

	token, err := crypto.GenerateToken(user.ID, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return nil, "", apperr.Wrap(apperr.Internal, "Internal server error", err)
	}

	return user, token, nil
}

// GetUser retrieves the authenticated user's record. A valid token for a
// since-deleted user yields NotFound.
func (s *AuthService) GetUser(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperr.New(apperr.NotFound, "User not found")
		}
		return nil, apperr.Wrap(apperr.Internal, "Internal server error", err)
	}
	return user, nil
}
