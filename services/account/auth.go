package account

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	userRepo "onibook/database/repository/user"
	"onibook/models"
	"onibook/utils"
)

// tokenTTL matches the session length the salon's admin dashboard expects.
const tokenTTL = 7 * 24 * time.Hour

// ErrInvalidCredentials covers both unknown emails and wrong passwords so a
// login failure does not reveal which one it was.
var ErrInvalidCredentials = errors.New("invalid email or password")

// EmailTakenError signals a registration against an existing email.
type EmailTakenError struct {
	Email string
}

func (e EmailTakenError) Error() string {
	return fmt.Sprintf("email %q is already registered", e.Email)
}

func (s *DefaultAccountService) Register(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, errors.New("email must not be empty")
	}
	if len(password) < 6 {
		return nil, errors.New("password must be at least 6 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleClient,
		CreatedAt:    time.Now(),
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		if errors.Is(err, userRepo.ErrEmailTaken) {
			return nil, EmailTakenError{Email: email}
		}
		return nil, err
	}
	return &user, nil
}

func (s *DefaultAccountService) Login(ctx context.Context, email, password string) (*Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	// Record the token hash so the middleware can treat missing entries as
	// revoked. Login still succeeds when redis is down; the middleware
	// degrades the same way.
	if s.Sessions != nil {
		key := utils.AuthCachePrefix + user.ID
		if err := s.Sessions.Set(ctx, key, utils.HashToken(token), utils.AuthCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("failed to cache session token", zap.Error(err))
		}
	}

	return &Session{Token: token, Role: user.Role, UserID: user.ID}, nil
}

// EnsureAdmin creates the admin bootstrap account from injected config at
// startup. An existing account is left untouched.
func (s *DefaultAccountService) EnsureAdmin(ctx context.Context, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return errors.New("admin bootstrap credentials are not configured")
	}

	if _, err := s.Repo.GetByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, userRepo.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	admin := models.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		CreatedAt:    time.Now(),
	}
	if err := s.Repo.Create(ctx, admin); err != nil && !errors.Is(err, userRepo.ErrEmailTaken) {
		return err
	}
	return nil
}
