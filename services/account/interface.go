package account

import (
	"context"

	"github.com/go-redis/redis/v8"

	userRepo "onibook/database/repository/user"
	"onibook/models"
)

// Session is the result of a successful login.
type Session struct {
	Token  string `json:"token"`
	Role   string `json:"role"`
	UserID string `json:"userId"`
}

type Service interface {
	// Register creates an account with the client role.
	Register(ctx context.Context, email, password string) (*models.User, error)
	// Login verifies credentials and issues a signed token carrying the
	// account's role claim.
	Login(ctx context.Context, email, password string) (*Session, error)
	// EnsureAdmin creates the admin bootstrap account if it does not exist.
	EnsureAdmin(ctx context.Context, email, password string) error
}

// DefaultAccountService implements Service over the user store. Sessions is
// optional: when a redis client is present, login records the token hash so
// the auth middleware can check revocation; when absent, tokens stand alone.
type DefaultAccountService struct {
	Repo     userRepo.UserRepository
	Sessions *redis.Client
}
