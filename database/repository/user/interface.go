// File: database/repository/user/interface.go
package userRepo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"onibook/database"
	"onibook/models"
	"onibook/utils"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrEmailTaken = errors.New("email already registered")
)

type UserRepository interface {
	// Create inserts a new account. A duplicate email returns ErrEmailTaken.
	Create(ctx context.Context, user models.User) error
	// GetByEmail returns the account for the email, or ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetByID returns the account for the id, or ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.User, error)
}

type mongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo constructs a MongoDB-backed UserRepository.
func NewMongoUserRepo() UserRepository {
	repo := &mongoUserRepo{
		coll: database.DB().Collection("users"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		utils.GetLogger().Sugar().Warnf("user repo: %v", err)
	}
	return repo
}
