// File: database/repository/comment/interface.go
package commentRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"onibook/database"
	"onibook/models"
)

type CommentRepository interface {
	// Insert appends one entry to the ledger.
	Insert(ctx context.Context, comment models.Comment) error
	// List returns all entries sorted by date descending.
	List(ctx context.Context) ([]models.Comment, error)
}

type mongoCommentRepo struct {
	coll *mongo.Collection
}

// NewMongoCommentRepo constructs a MongoDB-backed CommentRepository.
func NewMongoCommentRepo() CommentRepository {
	return &mongoCommentRepo{
		coll: database.DB().Collection("comments"),
	}
}
