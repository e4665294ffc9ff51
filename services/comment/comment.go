package comment

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	commentRepo "onibook/database/repository/comment"
	"onibook/models"
)

// Service is the review ledger: append-only, no uniqueness constraint,
// newest first on read. It has no interaction with scheduling.
type Service interface {
	Create(ctx context.Context, name, message string, rating int, image string) (*models.Comment, error)
	List(ctx context.Context) ([]models.Comment, error)
}

type DefaultCommentService struct {
	Repo commentRepo.CommentRepository
}

func (s *DefaultCommentService) Create(ctx context.Context, name, message string, rating int, image string) (*models.Comment, error) {
	name = strings.TrimSpace(name)
	message = strings.TrimSpace(message)
	if name == "" {
		return nil, ValidationError{Field: "name"}
	}
	if message == "" {
		return nil, ValidationError{Field: "message"}
	}
	if rating <= 0 {
		rating = 5
	}

	c := models.Comment{
		ID:      uuid.New().String(),
		Name:    name,
		Message: message,
		Rating:  rating,
		Image:   strings.TrimSpace(image),
		Date:    time.Now(),
	}
	if err := s.Repo.Insert(ctx, c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *DefaultCommentService) List(ctx context.Context) ([]models.Comment, error) {
	return s.Repo.List(ctx)
}
