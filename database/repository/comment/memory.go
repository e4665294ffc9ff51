// File: database/repository/comment/memory.go
package commentRepo

import (
	"context"
	"sort"
	"sync"

	"onibook/models"
)

type memoryCommentRepo struct {
	mu       sync.Mutex
	comments []models.Comment
}

// NewMemoryCommentRepo constructs an in-memory CommentRepository.
func NewMemoryCommentRepo() CommentRepository {
	return &memoryCommentRepo{}
}

func (r *memoryCommentRepo) Insert(ctx context.Context, comment models.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.comments = append(r.comments, comment)
	return nil
}

func (r *memoryCommentRepo) List(ctx context.Context) ([]models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := append([]models.Comment(nil), r.comments...)
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}
