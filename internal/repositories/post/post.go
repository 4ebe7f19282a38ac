package post

import (
	"context"
	"errors"
	"time"

	"github.com/brandbrain/metrics-pipeline/internal/domain"
	"github.com/google/uuid"
)

var ErrNotFound = errors.New("post not found")

//go:generate go run go.uber.org/mock/mockgen -source=post.go -destination=mocks/mock.go
type Repository interface {
	// GetByID returns a single post record
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PostRecord, error)

	// ListDueForCollection returns posts of an organization published after
	// publishedAfter whose snapshot is missing or was last fetched before
	// staleBefore. Ordered oldest published first.
	ListDueForCollection(ctx context.Context, orgID uuid.UUID, publishedAfter, staleBefore time.Time) ([]*domain.PostRecord, error)
}
