package learning

import (
	"context"
	"errors"

	"github.com/brandbrain/metrics-pipeline/internal/domain"
	"github.com/google/uuid"
)

var ErrNotFound = errors.New("learning not found")

//go:generate go run go.uber.org/mock/mockgen -source=learning.go -destination=mocks/mock.go
type Repository interface {
	// Create appends a new learning to the brand's store and fills in its ID
	Create(ctx context.Context, learning *domain.Learning) error

	// ListActive returns the brand's active learnings, newest first
	ListActive(ctx context.Context, orgID uuid.UUID) ([]*domain.Learning, error)

	// TouchLastAnalyzed records when the brand was last analyzed
	TouchLastAnalyzed(ctx context.Context, orgID uuid.UUID) error
}
