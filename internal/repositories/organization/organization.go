package organization

import (
	"context"
	"errors"

	"github.com/brandbrain/metrics-pipeline/internal/domain"
	"github.com/google/uuid"
)

var ErrNotFound = errors.New("organization not found")

//go:generate go run go.uber.org/mock/mockgen -source=organization.go -destination=mocks/mock.go
type Repository interface {
	// GetByID returns a single organization
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Organization, error)

	// ListAll returns every organization, used by the batch jobs
	ListAll(ctx context.Context) ([]*domain.Organization, error)
}
