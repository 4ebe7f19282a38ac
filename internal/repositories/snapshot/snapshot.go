package snapshot

import (
	"context"
	"errors"
	"time"

	"github.com/brandbrain/metrics-pipeline/internal/domain"
	"github.com/google/uuid"
)

var ErrNotFound = errors.New("metric snapshot not found")

//go:generate go run go.uber.org/mock/mockgen -source=snapshot.go -destination=mocks/mock.go
type Repository interface {
	// Upsert writes the snapshot for a post. The first write inserts a row
	// with fetch_count 1; subsequent writes overwrite the metric values and
	// increment fetch_count. At most one row exists per post.
	Upsert(ctx context.Context, snap domain.MetricSnapshot) error

	// GetByPostID returns the live snapshot for a post
	GetByPostID(ctx context.Context, postID uuid.UUID) (*domain.MetricSnapshot, error)

	// ListByOrg returns all snapshots for an organization whose post was
	// published within [start, end], ordered by publish time.
	ListByOrg(ctx context.Context, orgID uuid.UUID, start, end time.Time) ([]*domain.MetricSnapshot, error)

	// CleanupOldRecords deletes snapshots whose post published before the cutoff
	CleanupOldRecords(ctx context.Context, olderThan time.Duration) (int64, error)
}
