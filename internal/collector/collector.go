package collector

import (
	"context"

	"github.com/brandbrain/metrics-pipeline/internal/domain"
	"github.com/google/uuid"
)

// Client runs metric collection over published posts.
type Client interface {
	// CollectPost fetches, normalizes and upserts the snapshot for one post.
	CollectPost(ctx context.Context, post *domain.PostRecord) (*domain.MetricSnapshot, error)

	// CollectOrg runs a collection pass over one organization's due posts.
	CollectOrg(ctx context.Context, orgID uuid.UUID) (domain.CollectStats, error)

	// CollectAll runs a collection pass over every organization.
	CollectAll(ctx context.Context) (domain.CollectStats, error)

	// ScheduleCollection registers the recurring collection job.
	ScheduleCollection(ctx context.Context) error

	// ScheduleDatabaseCleanup registers the daily snapshot retention job.
	ScheduleDatabaseCleanup(ctx context.Context) error
}
