package aggregator

import (
	"context"
	"time"

	"github.com/brandbrain/metrics-pipeline/internal/domain"
	"github.com/google/uuid"
)

// Client computes read-only statistical rollups over stored snapshots.
// It never writes snapshots.
//
//go:generate go run go.uber.org/mock/mockgen -source=aggregator.go -destination=mocks/mock.go
type Client interface {
	// AggregatedMetrics rolls up a brand's snapshots in [start, end].
	AggregatedMetrics(ctx context.Context, orgID uuid.UUID, start, end time.Time) (*domain.AggregatedMetrics, error)

	// PerformanceTrends returns the chronologically sorted bucket series for
	// the window at the given granularity.
	PerformanceTrends(ctx context.Context, orgID uuid.UUID, start, end time.Time, granularity domain.Granularity) ([]domain.TrendPoint, error)
}
