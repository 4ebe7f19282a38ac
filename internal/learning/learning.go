package learning

import (
	"context"

	"github.com/brandbrain/metrics-pipeline/internal/domain"
	"github.com/google/uuid"
)

// Client turns aggregated performance data into brand learnings.
type Client interface {
	// GenerateForOrg produces new, deduplicated learnings for one brand.
	// Language-model and parse failures are absorbed: the brand simply gets
	// zero learnings this cycle.
	GenerateForOrg(ctx context.Context, orgID uuid.UUID) (domain.GenerationResult, error)

	// ProcessAll generates learnings for every organization, isolating
	// per-brand failures.
	ProcessAll(ctx context.Context) (domain.GenerationSummary, error)

	// ScheduleGeneration registers the daily learning-generation job.
	ScheduleGeneration(ctx context.Context) error
}
