package learningimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/brandbrain/metrics-pipeline/internal/domain"
	"github.com/google/uuid"
)

// GenerateForOrg produces new learnings for one brand. Below the minimum
// sample size it returns zero learnings instead of guessing. Language-model
// and parse failures are logged and also yield zero learnings; they never
// propagate.
func (g *GeneratorImpl) GenerateForOrg(ctx context.Context, orgID uuid.UUID) (domain.GenerationResult, error) {
	result := domain.GenerationResult{Learnings: []*domain.Learning{}}

	end := time.Now()
	start := end.AddDate(0, 0, -g.Config.Learning.WindowDays)

	snaps, err := g.SnapshotRepo.ListByOrg(ctx, orgID, start, end)
	if err != nil {
		return result, fmt.Errorf("list snapshots for org %s: %w", orgID, err)
	}

	if len(snaps) < g.Config.Learning.MinSamples {
		g.Logger.Info("Not enough snapshots to generate learnings",
			"org_id", orgID, "snapshots", len(snaps), "required", g.Config.Learning.MinSamples)
		return result, nil
	}

	agg, err := g.Aggregator.AggregatedMetrics(ctx, orgID, start, end)
	if err != nil {
		return result, fmt.Errorf("aggregate metrics for org %s: %w", orgID, err)
	}

	existing, err := g.LearningRepo.ListActive(ctx, orgID)
	if err != nil {
		return result, fmt.Errorf("list active learnings for org %s: %w", orgID, err)
	}

	top, bottom := splitSamples(snaps)
	messages := g.buildMessages(agg, top, bottom, existing)

	reply, err := g.LLM.Complete(ctx, messages)
	if err != nil {
		g.Logger.Error("Language model call failed, zero learnings this cycle", "org_id", orgID, "error", err)
		return result, nil
	}

	candidates, err := parseCandidates(reply)
	if err != nil {
		g.Logger.Error("Failed to parse model reply, zero learnings this cycle", "org_id", orgID, "error", err)
		return result, nil
	}

	// Candidates are checked against pre-existing learnings only; two new
	// candidates in the same batch are not checked against each other.
	for _, candidate := range candidates {
		if g.Dedup.IsDuplicate(candidate, existing) {
			g.Logger.Debug("Skipping duplicate learning", "org_id", orgID, "type", candidate.Type)
			continue
		}

		candidate.OrganizationID = orgID
		if err := g.LearningRepo.Create(ctx, candidate); err != nil {
			return result, fmt.Errorf("persist learning for org %s: %w", orgID, err)
		}

		result.Learnings = append(result.Learnings, candidate)
		result.Generated++
	}

	if err := g.LearningRepo.TouchLastAnalyzed(ctx, orgID); err != nil {
		return result, fmt.Errorf("touch last analyzed for org %s: %w", orgID, err)
	}

	g.Logger.Info("Generated learnings", "org_id", orgID,
		"candidates", len(candidates), "generated", result.Generated)

	return result, nil
}

// ProcessAll generates learnings for every organization. One brand failing
// never aborts the others.
func (g *GeneratorImpl) ProcessAll(ctx context.Context) (domain.GenerationSummary, error) {
	var summary domain.GenerationSummary

	orgs, err := g.OrgRepo.ListAll(ctx)
	if err != nil {
		return summary, fmt.Errorf("list organizations: %w", err)
	}

	for _, org := range orgs {
		if ctx.Err() != nil {
			return summary, ctx.Err()
		}

		summary.Organizations++

		result, err := g.GenerateForOrg(ctx, org.ID)
		if err != nil {
			summary.Failed++
			g.Logger.Error("Learning generation failed for organization", "org_id", org.ID, "error", err)
			continue
		}
		summary.Generated += result.Generated

		// Space out the model calls across brands.
		if g.Config.Learning.RequestDelay > 0 {
			select {
			case <-ctx.Done():
				return summary, ctx.Err()
			case <-time.After(g.Config.Learning.RequestDelay):
			}
		}
	}

	g.Logger.Info("Learning generation pass complete",
		"organizations", summary.Organizations, "generated", summary.Generated, "failed", summary.Failed)

	return summary, nil
}
