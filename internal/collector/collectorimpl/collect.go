package collectorimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/brandbrain/metrics-pipeline/internal/content"
	"github.com/brandbrain/metrics-pipeline/internal/domain"
	"github.com/google/uuid"
)

// CollectPost fetches current counters for one post, computes the derived
// engagement rate and content features, and upserts the snapshot.
func (c *CollectorImpl) CollectPost(ctx context.Context, record *domain.PostRecord) (*domain.MetricSnapshot, error) {
	fetcher, ok := c.Registry.ForPlatform(record.Platform)
	if !ok {
		return nil, fmt.Errorf("no fetcher for platform %s", record.Platform)
	}

	raw, err := fetcher.FetchRawMetrics(ctx, record.AccessToken, record.PlatformPostID)
	if err != nil {
		return nil, fmt.Errorf("fetch metrics for post %s: %w", record.ID, err)
	}

	snap := domain.MetricSnapshot{
		PostID:         record.ID,
		OrganizationID: record.OrganizationID,
		Platform:       record.Platform,
		Metrics:        *raw,
		EngagementRate: domain.EngagementRate(raw.Engagements(), raw.Impressions),
		Features:       content.Analyze(record.Content, record.PublishedAt, record.HasMedia()),
		Content:        record.Content,
		PublishedAt:    record.PublishedAt,
	}

	if err := c.SnapshotRepo.Upsert(ctx, snap); err != nil {
		return nil, fmt.Errorf("upsert snapshot for post %s: %w", record.ID, err)
	}

	return &snap, nil
}

// CollectOrg runs a collection pass over one organization. Posts are
// processed sequentially; the pacer spaces out the platform calls. A failed
// post is counted and skipped, never aborts the batch.
func (c *CollectorImpl) CollectOrg(ctx context.Context, orgID uuid.UUID) (domain.CollectStats, error) {
	var stats domain.CollectStats

	publishedAfter := time.Now().AddDate(0, 0, -c.Config.Collector.LookbackDays)
	staleBefore := time.Now().Add(-c.Config.Collector.RefetchAfter)

	records, err := c.PostRepo.ListDueForCollection(ctx, orgID, publishedAfter, staleBefore)
	if err != nil {
		return stats, fmt.Errorf("list due posts for org %s: %w", orgID, err)
	}

	if len(records) == 0 {
		c.Logger.Debug("No posts due for collection", "org_id", orgID)
		return stats, nil
	}

	c.Logger.Info("Collecting metrics", "org_id", orgID, "posts", len(records))

	for _, record := range records {
		if ctx.Err() != nil {
			return stats, ctx.Err()
		}

		if err := c.Pacer.Wait(ctx, record.Platform); err != nil {
			return stats, err
		}

		stats.Processed++
		if _, err := c.CollectPost(ctx, record); err != nil {
			stats.Errors++
			c.Logger.Warn("Failed to collect post metrics, will retry next cycle",
				"post_id", record.ID, "platform", record.Platform, "error", err)
			continue
		}
		stats.Updated++
	}

	return stats, nil
}

// CollectAll runs a collection pass over every organization, isolating
// per-organization failures.
func (c *CollectorImpl) CollectAll(ctx context.Context) (domain.CollectStats, error) {
	var total domain.CollectStats

	orgs, err := c.OrgRepo.ListAll(ctx)
	if err != nil {
		return total, fmt.Errorf("list organizations: %w", err)
	}

	for _, org := range orgs {
		if ctx.Err() != nil {
			return total, ctx.Err()
		}

		stats, err := c.CollectOrg(ctx, org.ID)
		total.Add(stats)
		if err != nil {
			c.Logger.Error("Collection pass failed for organization", "org_id", org.ID, "error", err)
			continue
		}
	}

	c.Logger.Info("Collection pass complete",
		"processed", total.Processed, "updated", total.Updated, "errors", total.Errors)

	return total, nil
}
