package aggregatorimpl

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/brandbrain/metrics-pipeline/internal/aggregator"
	"github.com/brandbrain/metrics-pipeline/internal/domain"
	"github.com/brandbrain/metrics-pipeline/internal/repositories/snapshot"
	"github.com/brandbrain/metrics-pipeline/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	SnapshotRepo snapshot.Repository
	Logger       logger.Logger
}

type AggregatorImpl struct {
	SnapshotRepo snapshot.Repository
	Logger       logger.Logger
}

func New(opts Opts) *AggregatorImpl {
	return &AggregatorImpl{
		SnapshotRepo: opts.SnapshotRepo,
		Logger:       opts.Logger.WithComponent("Aggregator"),
	}
}

var _ aggregator.Client = (*AggregatorImpl)(nil)

const topPostsLimit = 10

// AggregatedMetrics rolls up a brand's snapshots in [start, end]. Groups are
// built incrementally from contributing snapshots, so every bucket has a
// positive count and no division by zero can occur.
func (a *AggregatorImpl) AggregatedMetrics(ctx context.Context, orgID uuid.UUID, start, end time.Time) (*domain.AggregatedMetrics, error) {
	snaps, err := a.SnapshotRepo.ListByOrg(ctx, orgID, start, end)
	if err != nil {
		return nil, fmt.Errorf("list snapshots for org %s: %w", orgID, err)
	}

	agg := &domain.AggregatedMetrics{
		OrganizationID: orgID,
		Start:          start,
		End:            end,
		ByDay:          make(map[time.Weekday]domain.GroupStat),
		ByHour:         make(map[int]domain.GroupStat),
	}

	formatGroups := make(map[domain.ContentFormat][]float64)
	platformGroups := make(map[domain.Platform]*domain.PlatformPerformance)

	for _, snap := range snaps {
		agg.TotalPosts++
		agg.TotalImpressions += snap.Metrics.Impressions
		agg.TotalEngagements += snap.Metrics.Engagements()
		agg.TotalReach += snap.Metrics.Reach

		format := snap.Format()
		formatGroups[format] = append(formatGroups[format], snap.EngagementRate)

		perf, ok := platformGroups[snap.Platform]
		if !ok {
			perf = &domain.PlatformPerformance{Platform: snap.Platform}
			platformGroups[snap.Platform] = perf
		}
		perf.Count++
		perf.TotalImpressions += snap.Metrics.Impressions
		perf.TotalEngagements += snap.Metrics.Engagements()
		perf.AvgEngagement += snap.EngagementRate

		day := time.Weekday(snap.Features.DayOfWeek)
		agg.ByDay[day] = accumulate(agg.ByDay[day], snap)
		agg.ByHour[snap.Features.HourOfDay] = accumulate(agg.ByHour[snap.Features.HourOfDay], snap)
	}

	agg.AvgEngagement = domain.EngagementRate(agg.TotalEngagements, agg.TotalImpressions)

	for format, rates := range formatGroups {
		agg.ByFormat = append(agg.ByFormat, domain.FormatPerformance{
			Format:        format,
			Count:         len(rates),
			AvgEngagement: mean(rates),
		})
	}
	sort.Slice(agg.ByFormat, func(i, j int) bool {
		return agg.ByFormat[i].AvgEngagement > agg.ByFormat[j].AvgEngagement
	})

	for _, perf := range platformGroups {
		perf.AvgEngagement /= float64(perf.Count)
		agg.ByPlatform = append(agg.ByPlatform, *perf)
	}
	sort.Slice(agg.ByPlatform, func(i, j int) bool {
		return agg.ByPlatform[i].AvgEngagement > agg.ByPlatform[j].AvgEngagement
	})

	finalizeGroups(agg.ByDay)
	finalizeGroups(agg.ByHour)

	agg.TopPosts = topPosts(snaps, topPostsLimit)

	return agg, nil
}

// PerformanceTrends returns the bucket series for the window.
func (a *AggregatorImpl) PerformanceTrends(ctx context.Context, orgID uuid.UUID, start, end time.Time, granularity domain.Granularity) ([]domain.TrendPoint, error) {
	if !granularity.Valid() {
		return nil, fmt.Errorf("invalid granularity %q", granularity)
	}

	snaps, err := a.SnapshotRepo.ListByOrg(ctx, orgID, start, end)
	if err != nil {
		return nil, fmt.Errorf("list snapshots for org %s: %w", orgID, err)
	}

	buckets := make(map[string]*domain.TrendPoint)
	for _, snap := range snaps {
		key := bucketKey(snap.PublishedAt, granularity)
		point, ok := buckets[key]
		if !ok {
			point = &domain.TrendPoint{Key: key}
			buckets[key] = point
		}
		point.Impressions += snap.Metrics.Impressions
		point.Engagements += snap.Metrics.Engagements()
		point.PostCount++
	}

	series := make([]domain.TrendPoint, 0, len(buckets))
	for _, point := range buckets {
		point.EngagementRate = domain.EngagementRate(point.Engagements, point.Impressions)
		series = append(series, *point)
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Key < series[j].Key })

	return series, nil
}

// bucketKey maps a publish time onto its bucket key. Week buckets are keyed
// by the Sunday that starts the week.
func bucketKey(t time.Time, granularity domain.Granularity) string {
	switch granularity {
	case domain.GranularityWeek:
		sunday := t.AddDate(0, 0, -int(t.Weekday()))
		return sunday.Format("2006-01-02")
	case domain.GranularityMonth:
		return t.Format("2006-01")
	default:
		return t.Format("2006-01-02")
	}
}

func accumulate(stat domain.GroupStat, snap *domain.MetricSnapshot) domain.GroupStat {
	stat.Count++
	stat.TotalEngaged += snap.Metrics.Engagements()
	stat.TotalImpressed += snap.Metrics.Impressions
	stat.AvgEngagement += snap.EngagementRate
	return stat
}

// finalizeGroups turns accumulated rate sums into averages. Every group in
// the map was created by at least one snapshot, so Count is never zero here.
func finalizeGroups[K comparable](groups map[K]domain.GroupStat) {
	for key, stat := range groups {
		stat.AvgEngagement /= float64(stat.Count)
		groups[key] = stat
	}
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func topPosts(snaps []*domain.MetricSnapshot, limit int) []domain.TopPost {
	ranked := make([]*domain.MetricSnapshot, len(snaps))
	copy(ranked, snaps)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].EngagementRate > ranked[j].EngagementRate
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	top := make([]domain.TopPost, 0, len(ranked))
	for _, snap := range ranked {
		top = append(top, domain.TopPost{
			PostID:         snap.PostID,
			Platform:       snap.Platform,
			Content:        snap.Content,
			EngagementRate: snap.EngagementRate,
			Impressions:    snap.Metrics.Impressions,
			PublishedAt:    snap.PublishedAt,
		})
	}
	return top
}
