package aggregatorimpl

import (
	"context"
	"testing"
	"time"

	"github.com/brandbrain/metrics-pipeline/internal/domain"
	mock_snapshot "github.com/brandbrain/metrics-pipeline/internal/repositories/snapshot/mocks"
	"github.com/brandbrain/metrics-pipeline/pkg/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAggregator(t *testing.T) (*AggregatorImpl, *mock_snapshot.MockRepository) {
	ctrl := gomock.NewController(t)
	repo := mock_snapshot.NewMockRepository(ctrl)

	agg := New(Opts{
		SnapshotRepo: repo,
		Logger:       logger.New(logger.Opts{}),
	})
	return agg, repo
}

func twitterSnap(impressions, likes, comments, shares int64, publishedAt time.Time) *domain.MetricSnapshot {
	metrics := domain.RawMetrics{
		Impressions: impressions,
		Likes:       likes,
		Comments:    comments,
		Shares:      shares,
	}
	return &domain.MetricSnapshot{
		PostID:         uuid.New(),
		Platform:       domain.PlatformTwitter,
		Metrics:        metrics,
		EngagementRate: domain.EngagementRate(metrics.Engagements(), impressions),
		Features: domain.ContentFeatures{
			DayOfWeek: int(publishedAt.Weekday()),
			HourOfDay: publishedAt.Hour(),
		},
		PublishedAt: publishedAt,
	}
}

func TestAggregatedMetrics_PlatformGrouping(t *testing.T) {
	agg, repo := newTestAggregator(t)
	orgID := uuid.New()
	publishedAt := time.Date(2024, 4, 2, 10, 0, 0, 0, time.UTC)

	// 6 Twitter posts at 10% and 4 LinkedIn posts at 5%
	var snaps []*domain.MetricSnapshot
	for i := 0; i < 6; i++ {
		snaps = append(snaps, twitterSnap(1000, 100, 0, 0, publishedAt))
	}
	for i := 0; i < 4; i++ {
		snap := twitterSnap(1000, 50, 0, 0, publishedAt)
		snap.Platform = domain.PlatformLinkedIn
		snaps = append(snaps, snap)
	}

	repo.EXPECT().ListByOrg(gomock.Any(), orgID, gomock.Any(), gomock.Any()).Return(snaps, nil)

	result, err := agg.AggregatedMetrics(context.Background(), orgID, publishedAt.AddDate(0, 0, -30), publishedAt)
	require.NoError(t, err)

	require.Len(t, result.ByPlatform, 2)

	byPlatform := make(map[domain.Platform]domain.PlatformPerformance)
	for _, perf := range result.ByPlatform {
		byPlatform[perf.Platform] = perf
	}

	twitter := byPlatform[domain.PlatformTwitter]
	assert.Equal(t, 6, twitter.Count)
	assert.InDelta(t, 10.0, twitter.AvgEngagement, 1e-9)
	assert.Equal(t, int64(6000), twitter.TotalImpressions)

	linkedin := byPlatform[domain.PlatformLinkedIn]
	assert.Equal(t, 4, linkedin.Count)
	assert.InDelta(t, 5.0, linkedin.AvgEngagement, 1e-9)
}

func TestAggregatedMetrics_SixPostScenario(t *testing.T) {
	agg, repo := newTestAggregator(t)
	orgID := uuid.New()
	publishedAt := time.Date(2024, 4, 2, 10, 0, 0, 0, time.UTC)

	// five posts at 6.5%, one at 0.5%
	var snaps []*domain.MetricSnapshot
	for i := 0; i < 5; i++ {
		snaps = append(snaps, twitterSnap(1000, 50, 10, 5, publishedAt))
	}
	snaps = append(snaps, twitterSnap(1000, 5, 0, 0, publishedAt))

	repo.EXPECT().ListByOrg(gomock.Any(), orgID, gomock.Any(), gomock.Any()).Return(snaps, nil)

	result, err := agg.AggregatedMetrics(context.Background(), orgID, publishedAt.AddDate(0, 0, -30), publishedAt)
	require.NoError(t, err)

	assert.Equal(t, 6, result.TotalPosts)
	// equal impressions per post, so the aggregate rate is the mean of the
	// six individual rates: (5*6.5 + 0.5) / 6
	assert.InDelta(t, 5.5, result.AvgEngagement, 1e-9)

	require.Len(t, result.TopPosts, 6)
	for i := 0; i < 5; i++ {
		assert.InDelta(t, 6.5, result.TopPosts[i].EngagementRate, 1e-9)
	}
	assert.InDelta(t, 0.5, result.TopPosts[5].EngagementRate, 1e-9)
}

func TestAggregatedMetrics_TopPostsLimit(t *testing.T) {
	agg, repo := newTestAggregator(t)
	orgID := uuid.New()
	publishedAt := time.Date(2024, 4, 2, 10, 0, 0, 0, time.UTC)

	var snaps []*domain.MetricSnapshot
	for i := int64(1); i <= 15; i++ {
		snaps = append(snaps, twitterSnap(1000, i*10, 0, 0, publishedAt))
	}

	repo.EXPECT().ListByOrg(gomock.Any(), orgID, gomock.Any(), gomock.Any()).Return(snaps, nil)

	result, err := agg.AggregatedMetrics(context.Background(), orgID, publishedAt.AddDate(0, 0, -30), publishedAt)
	require.NoError(t, err)

	require.Len(t, result.TopPosts, 10)
	assert.InDelta(t, 15.0, result.TopPosts[0].EngagementRate, 1e-9)
	assert.InDelta(t, 6.0, result.TopPosts[9].EngagementRate, 1e-9)
}

func TestAggregatedMetrics_GroupsOnlyForContributingBuckets(t *testing.T) {
	agg, repo := newTestAggregator(t)
	orgID := uuid.New()

	tuesday := time.Date(2024, 4, 2, 9, 0, 0, 0, time.UTC)
	friday := time.Date(2024, 4, 5, 17, 0, 0, 0, time.UTC)

	snaps := []*domain.MetricSnapshot{
		twitterSnap(1000, 100, 0, 0, tuesday),
		twitterSnap(1000, 50, 0, 0, friday),
	}

	repo.EXPECT().ListByOrg(gomock.Any(), orgID, gomock.Any(), gomock.Any()).Return(snaps, nil)

	result, err := agg.AggregatedMetrics(context.Background(), orgID, tuesday.AddDate(0, 0, -30), friday)
	require.NoError(t, err)

	require.Len(t, result.ByDay, 2)
	assert.Equal(t, 1, result.ByDay[time.Tuesday].Count)
	assert.InDelta(t, 10.0, result.ByDay[time.Tuesday].AvgEngagement, 1e-9)
	assert.Equal(t, 1, result.ByDay[time.Friday].Count)
	assert.InDelta(t, 5.0, result.ByDay[time.Friday].AvgEngagement, 1e-9)

	require.Len(t, result.ByHour, 2)
	assert.Equal(t, 1, result.ByHour[9].Count)
	assert.Equal(t, 1, result.ByHour[17].Count)
}

func TestAggregatedMetrics_EmptyWindow(t *testing.T) {
	agg, repo := newTestAggregator(t)
	orgID := uuid.New()

	repo.EXPECT().ListByOrg(gomock.Any(), orgID, gomock.Any(), gomock.Any()).Return(nil, nil)

	result, err := agg.AggregatedMetrics(context.Background(), orgID, time.Now().AddDate(0, 0, -30), time.Now())
	require.NoError(t, err)

	assert.Equal(t, 0, result.TotalPosts)
	assert.Zero(t, result.AvgEngagement)
	assert.Empty(t, result.ByFormat)
	assert.Empty(t, result.ByPlatform)
	assert.Empty(t, result.ByDay)
	assert.Empty(t, result.ByHour)
	assert.Empty(t, result.TopPosts)
}

func TestPerformanceTrends_DayBuckets(t *testing.T) {
	agg, repo := newTestAggregator(t)
	orgID := uuid.New()

	day1 := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 4, 2, 9, 0, 0, 0, time.UTC)

	snaps := []*domain.MetricSnapshot{
		twitterSnap(1000, 100, 0, 0, day2),
		twitterSnap(1000, 40, 0, 0, day1),
		twitterSnap(1000, 60, 0, 0, day1),
	}

	repo.EXPECT().ListByOrg(gomock.Any(), orgID, gomock.Any(), gomock.Any()).Return(snaps, nil)

	series, err := agg.PerformanceTrends(context.Background(), orgID, day1, day2, domain.GranularityDay)
	require.NoError(t, err)

	require.Len(t, series, 2)
	assert.Equal(t, "2024-04-01", series[0].Key)
	assert.Equal(t, 2, series[0].PostCount)
	assert.Equal(t, int64(2000), series[0].Impressions)
	assert.InDelta(t, 5.0, series[0].EngagementRate, 1e-9)

	assert.Equal(t, "2024-04-02", series[1].Key)
	assert.Equal(t, 1, series[1].PostCount)
}

func TestPerformanceTrends_WeekKeyIsSunday(t *testing.T) {
	agg, repo := newTestAggregator(t)
	orgID := uuid.New()

	// Wednesday 2024-04-03 belongs to the week starting Sunday 2024-03-31
	wednesday := time.Date(2024, 4, 3, 12, 0, 0, 0, time.UTC)

	repo.EXPECT().ListByOrg(gomock.Any(), orgID, gomock.Any(), gomock.Any()).
		Return([]*domain.MetricSnapshot{twitterSnap(1000, 10, 0, 0, wednesday)}, nil)

	series, err := agg.PerformanceTrends(context.Background(), orgID, wednesday.AddDate(0, 0, -7), wednesday, domain.GranularityWeek)
	require.NoError(t, err)

	require.Len(t, series, 1)
	assert.Equal(t, "2024-03-31", series[0].Key)
}

func TestPerformanceTrends_MonthKey(t *testing.T) {
	agg, repo := newTestAggregator(t)
	orgID := uuid.New()

	march := time.Date(2024, 3, 28, 12, 0, 0, 0, time.UTC)
	april := time.Date(2024, 4, 3, 12, 0, 0, 0, time.UTC)

	repo.EXPECT().ListByOrg(gomock.Any(), orgID, gomock.Any(), gomock.Any()).
		Return([]*domain.MetricSnapshot{
			twitterSnap(1000, 10, 0, 0, april),
			twitterSnap(1000, 10, 0, 0, march),
		}, nil)

	series, err := agg.PerformanceTrends(context.Background(), orgID, march, april, domain.GranularityMonth)
	require.NoError(t, err)

	require.Len(t, series, 2)
	assert.Equal(t, "2024-03", series[0].Key)
	assert.Equal(t, "2024-04", series[1].Key)
}

func TestPerformanceTrends_InvalidGranularity(t *testing.T) {
	agg, _ := newTestAggregator(t)

	_, err := agg.PerformanceTrends(context.Background(), uuid.New(), time.Now(), time.Now(), domain.Granularity("decade"))
	assert.Error(t, err)
}

func TestAggregatedMetrics_FormatsSortedDescending(t *testing.T) {
	agg, repo := newTestAggregator(t)
	orgID := uuid.New()
	publishedAt := time.Date(2024, 4, 2, 10, 0, 0, 0, time.UTC)

	textPost := twitterSnap(1000, 20, 0, 0, publishedAt)

	videoPost := twitterSnap(1000, 100, 0, 0, publishedAt)
	videoPost.Metrics.VideoViews = 500

	imagePost := twitterSnap(1000, 50, 0, 0, publishedAt)
	imagePost.Features.HasMedia = true

	repo.EXPECT().ListByOrg(gomock.Any(), orgID, gomock.Any(), gomock.Any()).
		Return([]*domain.MetricSnapshot{textPost, videoPost, imagePost}, nil)

	result, err := agg.AggregatedMetrics(context.Background(), orgID, publishedAt.AddDate(0, 0, -30), publishedAt)
	require.NoError(t, err)

	require.Len(t, result.ByFormat, 3)
	assert.Equal(t, domain.FormatVideo, result.ByFormat[0].Format)
	assert.Equal(t, domain.FormatImage, result.ByFormat[1].Format)
	assert.Equal(t, domain.FormatText, result.ByFormat[2].Format)
}
