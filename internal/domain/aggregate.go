package domain

import (
	"time"

	"github.com/google/uuid"
)

// GroupStat is the count and average engagement rate of one grouping bucket.
// Buckets only exist when at least one snapshot contributed, so Count is
// always positive.
type GroupStat struct {
	Count          int
	AvgEngagement  float64
	TotalEngaged   int64
	TotalImpressed int64
}

// FormatPerformance is the per-content-format rollup.
type FormatPerformance struct {
	Format        ContentFormat
	Count         int
	AvgEngagement float64
}

// PlatformPerformance is the per-platform rollup.
type PlatformPerformance struct {
	Platform         Platform
	Count            int
	TotalImpressions int64
	TotalEngagements int64
	AvgEngagement    float64
}

// TopPost is one entry of the top-content ranking.
type TopPost struct {
	PostID         uuid.UUID
	Platform       Platform
	Content        string
	EngagementRate float64
	Impressions    int64
	PublishedAt    time.Time
}

// AggregatedMetrics is the on-demand rollup over a brand's snapshots in a
// time window. It is never persisted.
type AggregatedMetrics struct {
	OrganizationID uuid.UUID
	Start, End     time.Time

	TotalPosts       int
	TotalImpressions int64
	TotalEngagements int64
	TotalReach       int64
	AvgEngagement    float64 // percent

	ByFormat   []FormatPerformance // sorted by AvgEngagement descending
	ByPlatform []PlatformPerformance
	ByDay      map[time.Weekday]GroupStat
	ByHour     map[int]GroupStat
	TopPosts   []TopPost // top 10 by engagement rate
}

// Granularity selects the bucket size for trend series.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

func (g Granularity) Valid() bool {
	switch g {
	case GranularityDay, GranularityWeek, GranularityMonth:
		return true
	}
	return false
}

// TrendPoint is one time bucket of the performance trend series.
// Key is "2006-01-02" for day and week (the Sunday starting the week) and
// "2006-01" for month.
type TrendPoint struct {
	Key            string
	Impressions    int64
	Engagements    int64
	EngagementRate float64
	PostCount      int
}
