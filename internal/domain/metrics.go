package domain

import (
	"time"

	"github.com/google/uuid"
)

// RawMetrics is what a platform adapter returns for one post: plain counters,
// before any derived values are computed. Counters a platform cannot provide
// are zero, never negative.
type RawMetrics struct {
	Impressions   int64
	Reach         int64
	Likes         int64
	Comments      int64
	Shares        int64
	Saves         int64
	Clicks        int64
	VideoViews    int64
	ProfileVisits int64
}

// Engagements sums the counters that count as engagement with the post.
func (r *RawMetrics) Engagements() int64 {
	return r.Likes + r.Comments + r.Shares + r.Saves + r.Clicks
}

// ContentFeatures are structural properties of a post's text and timing,
// computed once at collection time. Pure text analysis, no network involved.
type ContentFeatures struct {
	Length       int
	HasHashtags  bool
	HashtagCount int
	HasEmojis    bool
	HasLinks     bool
	HasQuestion  bool
	HasCTA       bool
	HasMedia     bool
	DayOfWeek    int // 0 = Sunday ... 6 = Saturday
	HourOfDay    int // 0-23
}

// MetricSnapshot is the normalized, point-in-time performance measurement for
// one PostRecord. At most one live snapshot exists per post; re-collection
// overwrites the metric values and bumps FetchCount.
type MetricSnapshot struct {
	ID             int64
	PostID         uuid.UUID
	OrganizationID uuid.UUID
	Platform       Platform

	Metrics        RawMetrics
	EngagementRate float64 // percent; 0 when impressions is 0

	Features    ContentFeatures
	Content     string
	PublishedAt time.Time

	FetchCount     int
	FirstFetchedAt time.Time
	LastFetchedAt  time.Time
}

// EngagementRate returns total engagements over impressions as a percentage.
// Zero impressions yields 0, not an error.
func EngagementRate(engagements, impressions int64) float64 {
	if impressions == 0 {
		return 0
	}
	return float64(engagements) / float64(impressions) * 100
}

// ContentFormat is the coarse format classification used for grouping.
type ContentFormat string

const (
	FormatVideo ContentFormat = "video"
	FormatImage ContentFormat = "image"
	FormatLink  ContentFormat = "link"
	FormatText  ContentFormat = "text"
)

// Format classifies the snapshot's content into one coarse format bucket.
func (s *MetricSnapshot) Format() ContentFormat {
	switch {
	case s.Metrics.VideoViews > 0:
		return FormatVideo
	case s.Features.HasMedia:
		return FormatImage
	case s.Features.HasLinks:
		return FormatLink
	default:
		return FormatText
	}
}
