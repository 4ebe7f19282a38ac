package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEngagementRate(t *testing.T) {
	tests := []struct {
		name        string
		engagements int64
		impressions int64
		want        float64
	}{
		{"typical", 65, 1000, 6.5},
		{"zero impressions", 50, 0, 0},
		{"zero engagements", 0, 1000, 0},
		{"full engagement", 1000, 1000, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, EngagementRate(tt.engagements, tt.impressions), 1e-9)
		})
	}
}

func TestEngagementRate_NeverNegative(t *testing.T) {
	assert.GreaterOrEqual(t, EngagementRate(0, 0), 0.0)
	assert.GreaterOrEqual(t, EngagementRate(1, 1), 0.0)
}

func TestRawMetrics_Engagements(t *testing.T) {
	m := RawMetrics{Likes: 50, Comments: 10, Shares: 5, Saves: 3, Clicks: 2, VideoViews: 100}

	// video views and profile visits do not count as engagements
	assert.Equal(t, int64(70), m.Engagements())
}

func TestMetricSnapshot_Format(t *testing.T) {
	video := MetricSnapshot{Metrics: RawMetrics{VideoViews: 10}}
	assert.Equal(t, FormatVideo, video.Format())

	image := MetricSnapshot{Features: ContentFeatures{HasMedia: true}}
	assert.Equal(t, FormatImage, image.Format())

	link := MetricSnapshot{Features: ContentFeatures{HasLinks: true}}
	assert.Equal(t, FormatLink, link.Format())

	text := MetricSnapshot{}
	assert.Equal(t, FormatText, text.Format())
}

func TestPlatform_Valid(t *testing.T) {
	for _, p := range Platforms {
		assert.True(t, p.Valid())
	}
	assert.False(t, Platform("MYSPACE").Valid())
}

func TestLearningType_Valid(t *testing.T) {
	assert.True(t, LearningBestTime.Valid())
	assert.True(t, LearningPlatformSpecific.Valid())
	assert.False(t, LearningType("BEST_VIBES").Valid())
}
