package apiadapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/brandbrain/metrics-pipeline/internal/domain"
	"github.com/brandbrain/metrics-pipeline/internal/platform"
	"github.com/brandbrain/metrics-pipeline/pkg/logger"
)

// LinkedInFetcher reads like/comment counts from the social-actions endpoint
// and tries a share-statistics call on top. The statistics call is
// best-effort: when it fails, impressions/shares/clicks stay 0 instead of
// failing the whole fetch.
type LinkedInFetcher struct {
	client  *http.Client
	baseURL string
	logger  logger.Logger
}

var _ platform.Fetcher = (*LinkedInFetcher)(nil)

type socialActionsResponse struct {
	LikesSummary struct {
		TotalLikes int64 `json:"totalLikes"`
	} `json:"likesSummary"`
	CommentsSummary struct {
		TotalComments int64 `json:"totalFirstLevelComments"`
	} `json:"commentsSummary"`
}

type shareStatisticsResponse struct {
	Elements []struct {
		TotalShareStatistics struct {
			ImpressionCount int64 `json:"impressionCount"`
			ShareCount      int64 `json:"shareCount"`
			ClickCount      int64 `json:"clickCount"`
		} `json:"totalShareStatistics"`
	} `json:"elements"`
}

func (f *LinkedInFetcher) FetchRawMetrics(ctx context.Context, accessToken, platformPostID string) (*domain.RawMetrics, error) {
	if accessToken == "" {
		return nil, platform.ErrNoToken
	}

	actionsURL := fmt.Sprintf("%s/v2/socialActions/%s", f.baseURL, url.PathEscape(platformPostID))

	var actions socialActionsResponse
	if err := getJSON(ctx, f.client, actionsURL, accessToken, &actions); err != nil {
		return nil, fmt.Errorf("social actions: %w", err)
	}

	metrics := &domain.RawMetrics{
		Likes:    actions.LikesSummary.TotalLikes,
		Comments: actions.CommentsSummary.TotalComments,
	}

	statsURL := fmt.Sprintf("%s/rest/organizationalEntityShareStatistics?q=organizationalEntity&shares=List(%s)",
		f.baseURL, url.QueryEscape(platformPostID))

	var stats shareStatisticsResponse
	if err := getJSON(ctx, f.client, statsURL, accessToken, &stats); err != nil {
		f.logger.Debug("Share statistics unavailable, keeping zero values", "post_id", platformPostID, "error", err)
		return metrics, nil
	}

	if len(stats.Elements) > 0 {
		total := stats.Elements[0].TotalShareStatistics
		metrics.Impressions = total.ImpressionCount
		metrics.Shares = total.ShareCount
		metrics.Clicks = total.ClickCount
	}

	return metrics, nil
}
