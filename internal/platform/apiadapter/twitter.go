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

// TwitterFetcher reads public metrics from the Twitter v2 tweet-lookup
// endpoint. Click counts require elevated API access and are always 0.
type TwitterFetcher struct {
	client  *http.Client
	baseURL string
	logger  logger.Logger
}

var _ platform.Fetcher = (*TwitterFetcher)(nil)

type tweetLookupResponse struct {
	Data struct {
		PublicMetrics struct {
			RetweetCount    int64 `json:"retweet_count"`
			ReplyCount      int64 `json:"reply_count"`
			LikeCount       int64 `json:"like_count"`
			QuoteCount      int64 `json:"quote_count"`
			ImpressionCount int64 `json:"impression_count"`
		} `json:"public_metrics"`
	} `json:"data"`
	Errors []struct {
		Title  string `json:"title"`
		Detail string `json:"detail"`
	} `json:"errors"`
}

func (f *TwitterFetcher) FetchRawMetrics(ctx context.Context, accessToken, platformPostID string) (*domain.RawMetrics, error) {
	if accessToken == "" {
		return nil, platform.ErrNoToken
	}

	endpoint := fmt.Sprintf("%s/2/tweets/%s?tweet.fields=public_metrics", f.baseURL, url.PathEscape(platformPostID))

	var resp tweetLookupResponse
	if err := getJSON(ctx, f.client, endpoint, accessToken, &resp); err != nil {
		return nil, fmt.Errorf("tweet lookup: %w", err)
	}
	if len(resp.Errors) > 0 {
		return nil, fmt.Errorf("tweet lookup: %s", resp.Errors[0].Title)
	}

	pm := resp.Data.PublicMetrics
	return &domain.RawMetrics{
		Impressions: pm.ImpressionCount,
		Likes:       pm.LikeCount,
		Comments:    pm.ReplyCount,
		Shares:      pm.RetweetCount + pm.QuoteCount,
	}, nil
}
