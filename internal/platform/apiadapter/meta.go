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

// MetaFetcher covers Facebook and Instagram through the Graph API. It tries
// the rich insights endpoint first and falls back to a basic fields query so
// a partial snapshot is still produced when insights are unavailable.
type MetaFetcher struct {
	client    *http.Client
	baseURL   string
	instagram bool
	logger    logger.Logger
}

var _ platform.Fetcher = (*MetaFetcher)(nil)

type graphInsightsResponse struct {
	Data []struct {
		Name   string `json:"name"`
		Values []struct {
			Value int64 `json:"value"`
		} `json:"values"`
	} `json:"data"`
}

type graphFieldsResponse struct {
	Likes struct {
		Summary struct {
			TotalCount int64 `json:"total_count"`
		} `json:"summary"`
	} `json:"likes"`
	Comments struct {
		Summary struct {
			TotalCount int64 `json:"total_count"`
		} `json:"summary"`
	} `json:"comments"`
	Shares struct {
		Count int64 `json:"count"`
	} `json:"shares"`
	LikeCount     int64 `json:"like_count"`
	CommentsCount int64 `json:"comments_count"`
}

func (f *MetaFetcher) FetchRawMetrics(ctx context.Context, accessToken, platformPostID string) (*domain.RawMetrics, error) {
	if accessToken == "" {
		return nil, platform.ErrNoToken
	}

	metrics, err := f.fetchInsights(ctx, accessToken, platformPostID)
	if err == nil {
		return metrics, nil
	}
	f.logger.Debug("Insights unavailable, falling back to basic fields", "post_id", platformPostID, "error", err)

	metrics, err = f.fetchBasicFields(ctx, accessToken, platformPostID)
	if err != nil {
		return nil, fmt.Errorf("graph basic fields: %w", err)
	}
	return metrics, nil
}

func (f *MetaFetcher) fetchInsights(ctx context.Context, accessToken, postID string) (*domain.RawMetrics, error) {
	metricNames := "post_impressions,post_impressions_unique,post_engaged_users,post_reactions_like_total"
	if f.instagram {
		metricNames = "impressions,reach,total_interactions,saved"
	}

	endpoint := fmt.Sprintf("%s/%s/insights?metric=%s&access_token=%s",
		f.baseURL, url.PathEscape(postID), metricNames, url.QueryEscape(accessToken))

	var resp graphInsightsResponse
	if err := getJSON(ctx, f.client, endpoint, "", &resp); err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("no insight data for post %s", postID)
	}

	values := make(map[string]int64, len(resp.Data))
	for _, entry := range resp.Data {
		if len(entry.Values) > 0 {
			values[entry.Name] = entry.Values[0].Value
		}
	}

	metrics := &domain.RawMetrics{}
	if f.instagram {
		metrics.Impressions = values["impressions"]
		metrics.Reach = values["reach"]
		metrics.Saves = values["saved"]
		// total_interactions already includes saves; keep the summed
		// engagement equal to the platform's own total.
		metrics.Likes = nonNegative(values["total_interactions"] - metrics.Saves)
	} else {
		metrics.Impressions = values["post_impressions"]
		metrics.Reach = values["post_impressions_unique"]
		metrics.Likes = values["post_reactions_like_total"]
		// post_engaged_users counts reactors too; only the remainder goes
		// into clicks so reactions are not counted twice.
		metrics.Clicks = nonNegative(values["post_engaged_users"] - metrics.Likes)
	}
	return metrics, nil
}

func nonNegative(n int64) int64 {
	if n < 0 {
		return 0
	}
	return n
}

func (f *MetaFetcher) fetchBasicFields(ctx context.Context, accessToken, postID string) (*domain.RawMetrics, error) {
	fields := "likes.summary(true),comments.summary(true),shares"
	if f.instagram {
		fields = "like_count,comments_count"
	}

	endpoint := fmt.Sprintf("%s/%s?fields=%s&access_token=%s",
		f.baseURL, url.PathEscape(postID), url.QueryEscape(fields), url.QueryEscape(accessToken))

	var resp graphFieldsResponse
	if err := getJSON(ctx, f.client, endpoint, "", &resp); err != nil {
		return nil, err
	}

	if f.instagram {
		return &domain.RawMetrics{
			Likes:    resp.LikeCount,
			Comments: resp.CommentsCount,
		}, nil
	}

	return &domain.RawMetrics{
		Likes:    resp.Likes.Summary.TotalCount,
		Comments: resp.Comments.Summary.TotalCount,
		Shares:   resp.Shares.Count,
	}, nil
}
