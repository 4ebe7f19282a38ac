package apiadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/brandbrain/metrics-pipeline/internal/domain"
	"github.com/brandbrain/metrics-pipeline/internal/platform"
	"github.com/brandbrain/metrics-pipeline/pkg/config"
	"github.com/brandbrain/metrics-pipeline/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

// APIAdapter holds one fetcher per supported platform, all sharing one HTTP
// client with the configured request timeout.
type APIAdapter struct {
	fetchers map[domain.Platform]platform.Fetcher
}

func New(opts Opts) *APIAdapter {
	httpClient := &http.Client{Timeout: opts.Config.Collector.RequestTimeout}

	twitter := &TwitterFetcher{
		client:  httpClient,
		baseURL: opts.Config.Collector.TwitterBaseURL,
		logger:  opts.Logger.WithComponent("TwitterFetcher"),
	}
	linkedin := &LinkedInFetcher{
		client:  httpClient,
		baseURL: opts.Config.Collector.LinkedInBaseURL,
		logger:  opts.Logger.WithComponent("LinkedInFetcher"),
	}
	facebook := &MetaFetcher{
		client:    httpClient,
		baseURL:   opts.Config.Collector.MetaGraphBaseURL,
		instagram: false,
		logger:    opts.Logger.WithComponent("FacebookFetcher"),
	}
	instagram := &MetaFetcher{
		client:    httpClient,
		baseURL:   opts.Config.Collector.MetaGraphBaseURL,
		instagram: true,
		logger:    opts.Logger.WithComponent("InstagramFetcher"),
	}

	return &APIAdapter{
		fetchers: map[domain.Platform]platform.Fetcher{
			domain.PlatformTwitter:   twitter,
			domain.PlatformLinkedIn:  linkedin,
			domain.PlatformFacebook:  facebook,
			domain.PlatformInstagram: instagram,
		},
	}
}

var _ platform.Registry = (*APIAdapter)(nil)

// ForPlatform resolves the fetcher for a platform.
func (a *APIAdapter) ForPlatform(p domain.Platform) (platform.Fetcher, bool) {
	fetcher, ok := a.fetchers[p]
	return fetcher, ok
}

// getJSON performs an authorized GET and decodes the JSON body into out.
func getJSON(ctx context.Context, client *http.Client, url, token string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("unexpected status %s: %s", resp.Status, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
