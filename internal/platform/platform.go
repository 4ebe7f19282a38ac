package platform

import (
	"context"
	"errors"

	"github.com/brandbrain/metrics-pipeline/internal/domain"
)

var (
	ErrUnsupported = errors.New("platform not supported")
	ErrNoToken     = errors.New("missing access token")
)

// Fetcher fetches raw performance counters for one published post.
// Implementations return an error when the platform call ultimately failed for
// every attempted variant; callers treat that as "skip this post, try again
// next cycle", never as fatal.
//
//go:generate go run go.uber.org/mock/mockgen -source=platform.go -destination=mocks/mock.go
type Fetcher interface {
	FetchRawMetrics(ctx context.Context, accessToken, platformPostID string) (*domain.RawMetrics, error)
}

// Registry resolves the fetcher for a platform. Adding a platform means
// registering another Fetcher, not editing a switch.
type Registry interface {
	ForPlatform(p domain.Platform) (Fetcher, bool)
}
