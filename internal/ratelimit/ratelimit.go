package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/brandbrain/metrics-pipeline/internal/domain"
	"golang.org/x/time/rate"
)

// Pacer spaces out calls against external platform APIs.
type Pacer interface {
	// Wait blocks until the next call to the given platform is allowed,
	// or the context is cancelled.
	Wait(ctx context.Context, platform domain.Platform) error
}

// PlatformPacer paces calls per platform with a token bucket that refills one
// token per configured delay. With burst 1 this is equivalent to a fixed
// inter-call delay.
type PlatformPacer struct {
	limiters map[domain.Platform]*rate.Limiter
	mu       sync.Mutex
	delay    time.Duration
}

// NewPlatformPacer creates a pacer allowing one call per delay per platform.
// Example: NewPlatformPacer(500*time.Millisecond) -> at most 2 calls/second
// against any single platform.
func NewPlatformPacer(delay time.Duration) *PlatformPacer {
	return &PlatformPacer{
		limiters: make(map[domain.Platform]*rate.Limiter),
		delay:    delay,
	}
}

var _ Pacer = (*PlatformPacer)(nil)

// Wait blocks until a token is available for the platform.
func (p *PlatformPacer) Wait(ctx context.Context, platform domain.Platform) error {
	p.mu.Lock()
	limiter, exists := p.limiters[platform]
	if !exists {
		limiter = rate.NewLimiter(rate.Every(p.delay), 1)
		p.limiters[platform] = limiter
	}
	p.mu.Unlock()

	return limiter.Wait(ctx)
}
