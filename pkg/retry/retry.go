package retry

import (
	"context"
	"time"

	"github.com/brandbrain/metrics-pipeline/pkg/logger"
	"github.com/cenkalti/backoff/v4"
)

// Config shapes the exponential backoff applied by Do.
type Config struct {
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
}

func DefaultConfig() Config {
	return Config{
		MaxRetries:      3,
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     5 * time.Second,
		Multiplier:      1.5,
	}
}

// DatabaseStartupConfig is more patient than DefaultConfig: at boot the
// database container may still be coming up, so the ping gets a longer
// runway before the app gives up.
func DatabaseStartupConfig() Config {
	return Config{
		MaxRetries:      6,
		InitialInterval: time.Second,
		MaxInterval:     10 * time.Second,
		Multiplier:      2,
	}
}

// Do runs operation until it succeeds, the retry budget is spent, or the
// context is cancelled. Each failed attempt is logged with the time until
// the next one.
func Do(ctx context.Context, log logger.Logger, operationName string, operation func() error, cfg Config) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = cfg.InitialInterval
	bo.MaxInterval = cfg.MaxInterval
	bo.Multiplier = cfg.Multiplier
	bo.Reset()

	retryable := backoff.WithMaxRetries(bo, cfg.MaxRetries)
	retryableWithContext := backoff.WithContext(retryable, ctx)

	notify := func(err error, t time.Duration) {
		log.Warn(
			"Operation failed, retrying...",
			"operation", operationName,
			"error", err,
			"next_attempt_in", t.Round(time.Millisecond).String(),
		)
	}

	return backoff.RetryNotify(operation, retryableWithContext, notify)
}
