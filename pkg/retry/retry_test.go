package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brandbrain/metrics-pipeline/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig() Config {
	return Config{
		MaxRetries:      3,
		InitialInterval: time.Millisecond,
		MaxInterval:     5 * time.Millisecond,
		Multiplier:      1.5,
	}
}

func TestDo_SucceedsAfterTransientFailures(t *testing.T) {
	log := logger.New(logger.Opts{})

	attempts := 0
	op := func() error {
		attempts++
		if attempts < 3 {
			return errors.New("not ready yet")
		}
		return nil
	}

	err := Do(context.Background(), log, "TestOp", op, fastConfig())
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestDo_ExhaustsRetryBudget(t *testing.T) {
	log := logger.New(logger.Opts{})

	attempts := 0
	op := func() error {
		attempts++
		return errors.New("still down")
	}

	err := Do(context.Background(), log, "TestOp", op, fastConfig())
	require.Error(t, err)
	// initial attempt plus MaxRetries
	assert.Equal(t, 4, attempts)
}

func TestDo_StopsOnCancelledContext(t *testing.T) {
	log := logger.New(logger.Opts{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	attempts := 0
	op := func() error {
		attempts++
		return errors.New("still down")
	}

	err := Do(ctx, log, "TestOp", op, fastConfig())
	require.Error(t, err)
	assert.LessOrEqual(t, attempts, 1)
}

func TestDatabaseStartupConfig_MorePatientThanDefault(t *testing.T) {
	def, db := DefaultConfig(), DatabaseStartupConfig()

	assert.Greater(t, db.MaxRetries, def.MaxRetries)
	assert.Greater(t, db.MaxInterval, def.MaxInterval)
}
