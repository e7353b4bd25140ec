package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/piresc/nebengjek-dispatch/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
)

func TestExecute_SucceedsAfterRetries(t *testing.T) {
	r := New(FixedConfig(3, 0), logger.NewNopLogger())

	calls := 0
	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("temporary")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestExecute_StopsAtLimit(t *testing.T) {
	r := New(FixedConfig(3, 0), logger.NewNopLogger())
	cause := errors.New("store down")

	calls := 0
	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return cause
	})

	assert.Equal(t, 3, calls)
	assert.Equal(t, 3, r.Attempts())
	assert.ErrorIs(t, err, ErrLimitExceeded)
	assert.ErrorIs(t, err, cause)
}

func TestExecute_NonRetryableError(t *testing.T) {
	stop := errors.New("stop")
	cfg := FixedConfig(5, 0)
	cfg.RetryableFunc = func(err error) bool { return !errors.Is(err, stop) }
	r := New(cfg, logger.NewNopLogger())

	calls := 0
	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return stop
	})

	assert.Equal(t, 1, calls)
	assert.Equal(t, stop, err)
}

func TestExecute_ContextCancelledDuringDelay(t *testing.T) {
	r := New(FixedConfig(3, time.Hour), logger.NewNopLogger())
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	err := r.Execute(ctx, func(ctx context.Context) error {
		calls++
		cancel()
		return errors.New("fail")
	})

	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCalculateDelay(t *testing.T) {
	r := New(Config{BaseDelay: 100 * time.Millisecond, MaxDelay: 250 * time.Millisecond, Multiplier: 2}, logger.NewNopLogger())

	assert.Equal(t, 100*time.Millisecond, r.calculateDelay(0))
	assert.Equal(t, 200*time.Millisecond, r.calculateDelay(1))
	assert.Equal(t, 250*time.Millisecond, r.calculateDelay(2))
}

func TestFixedConfig_ClampsAttempts(t *testing.T) {
	assert.Equal(t, 0, FixedConfig(0, 0).MaxRetries)
	assert.Equal(t, 2, FixedConfig(3, 0).MaxRetries)
}
