package common

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRetry(t *testing.T) {
	fast := RetryOptions{MaxAttempts: 3, InitialDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond}
	errBusy := errors.New("database is locked")

	t.Run("succeeds after transient failures", func(t *testing.T) {
		calls := 0
		err := WithRetry(context.Background(), func() error {
			calls++
			if calls < 3 {
				return errBusy
			}
			return nil
		}, fast)

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up", func(t *testing.T) {
		calls := 0
		err := WithRetry(context.Background(), func() error {
			calls++
			return errBusy
		}, fast)

		assert.ErrorIs(t, err, ErrMaxRetries)
		assert.ErrorIs(t, err, errBusy)
		assert.Equal(t, 3, calls)
	})

	t.Run("permanent error stops at once", func(t *testing.T) {
		calls := 0
		err := WithRetry(context.Background(), func() error {
			calls++
			return Permanent(ErrDuplicateEntry)
		}, fast)

		assert.Equal(t, ErrDuplicateEntry, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("context canceled while waiting", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := WithRetry(ctx, func() error { return errBusy }, RetryOptions{MaxAttempts: 2, InitialDelay: time.Hour})
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("permanent nil", func(t *testing.T) {
		assert.NoError(t, Permanent(nil))
	})
}
