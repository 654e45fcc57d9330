package locker

import (
	"context"
	"errors"
	"testing"
	"time"

	"healthportal-service/internal/app/services/shared/redis"
	"healthportal-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLockService(t *testing.T) {
	ctx := context.Background()

	t.Run("Second TryLock fails while held", func(t *testing.T) {
		svc := newLockService(redis.NewMemoryRepository(), zap.NewNop())

		acquired, value, err := svc.TryLock(ctx, "lock:a", time.Minute)
		require.NoError(t, err)
		assert.True(t, acquired)
		assert.NotEmpty(t, value)

		again, _, err := svc.TryLock(ctx, "lock:a", time.Minute)
		require.NoError(t, err)
		assert.False(t, again)
	})

	t.Run("Unlock releases only the owner", func(t *testing.T) {
		svc := newLockService(redis.NewMemoryRepository(), zap.NewNop())

		_, value, err := svc.TryLock(ctx, "lock:b", time.Minute)
		require.NoError(t, err)

		require.NoError(t, svc.Unlock(ctx, "lock:b", "someone-else"))
		held, _, _ := svc.TryLock(ctx, "lock:b", time.Minute)
		assert.False(t, held)

		require.NoError(t, svc.Unlock(ctx, "lock:b", value))
		free, _, _ := svc.TryLock(ctx, "lock:b", time.Minute)
		assert.True(t, free)
	})

}

func TestWithLock(t *testing.T) {
	ctx := context.Background()

	t.Run("Runs fn and releases", func(t *testing.T) {
		svc := newLockService(redis.NewMemoryRepository(), zap.NewNop())
		called := false

		err := WithLock(ctx, svc, "lock:d", time.Minute, 3, time.Millisecond, func() error {
			called = true
			return nil
		})

		require.NoError(t, err)
		assert.True(t, called)
		acquired, _, _ := svc.TryLock(ctx, "lock:d", time.Minute)
		assert.True(t, acquired)
	})

	t.Run("Propagates fn error", func(t *testing.T) {
		svc := newLockService(redis.NewMemoryRepository(), zap.NewNop())
		boom := errors.New("boom")

		err := WithLock(ctx, svc, "lock:e", time.Minute, 3, time.Millisecond, func() error { return boom })

		assert.ErrorIs(t, err, boom)
	})

	t.Run("Gives up when the lock stays held", func(t *testing.T) {
		svc := newLockService(redis.NewMemoryRepository(), zap.NewNop())
		_, _, err := svc.TryLock(ctx, "lock:f", time.Minute)
		require.NoError(t, err)

		err = WithLock(ctx, svc, "lock:f", time.Minute, 2, time.Millisecond, func() error { return nil })

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 409, customErr.StatusCode)
	})
}
