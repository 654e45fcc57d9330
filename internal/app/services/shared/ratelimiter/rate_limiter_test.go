package ratelimiter

import (
	"context"
	"testing"
	"time"

	"healthportal-service/internal/app/services/shared/redis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestResourceLimiterAllow(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2025, 1, 10, 10, 0, 30, 0, time.UTC)

	t.Run("Blocks after quota within window", func(t *testing.T) {
		limiter := NewResourceLimiter(redis.NewMemoryRepository(), zap.NewNop(), "ai", time.Minute, 2)
		limiter.now = func() time.Time { return fixed }

		for i := 0; i < 2; i++ {
			allowed, _, err := limiter.Allow(ctx, "session-1")
			require.NoError(t, err)
			assert.True(t, allowed)
		}

		allowed, retryAfter, err := limiter.Allow(ctx, "session-1")
		require.NoError(t, err)
		assert.False(t, allowed)
		assert.Equal(t, 30*time.Second, retryAfter)
	})

	t.Run("Keys are counted separately", func(t *testing.T) {
		limiter := NewResourceLimiter(redis.NewMemoryRepository(), zap.NewNop(), "ai", time.Minute, 1)
		limiter.now = func() time.Time { return fixed }

		first, _, _ := limiter.Allow(ctx, "a")
		second, _, _ := limiter.Allow(ctx, "b")

		assert.True(t, first)
		assert.True(t, second)
	})

	t.Run("New window resets quota", func(t *testing.T) {
		limiter := NewResourceLimiter(redis.NewMemoryRepository(), zap.NewNop(), "ai", time.Minute, 1)
		now := fixed
		limiter.now = func() time.Time { return now }

		allowed, _, _ := limiter.Allow(ctx, "a")
		assert.True(t, allowed)
		allowed, _, _ = limiter.Allow(ctx, "a")
		assert.False(t, allowed)

		now = now.Add(time.Minute)
		allowed, _, _ = limiter.Allow(ctx, "a")
		assert.True(t, allowed)
	})

	t.Run("Zero quota disables the limiter", func(t *testing.T) {
		limiter := NewResourceLimiter(redis.NewMemoryRepository(), zap.NewNop(), "ai", time.Minute, 0)

		allowed, _, err := limiter.Allow(ctx, "a")

		require.NoError(t, err)
		assert.True(t, allowed)
	})
}
