package ratelimiter

import (
	"context"
	"fmt"
	"healthportal-service/internal/app/contracts"
	"healthportal-service/internal/pkg/constvars"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ResourceLimiter is a fixed-window counter stored in Redis with a TTL equal to the window.
type ResourceLimiter struct {
	redis    contracts.RedisRepository
	log      *zap.Logger
	group    string
	window   time.Duration
	maxQuota int
	now      func() time.Time
}

func NewResourceLimiter(redis contracts.RedisRepository, log *zap.Logger, group string, window time.Duration, maxQuota int) *ResourceLimiter {
	if window <= 0 {
		window = time.Minute
	}
	return &ResourceLimiter{
		redis:    redis,
		log:      log,
		group:    strings.ToLower(strings.TrimSpace(group)),
		window:   window,
		maxQuota: maxQuota,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Allow counts one request for key. When the quota is spent it reports how long
// until the next window opens.
func (l *ResourceLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	if l.maxQuota <= 0 {
		return true, 0, nil
	}

	now := l.now()
	windowSec := int64(l.window / time.Second)
	windowID := now.Unix() / windowSec
	redisKey := fmt.Sprintf("%s%s:%s:%d", constvars.RedisKeyAIQuotaPrefix, l.group, strings.ToLower(key), windowID)

	count, err := l.redis.IncrementWithTTL(ctx, redisKey, l.window+time.Second)
	if err != nil {
		l.log.Error("ResourceLimiter.Allow increment failed",
			zap.String(constvars.LoggingRedisKey, redisKey),
			zap.Error(err),
		)
		return false, 0, err
	}

	if count > int64(l.maxQuota) {
		nextWindowStart := time.Unix((windowID+1)*windowSec, 0)
		return false, nextWindowStart.Sub(now), nil
	}
	return true, 0, nil
}
