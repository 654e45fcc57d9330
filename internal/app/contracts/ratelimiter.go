package contracts

import (
	"context"
	"time"
)

type ResourceLimiter interface {
	Allow(ctx context.Context, key string) (bool, time.Duration, error)
}
