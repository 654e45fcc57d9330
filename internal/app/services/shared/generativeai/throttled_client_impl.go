package generativeai

import (
	"context"
	"healthportal-service/internal/app/contracts"
	"healthportal-service/internal/app/metrics"
	"healthportal-service/internal/pkg/constvars"
	"time"

	"golang.org/x/time/rate"
)

// ThrottledClient bounds the outbound call rate of a provider and records call metrics.
type ThrottledClient struct {
	inner   contracts.GenerativeClient
	limiter *rate.Limiter
	feature string
}

func NewThrottledClient(inner contracts.GenerativeClient, feature string, perSecond float64, burst int) *ThrottledClient {
	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}
	if burst <= 0 {
		burst = 1
	}
	return &ThrottledClient{
		inner:   inner,
		limiter: rate.NewLimiter(limit, burst),
		feature: feature,
	}
}

func (c *ThrottledClient) Name() string { return c.inner.Name() }

func (c *ThrottledClient) GenerateContent(ctx context.Context, request contracts.GenerateRequest) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		metrics.AIRequestsTotal.WithLabelValues(c.feature, c.inner.Name(), constvars.AIOutcomeError).Inc()
		return "", err
	}

	start := time.Now()
	text, err := c.inner.GenerateContent(ctx, request)
	metrics.AIRequestDurationSeconds.WithLabelValues(c.feature, c.inner.Name()).Observe(time.Since(start).Seconds())

	outcome := constvars.AIOutcomeSuccess
	if err != nil {
		outcome = constvars.AIOutcomeError
	}
	metrics.AIRequestsTotal.WithLabelValues(c.feature, c.inner.Name(), outcome).Inc()
	return text, err
}

func (c *ThrottledClient) Close() error { return c.inner.Close() }
