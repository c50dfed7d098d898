package ratelimit

import "context"

type RateLimitConfig struct {
	RequestsPerMinute int
	RequestsPerHour   int
}

// RateLimiter throttles repeated attempts against a key, typically a login
// name or client IP.
type RateLimiter interface {
	Allow(ctx context.Context, key string, config RateLimitConfig) (bool, error)
	Reset(ctx context.Context, key string) error
}

// NoopRateLimiter admits everything. Used when Redis is disabled.
type NoopRateLimiter struct{}

func (NoopRateLimiter) Allow(context.Context, string, RateLimitConfig) (bool, error) {
	return true, nil
}

func (NoopRateLimiter) Reset(context.Context, string) error { return nil }
