package ratelimit

// RateLimitConfig caps request counts per rolling window. A zero limit
// disables that window.
type RateLimitConfig struct {
	RequestsPerMinute int
	RequestsPerHour   int
	RequestsPerDay    int
}

type RateLimiter interface {
	Allow(key string, config RateLimitConfig) (bool, error)
}
