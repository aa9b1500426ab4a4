package usecase

import "time"

const (
	// DashboardCacheTTL bounds how stale a cached dashboard aggregate may be.
	// The tiles have no point-in-time guarantee anyway, so a short TTL is
	// enough to absorb rapid refreshes.
	DashboardCacheTTL = 30 * time.Second

	// IdempotencyKeyTTL is how long idempotency keys are cached.
	IdempotencyKeyTTL = 24 * time.Hour

	cacheKeyStats = "dashboard:stats"
)
