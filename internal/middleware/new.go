package middleware

import (
	"golang.org/x/time/rate"

	"calendar-automation/internal/auth"
	"calendar-automation/pkg/log"
)

// Middleware bundles the cross-cutting gin middlewares.
type Middleware struct {
	l        log.Logger
	sessions auth.UseCase

	rateLimit rate.Limit
	rateBurst int
	limiters  *limiterCache
}

// Config holds the middleware tunables.
type Config struct {
	// RequestsPerMinute caps authenticated traffic per session.
	// Zero disables rate limiting.
	RequestsPerMinute int

	// Burst is the short-term allowance on top of the steady rate.
	// Zero means RequestsPerMinute.
	Burst int
}

func New(l log.Logger, sessions auth.UseCase, cfg Config) Middleware {
	burst := cfg.Burst
	if burst <= 0 {
		burst = cfg.RequestsPerMinute
	}

	return Middleware{
		l:         l,
		sessions:  sessions,
		rateLimit: rate.Limit(float64(cfg.RequestsPerMinute) / 60.0),
		rateBurst: burst,
		limiters:  newLimiterCache(),
	}
}
