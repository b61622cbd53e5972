package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	pkgErrors "calendar-automation/pkg/errors"
	"calendar-automation/pkg/response"
)

const maxTrackedClients = 4096

// limiterCache keeps one token bucket per client key. Bounded so an attacker
// cycling keys cannot grow memory without limit.
type limiterCache struct {
	cache *lru.Cache[string, *rate.Limiter]
}

func newLimiterCache() *limiterCache {
	cache, _ := lru.New[string, *rate.Limiter](maxTrackedClients)
	return &limiterCache{cache: cache}
}

func (lc *limiterCache) get(key string, limit rate.Limit, burst int) *rate.Limiter {
	if lim, ok := lc.cache.Get(key); ok {
		return lim
	}
	lim := rate.NewLimiter(limit, burst)
	lc.cache.Add(key, lim)
	return lim
}

// RateLimit throttles requests per session, falling back to the client IP
// when no session header is present. Disabled when the configured rate is
// zero.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.rateLimit <= 0 {
			c.Next()
			return
		}

		key := c.GetHeader(HeaderUserID)
		if key == "" {
			key = c.ClientIP()
		}

		if !m.limiters.get(key, m.rateLimit, m.rateBurst).Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", key)
			response.Error(c, pkgErrors.NewHTTPError(http.StatusTooManyRequests, "too many requests"))
			c.Abort()
			return
		}

		c.Next()
	}
}
