package middleware

import (
	"fmt"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	// DefaultRateLimit is the default rate limit per minute
	DefaultRateLimit = 100
	// DefaultBurstSize is the default burst size
	DefaultBurstSize = 10
	// CleanupInterval is the interval for cleaning up stale limiters
	CleanupInterval = 5 * time.Minute
	// LimiterTTL is the time-to-live for inactive limiters
	LimiterTTL = 10 * time.Minute
)

// RateLimiter manages per-client rate limiting. Clients are keyed by IP.
type RateLimiter struct {
	limiters          map[string]*limiterEntry
	mu                sync.Mutex
	requestsPerMinute int
	rateLimit         float64
	burstSize         int
	stopCh            chan struct{}
	stopOnce          sync.Once
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a new RateLimiter with default settings
func NewRateLimiter() *RateLimiter {
	return NewRateLimiterWithConfig(DefaultRateLimit, DefaultBurstSize)
}

// NewRateLimiterWithConfig creates a RateLimiter with custom configuration
func NewRateLimiterWithConfig(requestsPerMinute int, burstSize int) *RateLimiter {
	rl := &RateLimiter{
		limiters:          make(map[string]*limiterEntry),
		requestsPerMinute: requestsPerMinute,
		rateLimit:         float64(requestsPerMinute) / 60.0, // Convert to per-second
		burstSize:         burstSize,
		stopCh:            make(chan struct{}),
	}

	go rl.cleanup()

	return rl
}

func (r *RateLimiter) entry(key string) *limiterEntry {
	entry, exists := r.limiters[key]
	if !exists {
		entry = &limiterEntry{
			limiter: rate.NewLimiter(rate.Limit(r.rateLimit), r.burstSize),
		}
		r.limiters[key] = entry
	}
	entry.lastSeen = time.Now()
	return entry
}

// Allow checks if a request from the given client is allowed
func (r *RateLimiter) Allow(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.entry(key).limiter.Allow()
}

// GetState returns the current state for rate limit headers
func (r *RateLimiter) GetState(key string) (remaining int, resetTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, exists := r.limiters[key]
	if !exists {
		return r.burstSize, time.Now().Add(time.Minute)
	}

	tokens := int(entry.limiter.Tokens())
	if tokens < 0 {
		tokens = 0
	}

	// Reset time is approximately when tokens would be fully replenished
	resetDuration := time.Duration(float64(r.burstSize-tokens) / r.rateLimit * float64(time.Second))
	return tokens, time.Now().Add(resetDuration)
}

// Len returns the number of tracked clients
func (r *RateLimiter) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.limiters)
}

// evictStale removes limiters not used since before cutoff
func (r *RateLimiter) evictStale(cutoff time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, entry := range r.limiters {
		if entry.lastSeen.Before(cutoff) {
			delete(r.limiters, key)
			log.Debug().Str("client", key).Msg("Cleaned up stale rate limiter")
		}
	}
}

// cleanup periodically removes stale limiters to prevent memory leaks
func (r *RateLimiter) cleanup() {
	ticker := time.NewTicker(CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.evictStale(time.Now().Add(-LimiterTTL))
		case <-r.stopCh:
			return
		}
	}
}

// Stop stops the cleanup goroutine. It is safe to call more than once.
func (r *RateLimiter) Stop() {
	r.stopOnce.Do(func() { close(r.stopCh) })
}

// RateLimitMiddleware returns an Echo middleware that limits requests per client IP
func RateLimitMiddleware(rl *RateLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.RealIP()
			limit := fmt.Sprintf("%d", rl.requestsPerMinute)

			if !rl.Allow(key) {
				_, resetTime := rl.GetState(key)
				retryAfter := int(time.Until(resetTime).Seconds())
				if retryAfter < 1 {
					retryAfter = 1
				}

				c.Response().Header().Set("X-RateLimit-Limit", limit)
				c.Response().Header().Set("X-RateLimit-Remaining", "0")
				c.Response().Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", resetTime.Unix()))
				c.Response().Header().Set("Retry-After", fmt.Sprintf("%d", retryAfter))

				log.Warn().
					Str("client", key).
					Int("retry_after", retryAfter).
					Msg("Rate limit exceeded")

				return rateLimitError(c, fmt.Sprintf("Too many requests. Please retry after %d seconds.", retryAfter))
			}

			remaining, resetTime := rl.GetState(key)
			c.Response().Header().Set("X-RateLimit-Limit", limit)
			c.Response().Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
			c.Response().Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", resetTime.Unix()))

			return next(c)
		}
	}
}
