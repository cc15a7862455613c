package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"chain-dashboard/internal/metrics"
	"chain-dashboard/internal/model"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const limiterTTL = time.Minute

// RateLimiter keeps one token bucket per client IP. Buckets are dropped
// limiterTTL after creation.
type RateLimiter struct {
	limiters map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
	mu       sync.RWMutex
}

// NewRateLimiter creates a limiter allowing rps requests per second with
// the given burst per client.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

func (rl *RateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.RLock()
	limiter, exists := rl.limiters[ip]
	rl.mu.RUnlock()
	if exists {
		return limiter
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, exists = rl.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(rl.rps, rl.burst)
		rl.limiters[ip] = limiter

		time.AfterFunc(limiterTTL, func() {
			rl.mu.Lock()
			delete(rl.limiters, ip)
			rl.mu.Unlock()
		})
	}
	return limiter
}

// Allow reports whether a request from ip may proceed.
func (rl *RateLimiter) Allow(ip string) bool {
	return rl.getLimiter(ip).Allow()
}

// RateLimit rejects clients that exceed their bucket with 429.
func RateLimit(limiter *RateLimiter, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)

			if !limiter.Allow(ip) {
				metrics.RateLimited()
				logger.Warn().
					Str("ip", ip).
					Str("path", r.URL.Path).
					Str("request_id", RequestIDFrom(r.Context())).
					Msg("rate limit exceeded")

				w.Header().Set("Retry-After", "1")
				writeError(w, r, http.StatusTooManyRequests, model.ErrCodeRateLimited, "too many requests", logger)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
