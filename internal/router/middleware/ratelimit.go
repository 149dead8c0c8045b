package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/myseringan/texnokross-bolt-sub000/internal/config"
	"github.com/myseringan/texnokross-bolt-sub000/internal/http/response"
	"github.com/myseringan/texnokross-bolt-sub000/internal/logger"
)

// loginLimiter counts login attempts per client key inside a window and
// blocks the key once the attempts run out.
type loginLimiter interface {
	allow(key string, window, block time.Duration, maxAttempts int) bool
}

// redisLimiter is the shared-state limiter for multi-instance deployments.
type redisLimiter struct {
	client *redis.Client
}

func (l *redisLimiter) allow(key string, window, block time.Duration, maxAttempts int) bool {
	ctx := context.Background()
	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		// A broken limiter must not lock everyone out.
		logger.Warnw("rate_limit_redis_failed", "error", err)
		return true
	}
	if count == 1 {
		l.client.Expire(ctx, key, window)
	}
	if count > int64(maxAttempts) {
		l.client.Expire(ctx, key, block)
		return false
	}
	return true
}

// memoryLimiter is the single-instance fallback.
type memoryLimiter struct {
	mu      sync.Mutex
	entries map[string]*memoryLimit
}

type memoryLimit struct {
	count   int
	resetAt time.Time
}

func newMemoryLimiter() *memoryLimiter {
	return &memoryLimiter{entries: map[string]*memoryLimit{}}
}

func (l *memoryLimiter) allow(key string, window, block time.Duration, maxAttempts int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := time.Now()
	entry, ok := l.entries[key]
	if !ok || now.After(entry.resetAt) {
		l.entries[key] = &memoryLimit{count: 1, resetAt: now.Add(window)}
		return true
	}
	entry.count++
	if entry.count > maxAttempts {
		entry.resetAt = now.Add(block)
		return false
	}
	return true
}

// LoginRateLimit throttles login attempts per client IP. A redis client
// shares the counters across instances; without one the counters are
// process-local.
func LoginRateLimit(cfg *config.LoginRateLimitConfig, redisClient *redis.Client, prefix string) gin.HandlerFunc {
	window := time.Duration(cfg.WindowSeconds) * time.Second
	block := time.Duration(cfg.BlockSeconds) * time.Second
	maxAttempts := cfg.MaxAttempts
	if window <= 0 || maxAttempts <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if block <= 0 {
		block = window
	}

	var limiter loginLimiter
	if redisClient != nil {
		limiter = &redisLimiter{client: redisClient}
	} else {
		limiter = newMemoryLimiter()
	}

	return func(c *gin.Context) {
		key := prefix + ":login_attempts:" + c.ClientIP()
		if !limiter.allow(key, window, block, maxAttempts) {
			logger.Warnw("login_rate_limited", "client_ip", c.ClientIP())
			response.Error(c, http.StatusTooManyRequests, "too_many_requests")
			c.Abort()
			return
		}
		c.Next()
	}
}
