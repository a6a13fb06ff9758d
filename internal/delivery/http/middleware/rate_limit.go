package middleware

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"sync"
	"time"

	"leap-forms-backend/config"
	"leap-forms-backend/internal/domain"
	"leap-forms-backend/pkg/apperror"
	"leap-forms-backend/pkg/security"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Custom key extractor (default: IP-based)
	KeyFunc func(*gin.Context) string
	// Key prefix for Redis
	KeyPrefix string
	// Whether to fail closed (reject) when Redis errors
	FailClosed bool
}

// Lua script for atomic increment with TTL on first set
// KEYS[1] = counter key
// ARGV[1] = TTL in seconds
// Returns: [current_count, ttl_remaining]
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

var rateLimitScript = goredis.NewScript(rateLimitLuaScript)

func clientIPKey(c *gin.Context) string {
	return c.ClientIP()
}

// GlobalRateLimitConfig applies to every API route
func GlobalRateLimitConfig(cfg *config.Config) RateLimitConfig {
	return RateLimitConfig{
		Limit:     cfg.RateLimitGlobalThreshold,
		Window:    cfg.RateLimitWindow(),
		KeyPrefix: "rl:ip:",
		KeyFunc:   clientIPKey,
	}
}

// SubmitRateLimitConfig is the strict limit for routes that send email
func SubmitRateLimitConfig(cfg *config.Config) RateLimitConfig {
	return RateLimitConfig{
		Limit:     cfg.RateLimitSubmitThreshold,
		Window:    cfg.RateLimitWindow(),
		KeyPrefix: "rl:submit:",
		KeyFunc:   clientIPKey,
	}
}

// localEntry is the in-memory fallback state for one key
type localEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter counts requests in Redis when a client is available and in memory otherwise.
type RateLimiter struct {
	redis *goredis.Client
	audit *security.SecurityLogger

	mu        sync.Mutex
	local     map[string]*localEntry
	lastSweep time.Time
	now       func() time.Time
}

// NewRateLimiter creates a limiter; client may be nil.
func NewRateLimiter(client *goredis.Client, audit *security.SecurityLogger) *RateLimiter {
	if audit == nil {
		audit = security.NewSecurityLogger(nil, "", "")
	}
	return &RateLimiter{
		redis: client,
		audit: audit,
		local: make(map[string]*localEntry),
		now:   time.Now,
	}
}

// Middleware creates a rate limiting middleware with the given config
func (rl *RateLimiter) Middleware(cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = clientIPKey
	}

	return func(c *gin.Context) {
		if cfg.Limit <= 0 || cfg.Window <= 0 {
			c.Next()
			return
		}

		fullKey := cfg.KeyPrefix + cfg.KeyFunc(c)

		var (
			allowed   bool
			remaining int
			resetAt   time.Time
		)

		if rl.redis != nil {
			count, reset, err := rl.checkRedis(c.Request.Context(), fullKey, cfg)
			if err != nil {
				rl.logBackendError(c, err)
				if cfg.FailClosed {
					_ = c.Error(apperror.Unavailable("Service temporarily unavailable. Please try again.", nil))
					c.Abort()
					return
				}
				allowed, remaining, resetAt = rl.checkLocal(fullKey, cfg)
			} else {
				allowed = count <= cfg.Limit
				remaining = cfg.Limit - count
				resetAt = reset
			}
		} else {
			allowed, remaining, resetAt = rl.checkLocal(fullKey, cfg)
		}

		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", resetAt.UTC().Format(time.RFC3339))

		if !allowed {
			retryAfter := int(math.Ceil(resetAt.Sub(rl.now()).Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			rl.audit.LogRateLimitTriggered(
				c.Request.Context(),
				c.ClientIP(),
				c.GetHeader("User-Agent"),
				domain.RequestIDFromContext(c.Request.Context()),
				c.FullPath(),
			)

			_ = c.Error(apperror.TooManyRequests("Too many requests. Please try again later."))
			c.Abort()
			return
		}

		c.Next()
	}
}

// checkRedis checks rate limit using Redis with atomic Lua script
func (rl *RateLimiter) checkRedis(ctx context.Context, key string, cfg RateLimitConfig) (int, time.Time, error) {
	ttlSeconds := int(math.Ceil(cfg.Window.Seconds()))

	result, err := rateLimitScript.Run(ctx, rl.redis, []string{key}, ttlSeconds).Result()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("redis rate limit eval failed: %w", err)
	}

	arr, ok := result.([]interface{})
	if !ok || len(arr) < 2 {
		return 0, time.Time{}, fmt.Errorf("unexpected redis result format")
	}

	count, _ := arr[0].(int64)
	ttl, _ := arr[1].(int64)
	if ttl < 0 {
		ttl = int64(ttlSeconds)
	}

	return int(count), rl.now().Add(time.Duration(ttl) * time.Second), nil
}

// checkLocal is the in-memory fallback: a token bucket refilling Limit tokens per Window
func (rl *RateLimiter) checkLocal(key string, cfg RateLimitConfig) (bool, int, time.Time) {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.sweep(now, cfg.Window)

	entry, ok := rl.local[key]
	if !ok {
		entry = &localEntry{
			limiter: rate.NewLimiter(rate.Every(cfg.Window/time.Duration(cfg.Limit)), cfg.Limit),
		}
		rl.local[key] = entry
	}
	entry.lastSeen = now

	allowed := entry.limiter.AllowN(now, 1)
	tokens := entry.limiter.TokensAt(now)
	remaining := int(math.Floor(tokens))

	// time until one token is available again
	wait := time.Duration(0)
	if tokens < 1 {
		wait = time.Duration((1 - tokens) / float64(entry.limiter.Limit()) * float64(time.Second))
	}
	return allowed, remaining, now.Add(wait)
}

// sweep drops fallback entries idle for longer than window; callers hold rl.mu
func (rl *RateLimiter) sweep(now time.Time, window time.Duration) {
	if now.Sub(rl.lastSweep) < window {
		return
	}
	rl.lastSweep = now
	for key, entry := range rl.local {
		if now.Sub(entry.lastSeen) > window {
			delete(rl.local, key)
		}
	}
}

func (rl *RateLimiter) logBackendError(c *gin.Context, err error) {
	rl.audit.Log(c.Request.Context(), security.SecurityEvent{
		Event:       security.EventRateLimitBackend,
		SubjectType: "system",
		IP:          c.ClientIP(),
		RequestID:   domain.RequestIDFromContext(c.Request.Context()),
		Details: map[string]interface{}{
			"error": err.Error(),
		},
	})
}
