package middleware

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"sync"
	"time"

	"jhris/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Limiter counts hits per key in fixed windows. retryAfter is only
// meaningful when allowed is false.
type Limiter interface {
	Allow(ctx context.Context, key string) (allowed bool, retryAfter time.Duration, err error)
}

// RateLimit applies l per client IP under scope. Limiter failures let the
// request through.
func RateLimit(l Limiter, scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, retryAfter, err := l.Allow(c.Request.Context(), scope+":"+c.ClientIP())
		if err != nil {
			log.Warn().
				Str("request_id", c.GetString(RequestIDKey)).
				Str("scope", scope).
				Err(err).
				Msg("rate limiter unavailable")
			c.Next()
			return
		}
		if !allowed {
			secs := int(math.Ceil(retryAfter.Seconds()))
			if secs < 1 {
				secs = 1
			}
			c.Header("Retry-After", fmt.Sprintf("%d", secs))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(apierror.DetailTooManyRequests))
			return
		}
		c.Next()
	}
}

// NewLimiter returns a Redis-backed limiter when rdb is set, so counters are
// shared between processes, and an in-process one otherwise.
func NewLimiter(rdb *redis.Client, limit int, window time.Duration) Limiter {
	if rdb != nil {
		return NewRedisLimiter(rdb, limit, window)
	}
	return NewMemoryLimiter(limit, window)
}

// ── In-process limiter ────────────────────────────────────────────────────────

type rateEntry struct {
	count     int
	windowEnd time.Time
}

// MemoryLimiter keeps counters in a map. Expired entries are purged lazily
// from Allow at most once per purgeInterval.
type MemoryLimiter struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu        sync.Mutex
	entries   map[string]*rateEntry
	nextPurge time.Time
}

const purgeInterval = 5 * time.Minute

func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		limit:   limit,
		window:  window,
		now:     time.Now,
		entries: make(map[string]*rateEntry),
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, time.Duration, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.After(l.nextPurge) {
		l.purge(now)
		l.nextPurge = now.Add(purgeInterval)
	}

	entry, ok := l.entries[key]
	if !ok || now.After(entry.windowEnd) {
		entry = &rateEntry{windowEnd: now.Add(l.window)}
		l.entries[key] = entry
	}

	entry.count++
	if entry.count > l.limit {
		return false, entry.windowEnd.Sub(now), nil
	}
	return true, 0, nil
}

func (l *MemoryLimiter) purge(now time.Time) {
	purged := 0
	for key, entry := range l.entries {
		if now.After(entry.windowEnd) {
			delete(l.entries, key)
			purged++
		}
	}
	if purged > 0 {
		log.Debug().Int("purged", purged).Int("remaining", len(l.entries)).Msg("rate limiter entries purged")
	}
}

// ── Redis limiter ─────────────────────────────────────────────────────────────

// RedisLimiter uses INCR plus EXPIRE on a per-key counter.
type RedisLimiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
}

func NewRedisLimiter(rdb *redis.Client, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{rdb: rdb, limit: limit, window: window}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	key = "jhris:ratelimit:" + key

	count, err := l.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, 0, err
	}
	if count == 1 {
		if err := l.rdb.Expire(ctx, key, l.window).Err(); err != nil {
			return false, 0, err
		}
	}
	if count <= int64(l.limit) {
		return true, 0, nil
	}

	ttl, err := l.rdb.PTTL(ctx, key).Result()
	if err != nil {
		return false, 0, err
	}
	if ttl < 0 {
		// Counter lost its expiry; set it again so the key cannot block forever.
		_ = l.rdb.Expire(ctx, key, l.window).Err()
		ttl = l.window
	}
	return false, ttl, nil
}
