package middleware

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/vietanh2810/evote-api/internal/api/handler/v1/response"
)

// Limiter decides whether the client identified by key may make another request.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

func RateLimit(l Limiter) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		key := ctx.ClientIP()
		if key == "" {
			key = "unknown"
		}

		ok, err := l.Allow(ctx.Request.Context(), key)
		if err != nil {
			zap.L().Warn("rate limiter unavailable, letting request through", zap.Error(err))
			ctx.Next()
			return
		}
		if !ok {
			response.RenderErr(ctx, response.ErrTooManyRequests())
			return
		}

		ctx.Next()
	}
}

const limiterTTL = 5 * time.Minute

type bucket struct {
	lim  *rate.Limiter
	seen time.Time
}

// MemoryLimiter is a token bucket per client, kept in process memory.
type MemoryLimiter struct {
	limit rate.Limit
	burst int

	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
	now       func() time.Time
}

func NewMemoryLimiter(perMinute, burst int) *MemoryLimiter {
	if burst <= 0 {
		burst = perMinute
	}

	return &MemoryLimiter{
		limit:   rate.Limit(float64(perMinute) / 60),
		burst:   burst,
		buckets: make(map[string]*bucket),
		now:     time.Now,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{lim: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[key] = b
	}
	b.seen = now

	return b.lim.AllowN(now, 1), nil
}

// sweep drops buckets idle for longer than limiterTTL, at most once a minute.
func (l *MemoryLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < time.Minute {
		return
	}
	l.lastSweep = now

	for key, b := range l.buckets {
		if now.Sub(b.seen) > limiterTTL {
			delete(l.buckets, key)
		}
	}
}

// RedisLimiter is a fixed one-minute window shared by every instance using the same redis.
type RedisLimiter struct {
	client    redis.Cmdable
	perMinute int
	now       func() time.Time
}

func NewRedisLimiter(client redis.Cmdable, perMinute int) *RedisLimiter {
	return &RedisLimiter{
		client:    client,
		perMinute: perMinute,
		now:       time.Now,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	window := l.now().Unix() / 60
	redisKey := fmt.Sprintf("ratelimit:%s:%d", key, window)

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, time.Minute)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("pipe.Exec -> %w", err)
	}

	return incr.Val() <= int64(l.perMinute), nil
}
