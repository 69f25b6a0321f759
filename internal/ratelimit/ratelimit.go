// Package ratelimit guards the public subscribe endpoint against abuse.
//
// Two implementations share one interface: a Redis fixed-window counter for
// multi-instance deployments, and an in-process token bucket used when no
// Redis is configured.
package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// Limiter answers whether a client, identified by key (normally its IP),
// may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) bool
}

// RedisLimiter is a fixed-window counter: N requests per window per key.
type RedisLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
	prefix string
}

// NewRedisLimiter creates a limiter allowing limit requests per window.
func NewRedisLimiter(client *redis.Client, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{client: client, limit: limit, window: window, prefix: "ratelimit:subscribe:"}
}

// Allow increments the key's window counter and compares it to the limit.
// Redis being down fails open: the subscribe form must not break because the
// limiter's backing store is unavailable.
func (l *RedisLimiter) Allow(ctx context.Context, key string) bool {
	rkey := fmt.Sprintf("%s%s:%d", l.prefix, key, time.Now().Unix()/int64(l.window.Seconds()))
	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, rkey)
	pipe.Expire(ctx, rkey, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return true
	}
	return incr.Val() <= int64(l.limit)
}

// LocalLimiter keeps a token bucket per key in memory. Entries idle past the
// cleanup age are dropped by a background loop.
type LocalLimiter struct {
	mu      sync.Mutex
	buckets map[string]*localBucket
	rate    rate.Limit
	burst   int
	stopCh  chan struct{}
}

type localBucket struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// NewLocalLimiter creates a limiter allowing limit requests per window with
// burst capacity equal to the limit, and starts its cleanup loop.
func NewLocalLimiter(limit int, window time.Duration) *LocalLimiter {
	l := &LocalLimiter{
		buckets: make(map[string]*localBucket),
		rate:    rate.Limit(float64(limit) / window.Seconds()),
		burst:   limit,
		stopCh:  make(chan struct{}),
	}
	go l.cleanupLoop()
	return l
}

// Allow consumes one token from the key's bucket.
func (l *LocalLimiter) Allow(_ context.Context, key string) bool {
	l.mu.Lock()
	b, ok := l.buckets[key]
	if !ok {
		b = &localBucket{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.buckets[key] = b
	}
	b.lastAccess = time.Now()
	l.mu.Unlock()
	return b.limiter.Allow()
}

// Stop terminates the cleanup loop.
func (l *LocalLimiter) Stop() { close(l.stopCh) }

func (l *LocalLimiter) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-l.stopCh:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-15 * time.Minute)
			l.mu.Lock()
			for key, b := range l.buckets {
				if b.lastAccess.Before(cutoff) {
					delete(l.buckets, key)
				}
			}
			l.mu.Unlock()
		}
	}
}
