package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// CounterStore counts requests per key inside a fixed window.
type CounterStore interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

type visitor struct {
	count    int64
	lastSeen time.Time
}

// memoryStore is the single-process fallback when no Redis is configured.
type memoryStore struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	window   time.Duration
}

func newMemoryStore(window time.Duration) *memoryStore {
	s := &memoryStore{
		visitors: make(map[string]*visitor),
		window:   window,
	}

	// Cleanup goroutine
	go func() {
		for {
			time.Sleep(window)
			s.mu.Lock()
			for key, v := range s.visitors {
				if time.Since(v.lastSeen) > window {
					delete(s.visitors, key)
				}
			}
			s.mu.Unlock()
		}
	}()

	return s
}

func (s *memoryStore) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, exists := s.visitors[key]
	if !exists || time.Since(v.lastSeen) > window {
		s.visitors[key] = &visitor{count: 1, lastSeen: time.Now()}
		return 1, nil
	}

	v.count++
	v.lastSeen = time.Now()
	return v.count, nil
}

// redisStore shares counters across processes.
type redisStore struct {
	client *redis.Client
}

func (s *redisStore) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, "ratelimit:"+key)
	// NX keeps the window fixed from the first request in it.
	pipe.ExpireNX(ctx, "ratelimit:"+key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

type RateLimiter struct {
	store  CounterStore
	limit  int64
	window time.Duration
}

// NewRateLimiter builds an in-memory per-IP limiter.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		store:  newMemoryStore(window),
		limit:  int64(limit),
		window: window,
	}
}

// NewRedisRateLimiter builds a limiter backed by a shared Redis store.
func NewRedisRateLimiter(client *redis.Client, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		store:  &redisStore{client: client},
		limit:  int64(limit),
		window: window,
	}
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		count, err := rl.store.Incr(r.Context(), r.RemoteAddr, rl.window)
		if err != nil {
			// Fail open: a broken counter store should not take the API down.
			log.Printf("rate limiter store error: %v", err)
			next.ServeHTTP(w, r)
			return
		}

		if count > rl.limit {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", fmt.Sprintf("%d", int(rl.window.Seconds())))
			w.WriteHeader(http.StatusTooManyRequests)
			json.NewEncoder(w).Encode(map[string]string{
				"error": "Too many requests. Please try again later.",
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}
