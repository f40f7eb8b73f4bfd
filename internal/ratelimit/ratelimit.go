// Package ratelimit guards the expensive AI endpoints with a Redis-backed
// fixed-window counter per user. Without Redis configured the limiter is
// nil and every request passes.
package ratelimit

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmatson/shepherd/internal/auth"
	"github.com/redis/go-redis/v9"
)

// Limiter counts requests per key within a fixed window
type Limiter struct {
	rdb    *redis.Client
	limit  int64
	window time.Duration
}

// New creates a Limiter allowing limit requests per window
func New(rdb *redis.Client, limit int64, window time.Duration) *Limiter {
	return &Limiter{rdb: rdb, limit: limit, window: window}
}

// Allow increments the window counter for key and reports whether the
// request is within the limit. Redis errors fail open: an unavailable
// limiter must not take the endpoint down with it.
func (l *Limiter) Allow(ctx context.Context, key string) bool {
	count, err := l.rdb.Incr(ctx, key).Result()
	if err != nil {
		log.Printf("Rate limiter unavailable, allowing request: %v", err)
		return true
	}
	if count == 1 {
		if err := l.rdb.Expire(ctx, key, l.window).Err(); err != nil {
			log.Printf("Failed to set rate limit window for %s: %v", key, err)
		}
	}
	return count <= l.limit
}

// Middleware enforces the limit per authenticated user for the named
// endpoint. A nil limiter disables enforcement.
func Middleware(l *Limiter, name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if l == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:%s:%s", name, auth.CurrentUserID(c))
		if !l.Allow(c.Request.Context(), key) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "Too many requests, try again later"})
			return
		}
		c.Next()
	}
}
