package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/gtkpad369/LegalSch/internal/httperr"
)

// RateLimitMiddleware throttles unauthenticated traffic per client IP
// using a fixed window counter in redis. Without a redis client, or
// when redis is unreachable, requests pass through.
func RateLimitMiddleware(client *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:%s", c.ClientIP())

		count, err := client.Incr(c.Request.Context(), key).Result()
		if err != nil {
			zap.L().Warn("rate limit check failed", zap.Error(err))
			c.Next()
			return
		}

		if count == 1 {
			client.Expire(c.Request.Context(), key, window)
		}

		if count > int64(limit) {
			httperr.TooManyRequests(c, "rate_limited", "too many requests, try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
