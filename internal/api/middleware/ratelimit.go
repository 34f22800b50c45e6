package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/qs3c/trip_go_server/config"
	"github.com/qs3c/trip_go_server/internal/pkg/response"
)

// RateLimit 基于 Redis 的按 IP 固定窗口限流（INCR + EXPIRE，窗口一分钟）。
// Redis 不可用时放行：限流是保护层，不能变成额外的故障点。
func RateLimit(rdb *redis.Client, cfg config.RateLimitConfig) gin.HandlerFunc {
	if !cfg.Enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := fmt.Sprintf("ratelimit:%s", c.ClientIP())

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			c.Next()
			return
		}
		if count == 1 {
			rdb.Expire(ctx, key, time.Minute)
		}

		if count > int64(cfg.RequestsPerMinute) {
			c.Header("Retry-After", "60")
			response.RateLimitError(c, "")
			c.Abort()
			return
		}

		c.Next()
	}
}
