package middlewares

import (
	"net/http"
	"time"

	"explore-simeulue-be/config"

	"github.com/gin-gonic/gin"
)

const loginLimitWindow = 15 * time.Minute

// LoginRateLimiter throttles login attempts per client IP so admin
// credentials cannot be brute-forced through the dashboard.
func LoginRateLimiter(limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := config.Ctx
		key := "login_attempts:" + c.ClientIP()

		count, err := config.RedisClient.Incr(ctx, key).Result()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "redis error incrementing count"})
			c.Abort()
			return
		}

		if count == 1 {
			if err := config.RedisClient.Expire(ctx, key, loginLimitWindow).Err(); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "redis error setting TTL"})
				c.Abort()
				return
			}
		}

		if count > int64(limit) {
			retryAfter, _ := config.RedisClient.TTL(ctx, key).Result()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "too many login attempts",
				"retry_after": retryAfter.Seconds(),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
