package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis_rate/v10"
	"go.uber.org/zap"

	"github.com/caderh/caderh-api/internal/modules/serializer"
)

// RateLimit caps requests per client IP and minute using redis. A nil limiter
// turns it into a pass-through; redis errors fail open.
func RateLimit(limiter *redis_rate.Limiter, prefix string, perMinute int, log *zap.Logger) gin.HandlerFunc {
	if limiter == nil || perMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	limit := redis_rate.PerMinute(perMinute)

	return func(c *gin.Context) {
		res, err := limiter.Allow(c.Request.Context(), prefix+":"+c.ClientIP(), limit)
		if err != nil {
			log.Sugar().Warnw("rate limit check", "err", err)
			c.Next()
			return
		}
		c.Header("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
		if res.Allowed == 0 {
			c.Header("Retry-After", strconv.Itoa(int(res.RetryAfter.Seconds())+1))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, serializer.Message{Message: "Demasiadas solicitudes, intente más tarde"})
			return
		}
		c.Next()
	}
}
