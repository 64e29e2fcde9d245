package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ZapLogger logs one line per request: /api/* at info (warn for 5xx), everything
// else at debug. Authenticated requests carry the caller id.
func ZapLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.Request.URL.Path
		status := c.Writer.Status()
		fields := []interface{}{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"latency", time.Since(start).String(),
			"clientIP", c.ClientIP(),
		}
		if id := UserID(c); id != uuid.Nil {
			fields = append(fields, "user_id", id.String())
		}

		switch {
		case !strings.HasPrefix(path, "/api/"):
			log.Sugar().Debugw("HTTP", fields...)
		case status >= 500:
			log.Sugar().Warnw("HTTP", fields...)
		default:
			log.Sugar().Infow("HTTP", fields...)
		}
	}
}
