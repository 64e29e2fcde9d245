package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/caderh/caderh-api/internal/modules/serializer"
)

// ZapRecovery turns a panic into a 500 and logs it with the request path.
func ZapRecovery(log *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, rec interface{}) {
		log.Sugar().Errorw("panic recovered",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"panic", rec,
			zap.StackSkip("stack", 3),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, serializer.ServerErr())
	})
}
