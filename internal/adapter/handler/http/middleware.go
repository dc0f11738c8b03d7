package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-Id"

// requestID propagates an incoming request id or mints a new one, so
// log lines of one request can be correlated across services.
func requestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		rid := ctx.Request.Header.Get(requestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		ctx.Set(requestIDHeader, rid)
		ctx.Writer.Header().Set(requestIDHeader, rid)

		ctx.Next()
	}
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		logger.Debug("request",
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
			zap.Int("status", ctx.Writer.Status()),
			zap.String("request_id", ctx.GetString(requestIDHeader)),
			zap.Duration("duration", time.Since(start)))
	}
}
