package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// RequestIDHeader carries the request id in and out.
	RequestIDHeader = "X-Request-ID"

	requestIDKey = "requestID"
	loggerKey    = "logger"
)

// RequestID tags every request with an id, reusing the caller's
// X-Request-ID when one is sent.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// Logger stores a request-scoped logger on the context and writes one
// access log line per request.
func Logger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqLog := log.With(zap.String("request_id", c.GetString(requestIDKey)))
		c.Set(loggerKey, reqLog)

		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("query", c.Request.URL.RawQuery),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			reqLog.Error("request failed", fields...)
		default:
			reqLog.Info("request", fields...)
		}
	}
}

// Recovery turns a panic into a 500 with the standard error body.
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				LoggerFrom(c, log).Error("panic recovered", zap.Any("panic", r), zap.Stack("stack"))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			}
		}()
		c.Next()
	}
}

// LoggerFrom returns the request-scoped logger, or fallback when the
// Logger middleware did not run.
func LoggerFrom(c *gin.Context, fallback *zap.Logger) *zap.Logger {
	if v, ok := c.Get(loggerKey); ok {
		if l, ok := v.(*zap.Logger); ok {
			return l
		}
	}
	return fallback
}
