package httpapi

import (
	"strings"
	"time"

	"github.com/MarkoPoloResearchLab/matchledger/internal/telemetry"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	requestIDHeader     = "X-Request-ID"
	requestIDContextKey = "request_id"
	unmatchedRoute      = "unmatched"
	maxRequestIDLength  = 128
)

// requestIDMiddleware propagates a caller-supplied request id or mints one.
func requestIDMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := strings.TrimSpace(ctx.GetHeader(requestIDHeader))
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.NewString()
		}
		ctx.Set(requestIDContextKey, requestID)
		ctx.Header(requestIDHeader, requestID)
		ctx.Next()
	}
}

func accessLogMiddleware(logger *zap.Logger, metrics *telemetry.Metrics) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		startedAt := time.Now()
		ctx.Next()
		elapsed := time.Since(startedAt)

		route := ctx.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		statusCode := ctx.Writer.Status()
		if metrics != nil {
			metrics.ObserveHTTPRequest(ctx.Request.Method, route, statusCode, elapsed)
		}
		logger.Info("http request",
			zap.String("request_id", requestIDFrom(ctx)),
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
			zap.String("route", route),
			zap.Int("status", statusCode),
			zap.Duration("latency", elapsed),
		)
	}
}

func requestIDFrom(ctx *gin.Context) string {
	return ctx.GetString(requestIDContextKey)
}
