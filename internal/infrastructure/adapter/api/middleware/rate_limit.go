package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	errs "github.com/amirhossein-jamali/ledger-dashboard/internal/domain/error"
	coreport "github.com/amirhossein-jamali/ledger-dashboard/internal/domain/port/core"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/infrastructure/adapter/api/dto"
)

// limiterIdleTTL drops the limiter of a client that stayed away this long
const limiterIdleTTL = 10 * time.Minute

// LimiterStore keeps one limiter per client
type LimiterStore interface {
	GetOrAdd(key string, ttl time.Duration, create func() any) any
}

// RateLimit middleware applies a token bucket per client IP
func RateLimit(store LimiterStore, requestsPerSecond float64, burst int, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		limiter := store.GetOrAdd("ratelimit:"+ip, limiterIdleTTL, func() any {
			return rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
		}).(*rate.Limiter)

		if !limiter.Allow() {
			logger.Warn("Rate limit exceeded", map[string]any{
				"ip":         ip,
				"path":       c.Request.URL.Path,
				"request_id": GetRequestID(c),
			})
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Code:      errs.ErrorCode(errs.ErrRateLimited),
				Message:   "Too many requests",
				RequestID: GetRequestID(c),
			})
			return
		}

		c.Next()
	}
}
