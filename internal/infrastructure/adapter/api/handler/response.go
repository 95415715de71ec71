package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	errs "github.com/amirhossein-jamali/ledger-dashboard/internal/domain/error"
	coreport "github.com/amirhossein-jamali/ledger-dashboard/internal/domain/port/core"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/infrastructure/adapter/api/middleware"
)

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errs.IsValidationError(err):
		return http.StatusBadRequest
	case errs.IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrRateLimited):
		return http.StatusTooManyRequests
	case errs.IsFetchError(err), errors.Is(err, errs.ErrDatabaseConnection):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as an ErrorResponse. Client errors carry the error text;
// server errors are logged and answered generically.
func respondError(c *gin.Context, logger coreport.Logger, operation string, err error) {
	status := statusFor(err)
	message := err.Error()

	if status >= http.StatusInternalServerError {
		fields := map[string]any{
			"operation":  operation,
			"error":      err.Error(),
			"request_id": middleware.GetRequestID(c),
		}
		var logged interface{ LogFields() map[string]any }
		if errors.As(err, &logged) {
			for k, v := range logged.LogFields() {
				fields[k] = v
			}
		}
		logger.Error("Request failed", fields)

		message = http.StatusText(status)
	}

	c.AbortWithStatusJSON(status, dto.ErrorResponse{
		Code:      errs.ErrorCode(err),
		Message:   message,
		RequestID: middleware.GetRequestID(c),
	})
}

// badRequest answers a request whose parameters could not be bound
func badRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:      errs.ErrorCode(errs.ErrInvalidRequest),
		Message:   "Invalid request parameters: " + err.Error(),
		RequestID: middleware.GetRequestID(c),
	})
}
