package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/ledger-dashboard/internal/domain/port/core"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/infrastructure/adapter/database"
)

// Pinger checks that a backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// PoolReporter exposes the latest connection pool sample
type PoolReporter interface {
	PoolMetrics() database.ConnectionPoolMetrics
}

// HealthHandler reports service liveness and database reachability
type HealthHandler struct {
	db     Pinger
	logger coreport.Logger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(db Pinger, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{db: db, logger: logger}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		h.logger.Warn("Health check failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": "down"})
		return
	}
	body := gin.H{"status": "ok", "database": "up"}
	if reporter, ok := h.db.(PoolReporter); ok {
		pool := reporter.PoolMetrics()
		body["pool"] = gin.H{
			"open":    pool.OpenConnections,
			"inUse":   pool.InUse,
			"idle":    pool.IdleConnections,
			"maxOpen": pool.MaxOpenConnections,
		}
	}
	c.JSON(http.StatusOK, body)
}
