package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/ledger-dashboard/internal/domain/port/core"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/infrastructure/adapter/api/dto"
)

// OrderHandler handles the order queue endpoints
type OrderHandler struct {
	queue  usecase.OrderQueueUseCase
	logger coreport.Logger
}

// NewOrderHandler creates a new order handler instance
func NewOrderHandler(queue usecase.OrderQueueUseCase, logger coreport.Logger) *OrderHandler {
	return &OrderHandler{
		queue:  queue,
		logger: logger,
	}
}

// Queue handles GET /orders/queue
func (h *OrderHandler) Queue(c *gin.Context) {
	var req dto.OrderQueueRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}

	var status entity.OrderStatus
	if req.Status != "" {
		parsed, err := entity.ParseOrderStatus(req.Status)
		if err != nil {
			respondError(c, h.logger, "parse_status", err)
			return
		}
		status = parsed
	}

	page, err := h.queue.Query(c.Request.Context(), usecase.OrderQuery{
		Status:   status,
		Search:   req.Search,
		Page:     req.Page,
		Viewport: req.Viewport(),
	})
	if err != nil {
		respondError(c, h.logger, "query_orders", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewOrderQueueResponse(page))
}

// Refresh handles POST /orders/refresh
func (h *OrderHandler) Refresh(c *gin.Context) {
	if err := h.queue.Refresh(c.Request.Context()); err != nil {
		respondError(c, h.logger, "refresh_orders", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewFreshnessResponse(h.queue.Freshness()))
}

// Freshness handles GET /orders/freshness
func (h *OrderHandler) Freshness(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewFreshnessResponse(h.queue.Freshness()))
}

// Acknowledge handles POST /orders/freshness/ack
func (h *OrderHandler) Acknowledge(c *gin.Context) {
	h.queue.Acknowledge()
	c.Status(http.StatusNoContent)
}
