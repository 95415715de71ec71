package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/ledger-dashboard/internal/domain/port/core"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/port/report"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/infrastructure/adapter/api/dto"
)

// TransactionHandler handles the transaction dashboard endpoints
type TransactionHandler struct {
	dashboard usecase.DashboardUseCase
	logger    coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(dashboard usecase.DashboardUseCase, logger coreport.Logger) *TransactionHandler {
	return &TransactionHandler{
		dashboard: dashboard,
		logger:    logger,
	}
}

// List handles GET /transactions
func (h *TransactionHandler) List(c *gin.Context) {
	var req dto.TransactionListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}

	criteria, err := h.dashboard.ParseCriteria(req.Search, req.Type, req.Sign, req.Start, req.End)
	if err != nil {
		respondError(c, h.logger, "parse_criteria", err)
		return
	}

	page, err := h.dashboard.Query(c.Request.Context(), usecase.TransactionQuery{
		Criteria: criteria,
		Page:     req.Page,
		Viewport: req.Viewport(),
		Remote:   req.Remote,
	})
	if err != nil {
		respondError(c, h.logger, "query_transactions", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionListResponse(page))
}

// Stats handles GET /transactions/stats
func (h *TransactionHandler) Stats(c *gin.Context) {
	summary, ok := h.summarize(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.NewStatsResponse(summary.Stats))
}

// SalesSummary handles GET /transactions/sales-summary
func (h *TransactionHandler) SalesSummary(c *gin.Context) {
	summary, ok := h.summarize(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.NewSalesSummaryResponse(summary.SalesSummary))
}

// BalanceSheet handles GET /transactions/balance-sheet
func (h *TransactionHandler) BalanceSheet(c *gin.Context) {
	summary, ok := h.summarize(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.NewBalanceSheetResponse(summary.BalanceSheet))
}

// Export handles GET /transactions/export
func (h *TransactionHandler) Export(c *gin.Context) {
	var req dto.ExportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}

	shape, err := report.ParseShape(req.Shape)
	if err != nil {
		respondError(c, h.logger, "export", fmt.Errorf("%w: shape %q", err, req.Shape))
		return
	}
	format, err := report.ParseFormat(req.Format)
	if err != nil {
		respondError(c, h.logger, "export", fmt.Errorf("%w: format %q", err, req.Format))
		return
	}
	criteria, err := h.criteria(req.FilterRequest)
	if err != nil {
		respondError(c, h.logger, "parse_criteria", err)
		return
	}

	file, err := h.dashboard.Export(c.Request.Context(), usecase.ExportRequest{
		Criteria: criteria,
		Shape:    shape,
		Format:   format,
	})
	if err != nil {
		respondError(c, h.logger, "export", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, file.FileName))
	c.Data(http.StatusOK, file.ContentType, file.Content)
}

// Refresh handles POST /transactions/refresh
func (h *TransactionHandler) Refresh(c *gin.Context) {
	if err := h.dashboard.Refresh(c.Request.Context()); err != nil {
		respondError(c, h.logger, "refresh_transactions", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewFreshnessResponse(h.dashboard.Freshness()))
}

// Freshness handles GET /transactions/freshness
func (h *TransactionHandler) Freshness(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewFreshnessResponse(h.dashboard.Freshness()))
}

// Acknowledge handles POST /transactions/freshness/ack
func (h *TransactionHandler) Acknowledge(c *gin.Context) {
	h.dashboard.Acknowledge()
	c.Status(http.StatusNoContent)
}

func (h *TransactionHandler) summarize(c *gin.Context) (*usecase.Summary, bool) {
	var req dto.FilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return nil, false
	}
	criteria, err := h.criteria(req)
	if err != nil {
		respondError(c, h.logger, "parse_criteria", err)
		return nil, false
	}

	summary, err := h.dashboard.Summarize(c.Request.Context(), criteria)
	if err != nil {
		respondError(c, h.logger, "summarize", err)
		return nil, false
	}
	return summary, true
}

func (h *TransactionHandler) criteria(req dto.FilterRequest) (entity.Criteria, error) {
	return h.dashboard.ParseCriteria(req.Search, req.Type, req.Sign, req.Start, req.End)
}
