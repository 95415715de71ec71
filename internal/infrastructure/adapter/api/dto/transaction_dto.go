package dto

import (
	"time"

	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/entity"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/port/usecase"
)

// TransactionListRequest holds the query parameters of the transaction list.
// The viewport is only applied when containerHeight is present.
type TransactionListRequest struct {
	Search          string   `form:"search"`
	Type            string   `form:"type"`
	Sign            string   `form:"sign"`
	Start           string   `form:"start"`
	End             string   `form:"end"`
	Page            int      `form:"page" binding:"omitempty,min=1"`
	Remote          bool     `form:"remote"`
	ScrollTop       float64  `form:"scrollTop"`
	ContainerHeight *float64 `form:"containerHeight"`
	RowHeight       float64  `form:"rowHeight"`
	BufferRows      int      `form:"bufferRows"`
}

// FilterRequest holds the filter parameters shared by the aggregate endpoints
type FilterRequest struct {
	Search string `form:"search"`
	Type   string `form:"type"`
	Sign   string `form:"sign"`
	Start  string `form:"start"`
	End    string `form:"end"`
}

// ExportRequest holds the export parameters
type ExportRequest struct {
	FilterRequest
	Shape  string `form:"shape"`
	Format string `form:"format"`
}

// Viewport returns the scroll geometry, or nil without a container height
func (r TransactionListRequest) Viewport() *entity.Viewport {
	if r.ContainerHeight == nil {
		return nil
	}
	return &entity.Viewport{
		ScrollTop:       r.ScrollTop,
		ContainerHeight: *r.ContainerHeight,
		RowHeight:       r.RowHeight,
		BufferRows:      r.BufferRows,
	}
}

// TransactionResponse represents a ledger entry in API responses
type TransactionResponse struct {
	ID              string    `json:"id"`
	Type            string    `json:"type"`
	Amount          string    `json:"amount"`
	AmountValid     bool      `json:"amountValid"`
	Balance         string    `json:"balance"`
	PreviousBalance *string   `json:"previousBalance,omitempty"`
	Description     string    `json:"description,omitempty"`
	UserName        string    `json:"userName,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	IsNew           bool      `json:"isNew"`
}

// StatsResponse summarizes cash flow over the filtered set
type StatsResponse struct {
	TotalTransactions int    `json:"totalTransactions"`
	TotalCredits      string `json:"totalCredits"`
	TotalDebits       string `json:"totalDebits"`
	NetBalance        string `json:"netBalance"`
}

// SalesSummaryResponse is one row of the per-user sales view
type SalesSummaryResponse struct {
	UserName    string `json:"userName"`
	TotalSales  string `json:"totalSales"`
	OrderCount  int    `json:"orderCount"`
	LoanBalance string `json:"loanBalance"`
}

// SummaryResponse bundles the three aggregates of a filtered set
type SummaryResponse struct {
	Stats        StatsResponse          `json:"stats"`
	SalesSummary []SalesSummaryResponse `json:"salesSummary"`
	BalanceSheet *BalanceSheetResponse  `json:"balanceSheet,omitempty"`
}

// TransactionListResponse is the response of the transaction list endpoint
type TransactionListResponse struct {
	Page         PageResponse          `json:"page"`
	Rows         []TransactionResponse `json:"rows"`
	Window       *WindowResponse       `json:"window,omitempty"`
	Summary      SummaryResponse       `json:"summary"`
	Freshness    FreshnessResponse     `json:"freshness"`
	SnapshotSize int                   `json:"snapshotSize"`
}

// NewTransactionResponse maps a tagged transaction
func NewTransactionResponse(row usecase.TransactionRow) TransactionResponse {
	resp := TransactionResponse{
		ID:          row.ID,
		Type:        string(row.Type),
		Amount:      money(row.Amount),
		AmountValid: row.AmountValid,
		Balance:     money(row.Balance),
		Description: row.Description,
		CreatedAt:   row.CreatedAt.UTC(),
		IsNew:       row.IsNew,
	}
	if row.PreviousBalance != nil {
		prev := money(*row.PreviousBalance)
		resp.PreviousBalance = &prev
	}
	if name, ok := row.UserName(); ok {
		resp.UserName = name
	}
	return resp
}

// NewStatsResponse maps cash-flow stats
func NewStatsResponse(s entity.Stats) StatsResponse {
	return StatsResponse{
		TotalTransactions: s.TotalTransactions,
		TotalCredits:      money(s.TotalCredits),
		TotalDebits:       money(s.TotalDebits),
		NetBalance:        money(s.NetBalance),
	}
}

// NewSalesSummaryResponse maps the sales summary; an empty summary stays an empty array
func NewSalesSummaryResponse(rows []entity.UserSalesSummary) []SalesSummaryResponse {
	out := make([]SalesSummaryResponse, len(rows))
	for i, r := range rows {
		out[i] = SalesSummaryResponse{
			UserName:    r.UserName,
			TotalSales:  money(r.TotalSales),
			OrderCount:  r.OrderCount,
			LoanBalance: money(r.LoanBalance),
		}
	}
	return out
}

// NewSummaryResponse maps the aggregates of a filtered set
func NewSummaryResponse(s usecase.Summary) SummaryResponse {
	return SummaryResponse{
		Stats:        NewStatsResponse(s.Stats),
		SalesSummary: NewSalesSummaryResponse(s.SalesSummary),
		BalanceSheet: NewBalanceSheetResponse(s.BalanceSheet),
	}
}

// NewTransactionListResponse maps a transaction page
func NewTransactionListResponse(page *usecase.TransactionPage) TransactionListResponse {
	rows := make([]TransactionResponse, len(page.Rows))
	for i, row := range page.Rows {
		rows[i] = NewTransactionResponse(row)
	}
	return TransactionListResponse{
		Page:         NewPageResponse(page.Page),
		Rows:         rows,
		Window:       NewWindowResponse(page.Window),
		Summary:      NewSummaryResponse(page.Summary),
		Freshness:    NewFreshnessResponse(page.Freshness),
		SnapshotSize: page.SnapshotSize,
	}
}
