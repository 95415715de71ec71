package dto

import (
	"time"

	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/entity"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/port/usecase"
)

// OrderQueueRequest holds the query parameters of the order queue
type OrderQueueRequest struct {
	Status          string   `form:"status"`
	Search          string   `form:"search"`
	Page            int      `form:"page" binding:"omitempty,min=1"`
	ScrollTop       float64  `form:"scrollTop"`
	ContainerHeight *float64 `form:"containerHeight"`
	RowHeight       float64  `form:"rowHeight"`
	BufferRows      int      `form:"bufferRows"`
}

// Viewport returns the scroll geometry, or nil without a container height
func (r OrderQueueRequest) Viewport() *entity.Viewport {
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

// OrderResponse represents a bundle order in API responses
type OrderResponse struct {
	ID        string    `json:"id"`
	Reference string    `json:"reference"`
	UserName  string    `json:"userName,omitempty"`
	Bundle    string    `json:"bundle"`
	Recipient string    `json:"recipient"`
	Network   string    `json:"network"`
	Amount    string    `json:"amount"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	IsNew     bool      `json:"isNew"`
}

// OrderQueueResponse is the response of the order queue endpoint
type OrderQueueResponse struct {
	Page         PageResponse      `json:"page"`
	Rows         []OrderResponse   `json:"rows"`
	Window       *WindowResponse   `json:"window,omitempty"`
	StatusCounts map[string]int    `json:"statusCounts"`
	Freshness    FreshnessResponse `json:"freshness"`
}

// NewOrderQueueResponse maps an order page
func NewOrderQueueResponse(page *usecase.OrderPage) OrderQueueResponse {
	rows := make([]OrderResponse, len(page.Rows))
	for i, row := range page.Rows {
		rows[i] = OrderResponse{
			ID:        row.ID,
			Reference: row.Reference,
			Bundle:    row.Bundle,
			Recipient: row.Recipient,
			Network:   row.Network,
			Amount:    money(row.Amount),
			Status:    string(row.Status),
			CreatedAt: row.CreatedAt.UTC(),
			IsNew:     row.IsNew,
		}
		if row.User != nil {
			rows[i].UserName = row.User.Name
		}
	}

	counts := make(map[string]int, len(page.StatusCounts))
	for status, n := range page.StatusCounts {
		counts[string(status)] = n
	}

	return OrderQueueResponse{
		Page:         NewPageResponse(page.Page),
		Rows:         rows,
		Window:       NewWindowResponse(page.Window),
		StatusCounts: counts,
		Freshness:    NewFreshnessResponse(page.Freshness),
	}
}
