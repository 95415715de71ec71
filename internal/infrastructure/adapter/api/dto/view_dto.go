package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/entity"
)

// NotApplicable is rendered for ratios whose denominator is zero
const NotApplicable = "N/A"

// PageResponse describes the returned page of a paged list
type PageResponse struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
	TotalItems int `json:"totalItems"`
}

// WindowResponse is the visible slice of the page for a scroll viewport
type WindowResponse struct {
	StartIndex  int     `json:"startIndex"`
	EndIndex    int     `json:"endIndex"`
	OffsetY     float64 `json:"offsetY"`
	TotalHeight float64 `json:"totalHeight"`
}

// FreshnessResponse is the "new records" indicator of a dataset
type FreshnessResponse struct {
	HasNew    bool       `json:"hasNew"`
	Count     int        `json:"count"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// NewPageResponse maps page metadata
func NewPageResponse(p entity.PageInfo) PageResponse {
	return PageResponse{
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages,
		TotalItems: p.TotalItems,
	}
}

// NewWindowResponse maps a visible range, nil stays nil
func NewWindowResponse(r *entity.VisibleRange) *WindowResponse {
	if r == nil {
		return nil
	}
	return &WindowResponse{
		StartIndex:  r.StartIndex,
		EndIndex:    r.EndIndex,
		OffsetY:     r.OffsetY,
		TotalHeight: r.TotalHeight,
	}
}

// NewFreshnessResponse maps a freshness indicator
func NewFreshnessResponse(f entity.Freshness) FreshnessResponse {
	resp := FreshnessResponse{HasNew: f.HasNew, Count: f.Count}
	if f.HasNew && !f.ExpiresAt.IsZero() {
		expires := f.ExpiresAt.UTC()
		resp.ExpiresAt = &expires
	}
	return resp
}

// money renders an amount with two decimals
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
