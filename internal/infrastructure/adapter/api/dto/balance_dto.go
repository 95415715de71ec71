package dto

import (
	"strconv"

	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/entity"
)

// BalanceSheetResponse is the admin balance sheet. Ratios without a denominator
// are rendered as "N/A".
type BalanceSheetResponse struct {
	TotalRevenue          string         `json:"totalRevenue"`
	TotalTopups           string         `json:"totalTopups"`
	TotalRefunds          string         `json:"totalRefunds"`
	TotalExpenses         string         `json:"totalExpenses"`
	TotalTopupsAndRefunds string         `json:"totalTopupsAndRefunds"`
	TopupCount            int            `json:"topupCount"`
	RejectedTopupCount    int            `json:"rejectedTopupCount"`
	RefundCount           int            `json:"refundCount"`
	OrderCount            int            `json:"orderCount"`
	CountsByType          map[string]int `json:"countsByType"`
	ActiveUsers           int            `json:"activeUsers"`
	PreviousBalance       string         `json:"previousBalance"`
	NetPosition           string         `json:"netPosition"`
	NetCashFlow           string         `json:"netCashFlow"`
	SuccessRate           string         `json:"successRate"`
	AverageOrderValue     string         `json:"averageOrderValue"`
	Source                string         `json:"source"`
}

// NewBalanceSheetResponse maps a balance sheet, nil stays nil
func NewBalanceSheetResponse(b *entity.BalanceSheet) *BalanceSheetResponse {
	if b == nil {
		return nil
	}

	counts := make(map[string]int, len(b.CountsByType))
	for t, n := range b.CountsByType {
		counts[string(t)] = n
	}

	resp := &BalanceSheetResponse{
		TotalRevenue:          money(b.TotalRevenue),
		TotalTopups:           money(b.TotalTopups),
		TotalRefunds:          money(b.TotalRefunds),
		TotalExpenses:         money(b.TotalExpenses),
		TotalTopupsAndRefunds: money(b.TotalTopupsAndRefunds),
		TopupCount:            b.TopupCount,
		RejectedTopupCount:    b.RejectedTopupCount,
		RefundCount:           b.RefundCount,
		OrderCount:            b.OrderCount,
		CountsByType:          counts,
		ActiveUsers:           b.ActiveUsers,
		PreviousBalance:       money(b.PreviousBalance),
		NetPosition:           money(b.NetPosition),
		NetCashFlow:           money(b.NetCashFlow),
		SuccessRate:           NotApplicable,
		AverageOrderValue:     NotApplicable,
		Source:                string(b.Source),
	}
	if rate, ok := b.SuccessRate(); ok {
		resp.SuccessRate = strconv.FormatFloat(rate*100, 'f', 1, 64) + "%"
	}
	if aov, ok := b.AverageOrderValue(); ok {
		resp.AverageOrderValue = money(aov)
	}
	return resp
}
