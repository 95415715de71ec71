package entity

import (
	"github.com/shopspring/decimal"
)

// Stats summarizes cash flow over a filtered set
type Stats struct {
	TotalTransactions int
	TotalCredits      decimal.Decimal // sum of positive amounts
	TotalDebits       decimal.Decimal // sum of negative amounts, non-positive
	NetBalance        decimal.Decimal
}

// UserSalesSummary is one row of the per-user sales view
type UserSalesSummary struct {
	UserName    string
	TotalSales  decimal.Decimal // signed sum of ORDER amounts
	OrderCount  int
	LoanBalance decimal.Decimal // balance of the user's latest transaction
}

// BalanceSheetSource tells where a balance sheet was computed
type BalanceSheetSource string

// Balance sheet sources
const (
	SourceLocal  BalanceSheetSource = "local"
	SourceServer BalanceSheetSource = "server"
)

// BalanceSheet is the admin-facing aggregate of a transaction set
type BalanceSheet struct {
	TotalRevenue          decimal.Decimal
	TotalTopups           decimal.Decimal
	TotalRefunds          decimal.Decimal
	TotalExpenses         decimal.Decimal
	TopupCount            int
	RejectedTopupCount    int
	RefundCount           int
	OrderCount            int
	CountsByType          map[TransactionType]int
	ActiveUsers           int
	PreviousBalance       decimal.Decimal
	NetPosition           decimal.Decimal
	NetCashFlow           decimal.Decimal
	TotalTopupsAndRefunds decimal.Decimal
	Source                BalanceSheetSource
}

// NewBalanceSheet returns an identity balance sheet
func NewBalanceSheet(source BalanceSheetSource) *BalanceSheet {
	return &BalanceSheet{
		CountsByType: make(map[TransactionType]int),
		Source:       source,
	}
}

// SuccessRate is the ratio of approved top-ups to decided ones, between 0 and 1.
// ok is false when no top-up was decided.
func (b BalanceSheet) SuccessRate() (float64, bool) {
	decided := b.TopupCount + b.RejectedTopupCount
	if decided == 0 {
		return 0, false
	}
	return float64(b.TopupCount) / float64(decided), true
}

// AverageOrderValue is revenue per order. ok is false without orders.
func (b BalanceSheet) AverageOrderValue() (decimal.Decimal, bool) {
	if b.OrderCount == 0 {
		return decimal.Zero, false
	}
	return b.TotalRevenue.Div(decimal.NewFromInt(int64(b.OrderCount))), true
}

// Derive fills the totals that depend on the accumulated sums
func (b *BalanceSheet) Derive(stats Stats) {
	b.NetPosition = b.TotalRevenue.Add(b.TotalTopups).Sub(b.TotalExpenses)
	b.NetCashFlow = stats.TotalCredits.Add(stats.TotalDebits)
	b.TotalTopupsAndRefunds = b.TotalTopups.Add(b.TotalRefunds)
}
