package aggregation

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/ledger-dashboard/internal/domain/port/core"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/usecase/filter"
)

// Result holds the three aggregates of a filtered set
type Result struct {
	Stats        entity.Stats
	SalesSummary []entity.UserSalesSummary
	BalanceSheet *entity.BalanceSheet
}

// Aggregator reduces transaction sets into dashboard aggregates
type Aggregator struct {
	timeProvider coreport.TimeProvider
	location     *time.Location
}

// NewAggregator creates an aggregator whose calendar day follows loc (UTC when nil)
func NewAggregator(timeProvider coreport.TimeProvider, loc *time.Location) *Aggregator {
	if loc == nil {
		loc = time.UTC
	}
	return &Aggregator{timeProvider: timeProvider, location: loc}
}

type userTotals struct {
	summary   entity.UserSalesSummary
	latest    time.Time
	hasLatest bool
}

// Aggregate computes stats, sales summary and balance sheet in one pass.
// PreviousBalance is left at zero; see Compute.
func (a *Aggregator) Aggregate(filtered []entity.Transaction) Result {
	stats := entity.Stats{
		TotalCredits: decimal.Zero,
		TotalDebits:  decimal.Zero,
	}
	sheet := entity.NewBalanceSheet(entity.SourceLocal)
	users := make(map[string]*userTotals)
	seenUsers := make(map[string]struct{})

	for _, tx := range filtered {
		stats.TotalTransactions++
		switch tx.Amount.Sign() {
		case 1:
			stats.TotalCredits = stats.TotalCredits.Add(tx.Amount)
		case -1:
			stats.TotalDebits = stats.TotalDebits.Add(tx.Amount)
		}

		sheet.CountsByType[tx.Type]++
		switch tx.Type {
		case entity.TypeOrder:
			sheet.TotalRevenue = sheet.TotalRevenue.Add(tx.Amount.Abs())
			sheet.OrderCount++
		case entity.TypeTopupApproved:
			sheet.TotalTopups = sheet.TotalTopups.Add(tx.Amount)
			sheet.TopupCount++
		case entity.TypeRefund:
			sheet.TotalRefunds = sheet.TotalRefunds.Add(tx.Amount)
			sheet.RefundCount++
		case entity.TypeTopupRejected:
			sheet.RejectedTopupCount++
		case entity.TypeLoanDeduction, entity.TypeCartAdd, entity.TypeCartRemove:
			sheet.TotalExpenses = sheet.TotalExpenses.Add(tx.Amount.Abs())
		}

		name, ok := tx.UserName()
		if !ok {
			continue
		}
		seenUsers[name] = struct{}{}
		if !tx.AmountValid {
			continue
		}

		acc, ok := users[name]
		if !ok {
			acc = &userTotals{summary: entity.UserSalesSummary{UserName: name}}
			users[name] = acc
		}
		if tx.Type == entity.TypeOrder {
			acc.summary.TotalSales = acc.summary.TotalSales.Add(tx.Amount)
			acc.summary.OrderCount++
		}
		if !acc.hasLatest || !tx.CreatedAt.Before(acc.latest) {
			acc.latest = tx.CreatedAt
			acc.hasLatest = true
			acc.summary.LoanBalance = tx.Balance
		}
	}

	stats.NetBalance = stats.TotalCredits.Add(stats.TotalDebits)
	sheet.ActiveUsers = len(seenUsers)
	sheet.Derive(stats)

	return Result{
		Stats:        stats,
		SalesSummary: salesSummary(users),
		BalanceSheet: sheet,
	}
}

// Compute aggregates the filtered set and reconstructs the previous balance from all records
func (a *Aggregator) Compute(all, filtered []entity.Transaction, criteria entity.Criteria) Result {
	result := a.Aggregate(filtered)
	result.BalanceSheet.PreviousBalance = a.PreviousBalance(all, filtered, criteria)
	return result
}

// Cutoff returns the start of the current calendar day
func (a *Aggregator) Cutoff() time.Time {
	return entity.StartOfDay(a.timeProvider.Now().In(a.location))
}

// PreviousBalance reconstructs the balance held before today from the unfiltered records.
// With a search term it is the balance of the latest pre-cutoff record among matching
// users. Otherwise it sums each user's latest pre-cutoff balance, over every user when
// no criterion is active and over the users present in filtered when one is.
func (a *Aggregator) PreviousBalance(all, filtered []entity.Transaction, criteria entity.Criteria) decimal.Decimal {
	cutoff := a.Cutoff()

	if criteria.HasSearch() {
		var latest *entity.Transaction
		for i := range all {
			tx := &all[i]
			if !tx.AmountValid || !tx.CreatedAt.Before(cutoff) || !filter.MatchesSearch(*tx, criteria.Search) {
				continue
			}
			if latest == nil || !tx.CreatedAt.Before(latest.CreatedAt) {
				latest = tx
			}
		}
		if latest == nil {
			return decimal.Zero
		}
		return latest.Balance
	}

	var scope map[string]struct{}
	if criteria.IsActive() {
		scope = make(map[string]struct{})
		for _, tx := range filtered {
			if name, ok := tx.UserName(); ok {
				scope[name] = struct{}{}
			}
		}
	}

	latest := make(map[string]entity.Transaction)
	for _, tx := range all {
		if !tx.AmountValid || !tx.CreatedAt.Before(cutoff) {
			continue
		}
		name, ok := tx.UserName()
		if !ok {
			continue
		}
		if scope != nil {
			if _, in := scope[name]; !in {
				continue
			}
		}
		if prev, ok := latest[name]; !ok || !tx.CreatedAt.Before(prev.CreatedAt) {
			latest[name] = tx
		}
	}

	total := decimal.Zero
	for _, tx := range latest {
		total = total.Add(tx.Balance)
	}
	return total
}

// salesSummary keeps users with at least one order, largest absolute sales first
func salesSummary(users map[string]*userTotals) []entity.UserSalesSummary {
	summary := make([]entity.UserSalesSummary, 0, len(users))
	for _, acc := range users {
		if acc.summary.OrderCount > 0 {
			summary = append(summary, acc.summary)
		}
	}
	sort.Slice(summary, func(i, j int) bool {
		if c := summary[i].TotalSales.Abs().Cmp(summary[j].TotalSales.Abs()); c != 0 {
			return c > 0
		}
		return summary[i].UserName < summary[j].UserName
	})
	return summary
}
