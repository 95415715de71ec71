package aggregation

import (
	"strconv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/entity"
	coremocks "github.com/amirhossein-jamali/ledger-dashboard/mocks/port/core"
)

// now is 2024-01-06 10:00 UTC, so the previous-balance cutoff is 2024-01-06 00:00 UTC
var now = time.Date(2024, 1, 6, 10, 0, 0, 0, time.UTC)

func newTestAggregator() *Aggregator {
	return NewAggregator(coremocks.NewFakeTimeProvider(now), time.UTC)
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

type txOpt func(*entity.Transaction)

func withBalance(v string) txOpt {
	return func(tx *entity.Transaction) { tx.Balance = dec(v) }
}

func at(ts time.Time) txOpt {
	return func(tx *entity.Transaction) { tx.CreatedAt = ts }
}

func invalidAmount() txOpt {
	return func(tx *entity.Transaction) {
		tx.Amount = decimal.Zero
		tx.AmountValid = false
	}
}

var seq int

func newTx(user string, txType entity.TransactionType, amount string, opts ...txOpt) entity.Transaction {
	seq++
	tx := entity.Transaction{
		ID:          "tx-" + strconv.Itoa(seq),
		Type:        txType,
		Amount:      dec(amount),
		AmountValid: true,
		User:        entity.NewUserRef(user),
		CreatedAt:   now.Add(time.Duration(seq) * time.Minute),
	}
	for _, opt := range opts {
		opt(&tx)
	}
	return tx
}

func TestAggregate_SalesSummaryScenario(t *testing.T) {
	records := []entity.Transaction{
		newTx("A", entity.TypeOrder, "-50"),
		newTx("A", entity.TypeOrder, "-30"),
		newTx("B", entity.TypeOrder, "-20"),
	}

	result := newTestAggregator().Aggregate(records)

	require.Len(t, result.SalesSummary, 2)
	assert.Equal(t, "A", result.SalesSummary[0].UserName)
	assert.True(t, result.SalesSummary[0].TotalSales.Equal(dec("-80")))
	assert.Equal(t, 2, result.SalesSummary[0].OrderCount)
	assert.Equal(t, "B", result.SalesSummary[1].UserName)
	assert.True(t, result.SalesSummary[1].TotalSales.Equal(dec("-20")))
	assert.Equal(t, 1, result.SalesSummary[1].OrderCount)
}

func TestAggregate_SalesSummary(t *testing.T) {
	t.Run("should omit users without orders and track the latest balance", func(t *testing.T) {
		records := []entity.Transaction{
			newTx("A", entity.TypeOrder, "-10", withBalance("90")),
			newTx("C", entity.TypeTopupApproved, "100", withBalance("100")),
			newTx("A", entity.TypeTopupApproved, "50", withBalance("140"), at(now.Add(24*time.Hour))),
			newTx("A", entity.TypeCartAdd, "-5", withBalance("135"), at(now.Add(-24*time.Hour))),
		}

		result := newTestAggregator().Aggregate(records)

		require.Len(t, result.SalesSummary, 1)
		assert.Equal(t, "A", result.SalesSummary[0].UserName)
		assert.True(t, result.SalesSummary[0].LoanBalance.Equal(dec("140")))
	})

	t.Run("should break ties by name", func(t *testing.T) {
		records := []entity.Transaction{
			newTx("zoe", entity.TypeOrder, "-20"),
			newTx("amy", entity.TypeOrder, "20"),
		}

		result := newTestAggregator().Aggregate(records)

		require.Len(t, result.SalesSummary, 2)
		assert.Equal(t, "amy", result.SalesSummary[0].UserName)
		assert.Equal(t, "zoe", result.SalesSummary[1].UserName)
	})

	t.Run("should exclude malformed records from user-keyed totals", func(t *testing.T) {
		records := []entity.Transaction{
			newTx("", entity.TypeOrder, "-10"),
			newTx("D", entity.TypeOrder, "0", invalidAmount()),
			newTx("D", entity.TypeOrder, "-4"),
		}

		result := newTestAggregator().Aggregate(records)

		assert.Equal(t, 3, result.Stats.TotalTransactions)
		assert.True(t, result.Stats.TotalDebits.Equal(dec("-14")))
		require.Len(t, result.SalesSummary, 1)
		assert.Equal(t, 1, result.SalesSummary[0].OrderCount)
		assert.Equal(t, 1, result.BalanceSheet.ActiveUsers)
	})
}

func TestAggregate_Stats(t *testing.T) {
	t.Run("should degrade to identity values on an empty set", func(t *testing.T) {
		result := newTestAggregator().Aggregate(nil)

		assert.Equal(t, 0, result.Stats.TotalTransactions)
		assert.True(t, result.Stats.TotalCredits.IsZero())
		assert.True(t, result.Stats.TotalDebits.IsZero())
		assert.True(t, result.Stats.NetBalance.IsZero())
		assert.NotNil(t, result.SalesSummary)
		assert.Empty(t, result.SalesSummary)
		assert.Equal(t, 0, result.BalanceSheet.ActiveUsers)
		_, ok := result.BalanceSheet.SuccessRate()
		assert.False(t, ok)
	})

	t.Run("should keep net equal to credits plus debits", func(t *testing.T) {
		sets := [][]entity.Transaction{
			{newTx("A", entity.TypeTopupApproved, "100.25")},
			{newTx("A", entity.TypeOrder, "-0.01"), newTx("B", entity.TypeRefund, "0")},
			{
				newTx("A", entity.TypeTopupApproved, "1000"),
				newTx("A", entity.TypeOrder, "-333.33"),
				newTx("B", entity.TypeLoanDeduction, "-12.5"),
				newTx("B", entity.TypeRefund, "4.75"),
			},
		}
		for _, set := range sets {
			stats := newTestAggregator().Aggregate(set).Stats
			assert.True(t, stats.NetBalance.Equal(stats.TotalCredits.Add(stats.TotalDebits)))
			assert.Equal(t, len(set), stats.TotalTransactions)
		}
	})
}

func TestAggregate_BalanceSheet(t *testing.T) {
	records := []entity.Transaction{
		newTx("A", entity.TypeOrder, "-30"),
		newTx("A", entity.TypeOrder, "-20"),
		newTx("A", entity.TypeTopupApproved, "100"),
		newTx("B", entity.TypeTopupApproved, "50"),
		newTx("B", entity.TypeTopupRejected, "0"),
		newTx("B", entity.TypeRefund, "10"),
		newTx("C", entity.TypeLoanDeduction, "-15"),
		newTx("C", entity.TypeCartAdd, "-4"),
		newTx("C", entity.TypeCartRemove, "-1"),
		newTx("C", entity.TypeTopupRequest, "25"),
		newTx("C", entity.TypeLoanStatus, "0"),
	}

	sheet := newTestAggregator().Aggregate(records).BalanceSheet

	assert.True(t, sheet.TotalRevenue.Equal(dec("50")))
	assert.True(t, sheet.TotalTopups.Equal(dec("150")))
	assert.True(t, sheet.TotalRefunds.Equal(dec("10")))
	assert.True(t, sheet.TotalExpenses.Equal(dec("20")))
	assert.True(t, sheet.NetPosition.Equal(dec("180")))
	assert.True(t, sheet.TotalTopupsAndRefunds.Equal(dec("160")))
	assert.True(t, sheet.NetCashFlow.Equal(dec("115")))
	assert.Equal(t, 2, sheet.OrderCount)
	assert.Equal(t, 2, sheet.TopupCount)
	assert.Equal(t, 1, sheet.RejectedTopupCount)
	assert.Equal(t, 1, sheet.RefundCount)
	assert.Equal(t, 3, sheet.ActiveUsers)
	assert.Equal(t, 2, sheet.CountsByType[entity.TypeOrder])
	assert.Equal(t, 1, sheet.CountsByType[entity.TypeLoanStatus])
	assert.Equal(t, entity.SourceLocal, sheet.Source)

	rate, ok := sheet.SuccessRate()
	assert.True(t, ok)
	assert.InDelta(t, 0.6667, rate, 0.0001)

	avg, ok := sheet.AverageOrderValue()
	assert.True(t, ok)
	assert.True(t, avg.Equal(dec("25")))
}

func TestPreviousBalance(t *testing.T) {
	yesterday := now.Add(-12 * time.Hour) // 2024-01-05 22:00
	all := []entity.Transaction{
		newTx("Alice", entity.TypeTopupApproved, "100", withBalance("100"), at(yesterday.Add(-time.Hour))),
		newTx("Alice", entity.TypeOrder, "-40", withBalance("60"), at(yesterday)),
		newTx("Alina", entity.TypeTopupApproved, "30", withBalance("30"), at(yesterday.Add(-2*time.Hour))),
		newTx("Bob", entity.TypeTopupApproved, "200", withBalance("200"), at(yesterday.Add(-3*time.Hour))),
		newTx("Bob", entity.TypeOrder, "-50", withBalance("150"), at(now)),
		newTx("", entity.TypeRefund, "5", withBalance("999"), at(yesterday)),
	}
	agg := newTestAggregator()

	t.Run("should sum every user's latest pre-cutoff balance without criteria", func(t *testing.T) {
		got := agg.PreviousBalance(all, all, entity.Criteria{})
		assert.True(t, got.Equal(dec("290")), got.String())
	})

	t.Run("should ignore filters when computing from the unfiltered set", func(t *testing.T) {
		bobOnly := []entity.Transaction{all[4]}
		criteria := entity.Criteria{Type: entity.TypeOrder}

		got := agg.PreviousBalance(all, bobOnly, criteria)
		assert.True(t, got.Equal(dec("200")), got.String())
	})

	t.Run("should use the latest matching record with a search term", func(t *testing.T) {
		got := agg.PreviousBalance(all, nil, entity.Criteria{Search: "ali"})
		assert.True(t, got.Equal(dec("60")), got.String())

		got = agg.PreviousBalance(all, nil, entity.Criteria{Search: "nobody"})
		assert.True(t, got.IsZero())
	})

	t.Run("should follow the configured location for the cutoff", func(t *testing.T) {
		// local midnight in UTC+3 is 2024-01-05 21:00 UTC, which excludes Alice's records
		east := NewAggregator(coremocks.NewFakeTimeProvider(now), time.FixedZone("UTC+3", 3*60*60))
		assert.Equal(t, time.Date(2024, 1, 5, 21, 0, 0, 0, time.UTC), east.Cutoff().UTC())

		got := east.PreviousBalance(all, all, entity.Criteria{})
		assert.True(t, got.Equal(dec("230")), got.String())
	})

	t.Run("should fill the balance sheet through Compute", func(t *testing.T) {
		result := agg.Compute(all, all, entity.Criteria{})
		assert.True(t, result.BalanceSheet.PreviousBalance.Equal(dec("290")))
	})
}
