package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/ledger-dashboard/internal/domain/port/core"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/infrastructure/adapter/model"
)

// TransactionRepository implements persistence.TransactionSource using GORM
type TransactionRepository struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	errorMapper  *database.ErrorMapper
	metrics      *database.MetricsCollector
	opts         Options
}

var _ persistence.TransactionSource = (*TransactionRepository)(nil)

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, opts Options, logger coreport.Logger, timeProvider coreport.TimeProvider) *TransactionRepository {
	metrics := opts.Metrics
	if metrics == nil {
		metrics = database.NewMetricsCollector(logger, timeProvider)
	}
	return &TransactionRepository{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
		errorMapper:  database.NewErrorMapper(),
		metrics:      metrics,
		opts:         opts.withDefaults(),
	}
}

// typeTotal is one row of the per-type balance sheet aggregate
type typeTotal struct {
	Type     string
	Count    int
	Total    decimal.Decimal
	TotalAbs decimal.Decimal
}

// previousBalance is the single-row result of previousBalanceQuery
type previousBalance struct {
	Total decimal.Decimal
}

// flowTotals holds the cash-flow sums and the distinct user count
type flowTotals struct {
	Credits     decimal.Decimal
	Debits      decimal.Decimal
	ActiveUsers int
}

// FetchAllTransactions implements persistence.TransactionSource. Rows come newest first.
func (r *TransactionRepository) FetchAllTransactions(ctx context.Context) ([]entity.Transaction, error) {
	var rows []model.Transaction
	err := r.run(ctx, "fetch_all_transactions", func(db *gorm.DB) (int64, error) {
		rows = nil
		result := r.fetchAllQuery(db).Find(&rows)
		return result.RowsAffected, result.Error
	})
	if err != nil {
		return nil, err
	}

	r.logger.Debug("Fetched transaction snapshot", map[string]any{
		"rows": len(rows),
	})
	return toTransactions(rows, r.logger), nil
}

// SearchTransactions implements persistence.TransactionSource
func (r *TransactionRepository) SearchTransactions(ctx context.Context, term string, criteria entity.Criteria) ([]entity.Transaction, error) {
	var rows []model.Transaction
	err := r.run(ctx, "search_transactions", func(db *gorm.DB) (int64, error) {
		rows = nil
		result := r.searchQuery(db, term, criteria).Find(&rows)
		return result.RowsAffected, result.Error
	})
	if err != nil {
		return nil, err
	}

	if len(rows) >= r.opts.SearchResultCap {
		r.logger.Info("Transaction search hit the result cap", map[string]any{
			"term": term,
			"cap":  r.opts.SearchResultCap,
		})
	}
	return toTransactions(rows, r.logger), nil
}

// FetchBalanceSheet implements persistence.TransactionSource. Totals cover the date
// range when one is given; the previous balance always looks at every user's
// latest record before the start of today.
func (r *TransactionRepository) FetchBalanceSheet(ctx context.Context, dateRange *entity.DateRange) (*entity.BalanceSheet, error) {
	var (
		totals   []typeTotal
		flow     flowTotals
		previous decimal.Decimal
	)
	cutoff := entity.StartOfDay(r.timeProvider.Now().In(r.opts.Location))

	err := r.run(ctx, "fetch_balance_sheet", func(db *gorm.DB) (int64, error) {
		totals = nil
		if err := r.typeTotalsQuery(db, dateRange).Scan(&totals).Error; err != nil {
			return 0, err
		}
		if err := r.flowQuery(db, dateRange).Scan(&flow).Error; err != nil {
			return 0, err
		}
		var prev previousBalance
		if err := r.previousBalanceQuery(db, cutoff).Scan(&prev).Error; err != nil {
			return 0, err
		}
		previous = prev.Total
		return int64(len(totals)), nil
	})
	if err != nil {
		return nil, err
	}

	return buildBalanceSheet(totals, flow, previous), nil
}

// buildBalanceSheet folds the SQL aggregates into a balance sheet the same way the
// in-memory aggregation books each type
func buildBalanceSheet(totals []typeTotal, flow flowTotals, previous decimal.Decimal) *entity.BalanceSheet {
	sheet := entity.NewBalanceSheet(entity.SourceServer)

	for _, t := range totals {
		txType, err := entity.ParseTransactionType(t.Type)
		if err != nil {
			continue
		}
		sheet.CountsByType[txType] += t.Count

		switch txType {
		case entity.TypeOrder:
			sheet.TotalRevenue = sheet.TotalRevenue.Add(t.TotalAbs)
			sheet.OrderCount += t.Count
		case entity.TypeTopupApproved:
			sheet.TotalTopups = sheet.TotalTopups.Add(t.Total)
			sheet.TopupCount += t.Count
		case entity.TypeRefund:
			sheet.TotalRefunds = sheet.TotalRefunds.Add(t.Total)
			sheet.RefundCount += t.Count
		case entity.TypeTopupRejected:
			sheet.RejectedTopupCount += t.Count
		default:
			if txType.IsExpense() {
				sheet.TotalExpenses = sheet.TotalExpenses.Add(t.TotalAbs)
			}
		}
	}

	sheet.ActiveUsers = flow.ActiveUsers
	sheet.PreviousBalance = previous
	sheet.Derive(entity.Stats{
		TotalCredits: flow.Credits,
		TotalDebits:  flow.Debits,
	})
	return sheet
}

func (r *TransactionRepository) fetchAllQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&model.Transaction{}).Order("created_at DESC, id DESC")
}

// searchQuery matches the user name as a substring and applies the type and date
// criteria. Sign filtering stays with the caller.
func (r *TransactionRepository) searchQuery(db *gorm.DB, term string, criteria entity.Criteria) *gorm.DB {
	query := db.Model(&model.Transaction{}).
		Where(`user_name ILIKE ? ESCAPE '\'`, likePattern(term))
	if criteria.Type != "" {
		query = query.Where("type = ?", string(criteria.Type))
	}
	return withDateRange(query, criteria.DateRange).
		Order("created_at DESC, id DESC").
		Limit(r.opts.SearchResultCap)
}

func (r *TransactionRepository) typeTotalsQuery(db *gorm.DB, dateRange *entity.DateRange) *gorm.DB {
	query := db.Model(&model.Transaction{}).
		Select("type, COUNT(*) AS count, COALESCE(SUM(amount_value), 0) AS total, COALESCE(SUM(ABS(amount_value)), 0) AS total_abs")
	if dateRange != nil {
		query = withDateRange(query, *dateRange)
	}
	return query.Group("type")
}

func (r *TransactionRepository) flowQuery(db *gorm.DB, dateRange *entity.DateRange) *gorm.DB {
	query := db.Model(&model.Transaction{}).
		Select(`COALESCE(SUM(amount_value) FILTER (WHERE amount_value > 0), 0) AS credits,
			COALESCE(SUM(amount_value) FILTER (WHERE amount_value < 0), 0) AS debits,
			COUNT(DISTINCT NULLIF(TRIM(user_name), '')) AS active_users`)
	if dateRange != nil {
		query = withDateRange(query, *dateRange)
	}
	return query
}

// previousBalanceQuery sums every user's latest balance recorded before cutoff
func (r *TransactionRepository) previousBalanceQuery(db *gorm.DB, cutoff time.Time) *gorm.DB {
	return db.Raw(`
		SELECT COALESCE(SUM(latest.balance_value), 0) AS total
		FROM (
			SELECT DISTINCT ON (TRIM(user_name)) balance_value
			FROM transactions
			WHERE NULLIF(TRIM(user_name), '') IS NOT NULL
			  AND amount_value IS NOT NULL
			  AND created_at < ?
			ORDER BY TRIM(user_name), created_at DESC
		) AS latest`, cutoff)
}

// run executes op with the query timeout, transient-error retry and timing, and maps
// the final error onto the domain errors
func (r *TransactionRepository) run(ctx context.Context, operation string, op func(db *gorm.DB) (int64, error)) error {
	_, err := r.metrics.MeasureQuery(ctx, operation, func() (int64, error) {
		var rows int64
		err := database.RetryOnTransientError(ctx, r.opts.Retry, func(ctx context.Context) error {
			var opErr error
			rows, opErr = op(r.db.WithContext(ctx))
			return opErr
		}, r.logger)
		return rows, err
	})
	if err != nil {
		mapped := r.errorMapper.MapError(err, database.DatasetTransactions, operation)
		r.logger.Error("Transaction query failed", map[string]any{
			"operation": operation,
			"error":     err.Error(),
		})
		return mapped
	}
	return nil
}
