package repository

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/ledger-dashboard/internal/domain/port/core"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/infrastructure/adapter/model"
)

// DefaultSearchResultCap bounds a server-side search
const DefaultSearchResultCap = 1000

// Options tunes the gorm repositories
type Options struct {
	SearchResultCap int
	Retry           database.RetryConfig
	Location        *time.Location

	// Metrics is shared with the connection manager; nil gives each repository its own
	Metrics *database.MetricsCollector
}

// DefaultOptions returns the stock repository settings
func DefaultOptions() Options {
	return Options{
		SearchResultCap: DefaultSearchResultCap,
		Retry:           database.DefaultRetryConfig(),
		Location:        time.UTC,
	}
}

func (o Options) withDefaults() Options {
	defaults := DefaultOptions()
	if o.SearchResultCap <= 0 {
		o.SearchResultCap = defaults.SearchResultCap
	}
	if o.Retry.MaxRetries <= 0 {
		o.Retry = defaults.Retry
	}
	if o.Location == nil {
		o.Location = defaults.Location
	}
	return o
}

// likePattern builds a case-insensitive substring pattern with LIKE wildcards escaped
func likePattern(term string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(strings.TrimSpace(term))
	return "%" + escaped + "%"
}

// withDateRange narrows a query to an inclusive created_at range; zero bounds are open
func withDateRange(db *gorm.DB, dateRange entity.DateRange) *gorm.DB {
	if !dateRange.Start.IsZero() {
		db = db.Where("created_at >= ?", dateRange.Start)
	}
	if !dateRange.End.IsZero() {
		db = db.Where("created_at <= ?", dateRange.End)
	}
	return db
}

// toTransactions normalizes rows. Rows that cannot become a transaction at all
// (blank ID, unknown type, no timestamp) are skipped with a warning.
func toTransactions(rows []model.Transaction, logger coreport.Logger) []entity.Transaction {
	out := make([]entity.Transaction, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		tx, err := entity.NewTransaction(row.Raw())
		if err != nil {
			skipped++
			logger.Warn("Skipping malformed transaction row", map[string]any{
				"id":    row.ID,
				"error": err.Error(),
			})
			continue
		}
		out = append(out, *tx)
	}
	if skipped > 0 {
		logger.Warn("Transaction snapshot contained malformed rows", map[string]any{
			"skipped": skipped,
			"kept":    len(out),
		})
	}
	return out
}

// toOrders normalizes order rows, skipping the ones that cannot be read
func toOrders(rows []model.Order, logger coreport.Logger) []entity.Order {
	out := make([]entity.Order, 0, len(rows))
	for _, row := range rows {
		order, err := entity.NewOrder(row.Raw())
		if err != nil {
			logger.Warn("Skipping malformed order row", map[string]any{
				"id":    row.ID,
				"error": err.Error(),
			})
			continue
		}
		out = append(out, *order)
	}
	return out
}
