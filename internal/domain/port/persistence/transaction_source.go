package persistence

import (
	"context"

	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/entity"
)

// TransactionSource defines the read operations the dashboard needs from the ledger
type TransactionSource interface {
	// FetchAllTransactions retrieves the complete, unbounded transaction snapshot
	//
	// Possible errors:
	// - ErrDatabaseConnection: If the backing store is unreachable
	FetchAllTransactions(ctx context.Context) ([]entity.Transaction, error)

	// SearchTransactions retrieves transactions whose user name contains term,
	// narrowed by the type and date criteria. The result is bounded by a
	// server-side cap, so callers must not treat it as a complete set.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If the backing store is unreachable
	SearchTransactions(ctx context.Context, term string, criteria entity.Criteria) ([]entity.Transaction, error)

	// FetchBalanceSheet retrieves a precomputed balance sheet over all
	// transactions, optionally restricted to a date range (nil = unbounded).
	// The result never reflects search, type or sign filters.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If the backing store is unreachable
	FetchBalanceSheet(ctx context.Context, dateRange *entity.DateRange) (*entity.BalanceSheet, error)
}
