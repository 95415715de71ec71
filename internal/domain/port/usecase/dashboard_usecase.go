package usecase

import (
	"context"

	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/entity"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/port/report"
)

// TransactionRow is a transaction tagged with its freshness
type TransactionRow struct {
	entity.Transaction
	IsNew bool
}

// TransactionQuery selects a page (and optionally a scroll window) of the filtered transactions
type TransactionQuery struct {
	Criteria entity.Criteria
	Page     int              // 1-based, 0 means first page
	Viewport *entity.Viewport // TotalRows is derived from the page
	Remote   bool             // narrow the search term on the server instead of the cached snapshot
}

// TransactionPage is the response of a transaction query
type TransactionPage struct {
	Page         entity.PageInfo
	Rows         []TransactionRow
	Window       *entity.VisibleRange // nil when no viewport was given
	Summary      Summary
	Freshness    entity.Freshness
	SnapshotSize int
}

// Summary bundles the three aggregates of a filtered set
type Summary struct {
	Stats        entity.Stats
	SalesSummary []entity.UserSalesSummary
	BalanceSheet *entity.BalanceSheet
}

// ExportRequest describes which view to export and how
type ExportRequest struct {
	Criteria entity.Criteria
	Shape    report.Shape
	Format   report.Format
}

// ExportFile is a rendered export ready for download
type ExportFile struct {
	FileName    string
	ContentType string
	Content     []byte
}

// DashboardUseCase defines the operations behind the transaction dashboard views
type DashboardUseCase interface {
	// ParseCriteria validates raw filter inputs, interpreting dates in the dashboard location
	ParseCriteria(search, txType, sign, start, end string) (entity.Criteria, error)

	// Query filters the current snapshot, aggregates it and returns the requested page
	Query(ctx context.Context, query TransactionQuery) (*TransactionPage, error)

	// Summarize returns the stats, sales summary and balance sheet of the filtered set
	Summarize(ctx context.Context, criteria entity.Criteria) (*Summary, error)

	// Export renders one of the dashboard views into a file
	Export(ctx context.Context, req ExportRequest) (*ExportFile, error)

	// Refresh invalidates the cached snapshot and fetches a new one
	Refresh(ctx context.Context) error

	// Freshness reports whether new transactions arrived recently
	Freshness() entity.Freshness

	// Acknowledge clears the new-records flag, as when the view is opened
	Acknowledge()
}
