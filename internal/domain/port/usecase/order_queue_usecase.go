package usecase

import (
	"context"

	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/entity"
)

// OrderRow is an order tagged with its freshness
type OrderRow struct {
	entity.Order
	IsNew bool
}

// OrderQuery selects a page and scroll window of the order queue
type OrderQuery struct {
	Status   entity.OrderStatus // empty matches any status
	Search   string
	Page     int
	Viewport *entity.Viewport
}

// OrderPage is the response of an order queue query
type OrderPage struct {
	Page         entity.PageInfo
	Rows         []OrderRow
	Window       *entity.VisibleRange
	StatusCounts map[entity.OrderStatus]int
	Freshness    entity.Freshness
}

// OrderQueueUseCase defines the operations behind the order queue viewer
type OrderQueueUseCase interface {
	// Query filters, pages and windows the current order snapshot
	Query(ctx context.Context, query OrderQuery) (*OrderPage, error)

	// Refresh invalidates the cached snapshot and fetches a new one
	Refresh(ctx context.Context) error

	// Freshness reports whether new orders arrived recently
	Freshness() entity.Freshness

	// Acknowledge clears the new-records flag
	Acknowledge()
}
