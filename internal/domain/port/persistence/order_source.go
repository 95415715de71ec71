package persistence

import (
	"context"

	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/entity"
)

// OrderSource defines the read operations the order queue needs
type OrderSource interface {
	// FetchAllOrders retrieves the complete order snapshot
	//
	// Possible errors:
	// - ErrDatabaseConnection: If the backing store is unreachable
	FetchAllOrders(ctx context.Context) ([]entity.Order, error)
}
