package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/ledger-dashboard/internal/domain/port/core"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/infrastructure/adapter/model"
)

// OrderRepository implements persistence.OrderSource using GORM
type OrderRepository struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *database.ErrorMapper
	metrics     *database.MetricsCollector
	opts        Options
}

var _ persistence.OrderSource = (*OrderRepository)(nil)

// NewOrderRepository creates a new OrderRepository instance
func NewOrderRepository(db *gorm.DB, opts Options, logger coreport.Logger, timeProvider coreport.TimeProvider) *OrderRepository {
	metrics := opts.Metrics
	if metrics == nil {
		metrics = database.NewMetricsCollector(logger, timeProvider)
	}
	return &OrderRepository{
		db:          db,
		logger:      logger,
		errorMapper: database.NewErrorMapper(),
		metrics:     metrics,
		opts:        opts.withDefaults(),
	}
}

// FetchAllOrders implements persistence.OrderSource
func (r *OrderRepository) FetchAllOrders(ctx context.Context) ([]entity.Order, error) {
	var rows []model.Order
	_, err := r.metrics.MeasureQuery(ctx, "fetch_all_orders", func() (int64, error) {
		var affected int64
		err := database.RetryOnTransientError(ctx, r.opts.Retry, func(ctx context.Context) error {
			rows = nil
			result := r.fetchAllQuery(r.db.WithContext(ctx)).Find(&rows)
			affected = result.RowsAffected
			return result.Error
		}, r.logger)
		return affected, err
	})
	if err != nil {
		r.logger.Error("Order query failed", map[string]any{
			"operation": "fetch_all_orders",
			"error":     err.Error(),
		})
		return nil, r.errorMapper.MapError(err, database.DatasetOrders, "fetch_all_orders")
	}

	return toOrders(rows, r.logger), nil
}

func (r *OrderRepository) fetchAllQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&model.Order{}).Order("created_at DESC, id DESC")
}
