package migration

import (
	"context"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/ledger-dashboard/internal/domain/port/core"
)

// AdvancedIndexManager manages PostgreSQL-specific indexes
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

// CreateAdvancedIndexes creates the indexes behind the previous-balance lookup,
// date scans and substring search. Trigram search is optional: without the
// pg_trgm extension ILIKE still works, only slower.
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)
	db := m.db.WithContext(ctx)

	// Serves DISTINCT ON (user_name) ... ORDER BY user_name, created_at DESC
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_transactions_user_latest
		ON transactions (user_name, created_at DESC)
		WHERE user_name IS NOT NULL AND amount_value IS NOT NULL
	`).Error; err != nil {
		m.logger.Error("Failed to create latest-balance index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_transactions_created_at_brin
		ON transactions USING BRIN (created_at)
		WITH (pages_per_range = 32)
	`).Error; err != nil {
		m.logger.Error("Failed to create BRIN index on created_at", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pg_trgm`).Error; err != nil {
		m.logger.Warn("pg_trgm unavailable, user search will scan", map[string]any{
			"error": err.Error(),
		})
	} else {
		for _, statement := range []string{
			`CREATE INDEX IF NOT EXISTS idx_transactions_user_name_trgm
			 ON transactions USING GIN (user_name gin_trgm_ops)`,
			`CREATE INDEX IF NOT EXISTS idx_orders_search_trgm
			 ON orders USING GIN ((reference || ' ' || recipient || ' ' || coalesce(user_name, '')) gin_trgm_ops)`,
		} {
			if err := db.Exec(statement).Error; err != nil {
				m.logger.Warn("Failed to create trigram index", map[string]any{
					"error": err.Error(),
				})
			}
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL planner tweaks. Failures are logged only.
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) error {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)
	db := m.db.WithContext(ctx)

	// Ledger rows are append-only
	if err := db.Exec(`ALTER TABLE transactions SET (fillfactor = 100)`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for transactions table", map[string]any{
			"error": err.Error(),
		})
	}

	if err := db.Exec(`ALTER TABLE transactions ALTER COLUMN user_name SET STATISTICS 1000`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for user_name", map[string]any{
			"error": err.Error(),
		})
	}

	m.logger.Info("PostgreSQL performance tweaks applied successfully", nil)
	return nil
}
