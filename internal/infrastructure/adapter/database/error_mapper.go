package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	errs "github.com/amirhossein-jamali/ledger-dashboard/internal/domain/error"
)

// Dataset names the table family an error came from
type Dataset string

const (
	// DatasetTransactions is the ledger table
	DatasetTransactions Dataset = "transactions"
	// DatasetOrders is the bundle order table
	DatasetOrders Dataset = "orders"
	// DatasetSchema is the migration bookkeeping table
	DatasetSchema Dataset = "schema"
)

// Postgres SQLSTATE codes treated specially
const (
	sqlStateSerializationFailure = "40001"
	sqlStateDeadlockDetected     = "40P01"
	sqlStateQueryCanceled        = "57014"
	sqlStateTooManyConnections   = "53300"
	sqlStateAdminShutdown        = "57P01"
	sqlStateUndefinedTable       = "42P01"
)

// ErrorMapper maps database errors to domain errors
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapError maps a database error to a domain error. The original error stays in the
// chain so logs keep the driver message.
func (m *ErrorMapper) MapError(err error, dataset Dataset, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s: %w", errs.ErrNotFound, dataset, err)
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %s %s timed out: %w", errs.ErrDatabaseConnection, dataset, operation, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case strings.HasPrefix(pgErr.Code, "08"),
			pgErr.Code == sqlStateTooManyConnections,
			pgErr.Code == sqlStateAdminShutdown,
			pgErr.Code == sqlStateQueryCanceled:
			return fmt.Errorf("%w: %s %s: %w", errs.ErrDatabaseConnection, dataset, operation, err)
		case pgErr.Code == sqlStateUndefinedTable:
			return fmt.Errorf("%w: %s table missing: %w", errs.ErrInternalServer, dataset, err)
		default:
			return fmt.Errorf("%w: %s %s: %w", errs.ErrInternalServer, dataset, operation, err)
		}
	}

	errMsg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "no connection") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "broken pipe"):
		return fmt.Errorf("%w: %s %s: %w", errs.ErrDatabaseConnection, dataset, operation, err)

	case strings.Contains(errMsg, "timeout"):
		return fmt.Errorf("%w: %s %s timed out: %w", errs.ErrDatabaseConnection, dataset, operation, err)

	default:
		return fmt.Errorf("%w: %s %s: %w", errs.ErrInternalServer, dataset, operation, err)
	}
}

// IsTransient reports whether retrying the same statement may succeed
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == sqlStateSerializationFailure ||
			pgErr.Code == sqlStateDeadlockDetected ||
			pgErr.Code == sqlStateTooManyConnections ||
			pgErr.Code == sqlStateAdminShutdown ||
			strings.HasPrefix(pgErr.Code, "08")
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "deadlock") ||
		strings.Contains(errMsg, "serialization") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "too many connections") ||
		strings.Contains(errMsg, "server closed") ||
		strings.Contains(errMsg, "broken pipe") ||
		strings.Contains(errMsg, "unexpected eof")
}
