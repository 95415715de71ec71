package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidAmount      = 4001
	CodeInvalidType        = 4002
	CodeInvalidDate        = 4003
	CodeInvalidAmountSign  = 4004
	CodeInvalidPage        = 4005
	CodeInvalidViewport    = 4006
	CodeUnsupportedExport  = 4007
	CodeInvalidRequest     = 4008
	CodeInvalidOrderStatus = 4009
	CodeNotFound           = 4040
	CodeRateLimited        = 4290

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeFetchFailed        = 5020
	CodeDatabaseConnection = 5030
)

// Base error types
var (
	// ErrInvalidAmount is returned when an amount cannot be parsed into a decimal value
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrInvalidTransactionID is returned when a record arrives without an identifier
	ErrInvalidTransactionID = errors.New("transaction ID cannot be empty")

	// ErrInvalidTransactionType is returned when the type is outside the closed enumeration
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidOrderStatus is returned when an order status is not recognised
	ErrInvalidOrderStatus = errors.New("invalid order status")

	// ErrInvalidDate is returned when a date or timestamp cannot be parsed
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidDateRange is returned when the start date is after the end date
	ErrInvalidDateRange = errors.New("start date must not be after end date")

	// ErrInvalidAmountSign is returned for an amount-sign filter outside all|positive|negative
	ErrInvalidAmountSign = errors.New("invalid amount sign filter")

	// ErrInvalidPage is returned when a page number or page size is not usable
	ErrInvalidPage = errors.New("invalid page")

	// ErrInvalidViewport is returned when the scroll viewport cannot produce a window
	ErrInvalidViewport = errors.New("invalid viewport")

	// ErrUnsupportedExport is returned for an unknown export shape or format
	ErrUnsupportedExport = errors.New("unsupported export")

	// ErrFetchFailed is returned when a collaborator could not deliver a snapshot
	ErrFetchFailed = errors.New("fetch failed")

	// ErrStaleResponse marks a response that lost the race against a newer one
	ErrStaleResponse = errors.New("stale response discarded")

	// ErrNotApplicable is returned for ratios whose denominator is zero
	ErrNotApplicable = errors.New("not applicable")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrRateLimited is returned when a client exceeds the request budget
	ErrRateLimited = errors.New("too many requests")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidTransactionType):
		return CodeInvalidType
	case errors.Is(err, ErrInvalidOrderStatus):
		return CodeInvalidOrderStatus
	case errors.Is(err, ErrInvalidDate), errors.Is(err, ErrInvalidDateRange):
		return CodeInvalidDate
	case errors.Is(err, ErrInvalidAmountSign):
		return CodeInvalidAmountSign
	case errors.Is(err, ErrInvalidPage):
		return CodeInvalidPage
	case errors.Is(err, ErrInvalidViewport):
		return CodeInvalidViewport
	case errors.Is(err, ErrUnsupportedExport):
		return CodeUnsupportedExport
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrRateLimited):
		return CodeRateLimited
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	case errors.Is(err, ErrFetchFailed):
		return CodeFetchFailed
	default:
		return CodeInternalServer
	}
}

// FetchError describes a failed snapshot retrieval
type FetchError struct {
	Dataset   string
	Signature string
	Sequence  uint64
	Err       error
}

// Error implements the error interface for FetchError
func (e *FetchError) Error() string {
	if e.Signature == "" {
		return fmt.Sprintf("fetch of %s failed (request #%d): %v", e.Dataset, e.Sequence, e.Err)
	}
	return fmt.Sprintf("fetch of %s failed (signature %s, request #%d): %v",
		e.Dataset, e.Signature, e.Sequence, e.Err)
}

// Unwrap returns the underlying error
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is reports FetchError as an ErrFetchFailed
func (e *FetchError) Is(target error) bool {
	return target == ErrFetchFailed
}

// LogFields returns a map of fields for structured logging
func (e *FetchError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "fetch_error",
		"dataset":    e.Dataset,
		"signature":  e.Signature,
		"sequence":   e.Sequence,
		"error":      e.Err.Error(),
		"error_code": CodeFetchFailed,
	}
}

// NewFetchError creates a new fetch error
func NewFetchError(dataset, signature string, sequence uint64, err error) error {
	return &FetchError{
		Dataset:   dataset,
		Signature: signature,
		Sequence:  sequence,
		Err:       err,
	}
}

// RecordError describes a record that could not be normalized
type RecordError struct {
	RecordID string
	Field    string
	Value    string
	Err      error
}

// Error implements the error interface for RecordError
func (e *RecordError) Error() string {
	return fmt.Sprintf("record %q has invalid %s %q: %v", e.RecordID, e.Field, e.Value, e.Err)
}

// Unwrap returns the underlying error
func (e *RecordError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *RecordError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "record_error",
		"record_id":  e.RecordID,
		"field":      e.Field,
		"value":      e.Value,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewRecordError creates a detailed record error
func NewRecordError(recordID, field, value string, err error) error {
	return &RecordError{
		RecordID: recordID,
		Field:    field,
		Value:    value,
		Err:      err,
	}
}

// IsFetchError checks if the error is a failed fetch
func IsFetchError(err error) bool {
	return errors.Is(err, ErrFetchFailed)
}

// IsStaleResponse checks if the error marks a discarded stale response
func IsStaleResponse(err error) bool {
	return errors.Is(err, ErrStaleResponse)
}

// IsValidationError checks if the error was caused by bad client input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidTransactionType) ||
		errors.Is(err, ErrInvalidOrderStatus) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrInvalidDateRange) ||
		errors.Is(err, ErrInvalidAmountSign) ||
		errors.Is(err, ErrInvalidPage) ||
		errors.Is(err, ErrInvalidViewport) ||
		errors.Is(err, ErrUnsupportedExport) ||
		errors.Is(err, ErrInvalidRequest)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
