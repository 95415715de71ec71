package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrInvalidAmount.Error() != "invalid amount format" {
		t.Errorf("ErrInvalidAmount has unexpected message: %s", ErrInvalidAmount.Error())
	}
	if ErrStaleResponse.Error() != "stale response discarded" {
		t.Errorf("ErrStaleResponse has unexpected message: %s", ErrStaleResponse.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidAmount", ErrInvalidAmount, 4001},
		{"InvalidType", ErrInvalidTransactionType, 4002},
		{"InvalidDate", ErrInvalidDate, 4003},
		{"InvalidDateRange", ErrInvalidDateRange, 4003},
		{"InvalidAmountSign", ErrInvalidAmountSign, 4004},
		{"InvalidPage", ErrInvalidPage, 4005},
		{"InvalidViewport", ErrInvalidViewport, 4006},
		{"UnsupportedExport", ErrUnsupportedExport, 4007},
		{"NotFound", ErrNotFound, 4040},
		{"RateLimited", ErrRateLimited, 4290},
		{"FetchFailed", ErrFetchFailed, 5020},
		{"DatabaseConnection", ErrDatabaseConnection, 5030},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidPage), 4005},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestFetchError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewFetchError("transactions", "transactions:all", 7, cause)

	expected := "fetch of transactions failed (signature transactions:all, request #7): connection reset"
	if err.Error() != expected {
		t.Errorf("FetchError.Error() = %s, want %s", err.Error(), expected)
	}

	if !errors.Is(err, ErrFetchFailed) {
		t.Errorf("errors.Is(err, ErrFetchFailed) = false, want true")
	}
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(err, cause) = false, want true")
	}
	if !IsFetchError(fmt.Errorf("load: %w", err)) {
		t.Errorf("IsFetchError on wrapped error = false, want true")
	}

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("errors.As(err, *FetchError) = false, want true")
	}
	fields := fetchErr.LogFields()
	if fields["dataset"] != "transactions" || fields["sequence"] != uint64(7) {
		t.Errorf("unexpected log fields: %v", fields)
	}
	if fields["error_code"] != CodeFetchFailed {
		t.Errorf("error_code = %v, want %d", fields["error_code"], CodeFetchFailed)
	}
}

func TestFetchErrorWithoutSignature(t *testing.T) {
	err := NewFetchError("transactions", "", 3, errors.New("timeout"))

	expected := "fetch of transactions failed (request #3): timeout"
	if err.Error() != expected {
		t.Errorf("FetchError.Error() = %s, want %s", err.Error(), expected)
	}
}

func TestRecordError(t *testing.T) {
	err := NewRecordError("tx-1", "type", "BOGUS", ErrInvalidTransactionType)

	expected := `record "tx-1" has invalid type "BOGUS": invalid transaction type`
	if err.Error() != expected {
		t.Errorf("RecordError.Error() = %s, want %s", err.Error(), expected)
	}
	if !errors.Is(err, ErrInvalidTransactionType) {
		t.Errorf("errors.Is(err, ErrInvalidTransactionType) = false, want true")
	}

	var recordErr *RecordError
	if !errors.As(err, &recordErr) {
		t.Fatalf("errors.As(err, *RecordError) = false, want true")
	}
	if recordErr.LogFields()["error_code"] != CodeInvalidType {
		t.Errorf("error_code = %v, want %d", recordErr.LogFields()["error_code"], CodeInvalidType)
	}
}

func TestIsValidationError(t *testing.T) {
	validation := []error{
		ErrInvalidAmount,
		ErrInvalidTransactionType,
		ErrInvalidDate,
		ErrInvalidDateRange,
		ErrInvalidAmountSign,
		ErrInvalidPage,
		ErrInvalidViewport,
		ErrUnsupportedExport,
		fmt.Errorf("bad query: %w", ErrInvalidRequest),
	}
	for _, err := range validation {
		if !IsValidationError(err) {
			t.Errorf("IsValidationError(%v) = false, want true", err)
		}
	}

	if IsValidationError(ErrFetchFailed) {
		t.Errorf("IsValidationError(ErrFetchFailed) = true, want false")
	}
	if IsValidationError(nil) {
		t.Errorf("IsValidationError(nil) = true, want false")
	}
}

func TestIsStaleResponse(t *testing.T) {
	if !IsStaleResponse(fmt.Errorf("request #1: %w", ErrStaleResponse)) {
		t.Errorf("IsStaleResponse on wrapped error = false, want true")
	}
	if IsStaleResponse(ErrFetchFailed) {
		t.Errorf("IsStaleResponse(ErrFetchFailed) = true, want false")
	}
}

func TestIsNotFoundError(t *testing.T) {
	if !IsNotFoundError(fmt.Errorf("order: %w", ErrNotFound)) {
		t.Errorf("IsNotFoundError on wrapped error = false, want true")
	}
	if IsNotFoundError(ErrInternalServer) {
		t.Errorf("IsNotFoundError(ErrInternalServer) = true, want false")
	}
}
