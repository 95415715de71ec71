package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/ledger-dashboard/internal/domain/error"
	"github.com/shopspring/decimal"
)

// Record is anything the record store can hold and diff by identifier
type Record interface {
	RecordID() string
}

// TransactionType represents the kind of ledger entry
type TransactionType string

// Transaction types
const (
	TypeTopupApproved TransactionType = "TOPUP_APPROVED"
	TypeTopupRejected TransactionType = "TOPUP_REJECTED"
	TypeTopupRequest  TransactionType = "TOPUP_REQUEST"
	TypeOrder         TransactionType = "ORDER"
	TypeRefund        TransactionType = "REFUND"
	TypeLoanDeduction TransactionType = "LOAN_DEDUCTION"
	TypeCartAdd       TransactionType = "CART_ADD"
	TypeCartRemove    TransactionType = "CART_REMOVE"
	TypeLoanStatus    TransactionType = "LOAN_STATUS"
)

var transactionTypes = []TransactionType{
	TypeTopupApproved,
	TypeTopupRejected,
	TypeTopupRequest,
	TypeOrder,
	TypeRefund,
	TypeLoanDeduction,
	TypeCartAdd,
	TypeCartRemove,
	TypeLoanStatus,
}

// TransactionTypes returns every known transaction type in display order
func TransactionTypes() []TransactionType {
	out := make([]TransactionType, len(transactionTypes))
	copy(out, transactionTypes)
	return out
}

// IsValidTransactionType validates if the type belongs to the closed enumeration
func IsValidTransactionType(value string) bool {
	for _, t := range transactionTypes {
		if string(t) == value {
			return true
		}
	}
	return false
}

// ParseTransactionType normalizes case and whitespace before validating
func ParseTransactionType(value string) (TransactionType, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	if !IsValidTransactionType(normalized) {
		return "", errs.ErrInvalidTransactionType
	}
	return TransactionType(normalized), nil
}

// CarriesPreviousBalance reports whether a prior balance is meaningful for the type
func (t TransactionType) CarriesPreviousBalance() bool {
	return t == TypeRefund || t == TypeTopupApproved || t == TypeOrder
}

// IsExpense reports whether the type is booked as an expense on the balance sheet
func (t TransactionType) IsExpense() bool {
	return t == TypeLoanDeduction || t == TypeCartAdd || t == TypeCartRemove
}

// Transaction is an immutable ledger entry affecting one user's balance
type Transaction struct {
	ID              string           // Unique identifier
	Type            TransactionType  // Kind of entry
	Amount          decimal.Decimal  // Signed amount, credit when >= 0
	AmountValid     bool             // False when the upstream amount could not be parsed
	Balance         decimal.Decimal  // User balance right after this entry
	PreviousBalance *decimal.Decimal // Only set for REFUND, TOPUP_APPROVED and ORDER
	Description     string           // Free text, display only
	User            *UserRef         // Display-only owner reference, nil when missing
	CreatedAt       time.Time        // Ordering and range-filtering key
}

// RawTransaction is a transaction as delivered by a collaborator, before normalization.
// Amount fields accept numbers or strings with currency decoration.
type RawTransaction struct {
	ID              string
	Type            string
	Amount          any
	Balance         any
	PreviousBalance any
	Description     string
	UserName        *string
	CreatedAt       time.Time
}

// NewTransaction normalizes a raw record.
// An unparseable amount does not reject the record: the amount is booked as zero and
// AmountValid is false, so aggregation keeps running over the rest of the data.
func NewTransaction(raw RawTransaction) (*Transaction, error) {
	id := strings.TrimSpace(raw.ID)
	if id == "" {
		return nil, errs.ErrInvalidTransactionID
	}

	txType, err := ParseTransactionType(raw.Type)
	if err != nil {
		return nil, errs.NewRecordError(id, "type", raw.Type, err)
	}

	if raw.CreatedAt.IsZero() {
		return nil, errs.NewRecordError(id, "createdAt", "", errs.ErrInvalidDate)
	}

	amount, amountErr := ParseAmount(raw.Amount)
	balance, balanceErr := ParseAmount(raw.Balance)
	if balanceErr != nil {
		balance = decimal.Zero
	}

	txn := &Transaction{
		ID:          id,
		Type:        txType,
		Amount:      amount,
		AmountValid: amountErr == nil,
		Balance:     balance,
		Description: raw.Description,
		CreatedAt:   raw.CreatedAt,
	}
	if amountErr != nil {
		txn.Amount = decimal.Zero
	}

	if txType.CarriesPreviousBalance() && raw.PreviousBalance != nil {
		if prev, err := ParseAmount(raw.PreviousBalance); err == nil {
			txn.PreviousBalance = &prev
		}
	}

	if raw.UserName != nil {
		txn.User = NewUserRef(*raw.UserName)
	}

	return txn, nil
}

// RecordID implements Record
func (t Transaction) RecordID() string {
	return t.ID
}

// UserName returns the owning user's name, false when the user reference is missing
func (t Transaction) UserName() (string, bool) {
	return userName(t.User)
}

// IsCredit returns true if this transaction increased the user's balance
func (t Transaction) IsCredit() bool {
	return t.Amount.Sign() > 0
}

// IsDebit returns true if this transaction decreased the user's balance
func (t Transaction) IsDebit() bool {
	return t.Amount.Sign() < 0
}
