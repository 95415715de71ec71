package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/ledger-dashboard/internal/domain/error"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNewTransaction(t *testing.T) {
	createdAt := time.Date(2024, 1, 5, 10, 30, 0, 0, time.UTC)

	t.Run("Valid transaction creation", func(t *testing.T) {
		tx, err := NewTransaction(RawTransaction{
			ID:              "tx123",
			Type:            "order",
			Amount:          "-GH₵50.00",
			Balance:         "150.00",
			PreviousBalance: 200,
			Description:     "5GB bundle",
			UserName:        strPtr("Alice"),
			CreatedAt:       createdAt,
		})

		require.NoError(t, err)
		assert.Equal(t, "tx123", tx.ID)
		assert.Equal(t, TypeOrder, tx.Type)
		assert.True(t, tx.Amount.Equal(decimal.NewFromInt(-50)))
		assert.True(t, tx.AmountValid)
		assert.True(t, tx.Balance.Equal(decimal.NewFromInt(150)))
		require.NotNil(t, tx.PreviousBalance)
		assert.True(t, tx.PreviousBalance.Equal(decimal.NewFromInt(200)))
		assert.Equal(t, createdAt, tx.CreatedAt)
		assert.True(t, tx.IsDebit())
		assert.False(t, tx.IsCredit())

		name, ok := tx.UserName()
		assert.True(t, ok)
		assert.Equal(t, "Alice", name)
		assert.Equal(t, "tx123", tx.RecordID())
	})

	t.Run("Previous balance dropped for types without one", func(t *testing.T) {
		tx, err := NewTransaction(RawTransaction{
			ID:              "tx1",
			Type:            string(TypeCartAdd),
			Amount:          -10,
			Balance:         0,
			PreviousBalance: 10,
			CreatedAt:       createdAt,
		})

		require.NoError(t, err)
		assert.Nil(t, tx.PreviousBalance)
	})

	t.Run("Unparseable amount is booked as zero", func(t *testing.T) {
		tx, err := NewTransaction(RawTransaction{
			ID:        "tx2",
			Type:      string(TypeRefund),
			Amount:    "n/a",
			Balance:   "12",
			CreatedAt: createdAt,
		})

		require.NoError(t, err)
		assert.False(t, tx.AmountValid)
		assert.True(t, tx.Amount.IsZero())
		assert.False(t, tx.IsCredit())
		assert.False(t, tx.IsDebit())
	})

	t.Run("Missing user", func(t *testing.T) {
		tx, err := NewTransaction(RawTransaction{
			ID:        "tx3",
			Type:      string(TypeTopupApproved),
			Amount:    100,
			Balance:   100,
			UserName:  strPtr("   "),
			CreatedAt: createdAt,
		})

		require.NoError(t, err)
		assert.Nil(t, tx.User)
		_, ok := tx.UserName()
		assert.False(t, ok)
	})

	t.Run("Empty transactionID", func(t *testing.T) {
		tx, err := NewTransaction(RawTransaction{Type: string(TypeOrder), CreatedAt: createdAt})

		assert.ErrorIs(t, err, errs.ErrInvalidTransactionID)
		assert.Nil(t, tx)
	})

	t.Run("Invalid type", func(t *testing.T) {
		tx, err := NewTransaction(RawTransaction{ID: "tx4", Type: "BONUS", CreatedAt: createdAt})

		assert.ErrorIs(t, err, errs.ErrInvalidTransactionType)
		assert.Nil(t, tx)
	})

	t.Run("Missing timestamp", func(t *testing.T) {
		tx, err := NewTransaction(RawTransaction{ID: "tx5", Type: string(TypeOrder)})

		assert.ErrorIs(t, err, errs.ErrInvalidDate)
		assert.Nil(t, tx)
	})
}

func TestTransactionTypes(t *testing.T) {
	types := TransactionTypes()
	assert.Len(t, types, 9)

	for _, tt := range types {
		assert.True(t, IsValidTransactionType(string(tt)), string(tt))
	}
	assert.False(t, IsValidTransactionType("order"))

	parsed, err := ParseTransactionType(" topup_rejected ")
	require.NoError(t, err)
	assert.Equal(t, TypeTopupRejected, parsed)

	assert.True(t, TypeRefund.CarriesPreviousBalance())
	assert.True(t, TypeTopupApproved.CarriesPreviousBalance())
	assert.True(t, TypeOrder.CarriesPreviousBalance())
	assert.False(t, TypeLoanStatus.CarriesPreviousBalance())

	assert.True(t, TypeLoanDeduction.IsExpense())
	assert.True(t, TypeCartAdd.IsExpense())
	assert.True(t, TypeCartRemove.IsExpense())
	assert.False(t, TypeOrder.IsExpense())
}

func TestNewOrder(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	order, err := NewOrder(RawOrder{
		ID:        "o-1",
		Reference: "REF-778",
		UserName:  strPtr("Kofi"),
		Bundle:    "5GB",
		Recipient: "0241234567",
		Network:   "MTN",
		Amount:    "GH₵ 25.00",
		Status:    "pending",
		CreatedAt: createdAt,
	})
	require.NoError(t, err)
	assert.Equal(t, OrderPending, order.Status)
	assert.True(t, order.Amount.Equal(decimal.NewFromInt(25)))
	assert.Equal(t, "o-1", order.RecordID())

	assert.True(t, order.MatchesSearch("ref-778"))
	assert.True(t, order.MatchesSearch("0241"))
	assert.True(t, order.MatchesSearch("kof"))
	assert.True(t, order.MatchesSearch(" "))
	assert.False(t, order.MatchesSearch("ama"))

	_, err = NewOrder(RawOrder{ID: "o-2", Status: "lost", CreatedAt: createdAt})
	assert.ErrorIs(t, err, errs.ErrInvalidOrderStatus)
}
