package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/entity"
)

// Transaction represents the database model for ledger entries.
// Amounts keep the raw upstream text; AmountValue is its numeric form for SQL
// aggregates and is NULL when the text could not be parsed.
type Transaction struct {
	ID              string              `gorm:"primaryKey;size:64"`
	Type            string              `gorm:"not null;size:32;index"`
	Amount          string              `gorm:"not null;size:64"`
	AmountValue     decimal.NullDecimal `gorm:"type:numeric(20,4)"`
	Balance         string              `gorm:"size:64"`
	BalanceValue    decimal.NullDecimal `gorm:"type:numeric(20,4)"`
	PreviousBalance *string             `gorm:"size:64"`
	Description     string              `gorm:"type:text"`
	UserName        *string             `gorm:"size:255"`
	CreatedAt       time.Time           `gorm:"not null;autoCreateTime:false"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}

// Raw returns the row as an unnormalized record
func (t Transaction) Raw() entity.RawTransaction {
	raw := entity.RawTransaction{
		ID:          t.ID,
		Type:        t.Type,
		Amount:      t.Amount,
		Balance:     t.Balance,
		Description: t.Description,
		UserName:    t.UserName,
		CreatedAt:   t.CreatedAt,
	}
	if t.PreviousBalance != nil {
		raw.PreviousBalance = *t.PreviousBalance
	}
	return raw
}

// NewTransactionModel builds a row from an entity, filling the numeric columns
func NewTransactionModel(tx entity.Transaction) Transaction {
	row := Transaction{
		ID:           tx.ID,
		Type:         string(tx.Type),
		Amount:       tx.Amount.String(),
		Balance:      tx.Balance.String(),
		BalanceValue: decimal.NewNullDecimal(tx.Balance),
		Description:  tx.Description,
		CreatedAt:    tx.CreatedAt,
	}
	if tx.AmountValid {
		row.AmountValue = decimal.NewNullDecimal(tx.Amount)
	}
	if tx.PreviousBalance != nil {
		prev := tx.PreviousBalance.String()
		row.PreviousBalance = &prev
	}
	if name, ok := tx.UserName(); ok {
		row.UserName = &name
	}
	return row
}
