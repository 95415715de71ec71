package model

import (
	"time"

	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/entity"
)

// Order represents the database model for data-bundle orders
type Order struct {
	ID        string    `gorm:"primaryKey;size:64"`
	Reference string    `gorm:"not null;size:64;uniqueIndex"`
	UserName  *string   `gorm:"size:255"`
	Bundle    string    `gorm:"not null;size:32"`
	Recipient string    `gorm:"not null;size:32"`
	Network   string    `gorm:"size:32"`
	Amount    string    `gorm:"not null;size:64"`
	Status    string    `gorm:"not null;size:16"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false"`
}

// TableName specifies the table name for Order
func (Order) TableName() string {
	return "orders"
}

// Raw returns the row as an unnormalized order
func (o Order) Raw() entity.RawOrder {
	return entity.RawOrder{
		ID:        o.ID,
		Reference: o.Reference,
		UserName:  o.UserName,
		Bundle:    o.Bundle,
		Recipient: o.Recipient,
		Network:   o.Network,
		Amount:    o.Amount,
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
	}
}
