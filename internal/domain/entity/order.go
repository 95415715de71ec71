package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/ledger-dashboard/internal/domain/error"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle state of a data-bundle order
type OrderStatus string

// Order statuses
const (
	OrderPending    OrderStatus = "PENDING"
	OrderProcessing OrderStatus = "PROCESSING"
	OrderCompleted  OrderStatus = "COMPLETED"
	OrderFailed     OrderStatus = "FAILED"
	OrderCancelled  OrderStatus = "CANCELLED"
)

// ParseOrderStatus normalizes and validates an order status
func ParseOrderStatus(value string) (OrderStatus, error) {
	status := OrderStatus(strings.ToUpper(strings.TrimSpace(value)))
	switch status {
	case OrderPending, OrderProcessing, OrderCompleted, OrderFailed, OrderCancelled:
		return status, nil
	default:
		return "", errs.ErrInvalidOrderStatus
	}
}

// Order is a data-bundle purchase shown in the order queue
type Order struct {
	ID        string
	Reference string
	User      *UserRef
	Bundle    string // Bundle label, e.g. "5GB"
	Recipient string // Phone number receiving the bundle
	Network   string
	Amount    decimal.Decimal
	Status    OrderStatus
	CreatedAt time.Time
}

// RawOrder is an order as delivered by a collaborator, before normalization
type RawOrder struct {
	ID        string
	Reference string
	UserName  *string
	Bundle    string
	Recipient string
	Network   string
	Amount    any
	Status    string
	CreatedAt time.Time
}

// NewOrder normalizes a raw order. Unparseable amounts become zero.
func NewOrder(raw RawOrder) (*Order, error) {
	id := strings.TrimSpace(raw.ID)
	if id == "" {
		return nil, errs.NewRecordError(raw.Reference, "id", raw.ID, errs.ErrInvalidRequest)
	}

	status, err := ParseOrderStatus(raw.Status)
	if err != nil {
		return nil, errs.NewRecordError(id, "status", raw.Status, err)
	}

	if raw.CreatedAt.IsZero() {
		return nil, errs.NewRecordError(id, "createdAt", "", errs.ErrInvalidDate)
	}

	amount, err := ParseAmount(raw.Amount)
	if err != nil {
		amount = decimal.Zero
	}

	order := &Order{
		ID:        id,
		Reference: strings.TrimSpace(raw.Reference),
		Bundle:    raw.Bundle,
		Recipient: strings.TrimSpace(raw.Recipient),
		Network:   raw.Network,
		Amount:    amount,
		Status:    status,
		CreatedAt: raw.CreatedAt,
	}
	if raw.UserName != nil {
		order.User = NewUserRef(*raw.UserName)
	}
	return order, nil
}

// RecordID implements Record
func (o Order) RecordID() string {
	return o.ID
}

// UserName returns the ordering user's name, false when missing
func (o Order) UserName() (string, bool) {
	return userName(o.User)
}

// MatchesSearch reports whether the term occurs in the reference, recipient or user name.
// A blank term matches every order.
func (o Order) MatchesSearch(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(o.Reference), term) ||
		strings.Contains(strings.ToLower(o.Recipient), term) {
		return true
	}
	name, ok := o.UserName()
	return ok && strings.Contains(strings.ToLower(name), term)
}
