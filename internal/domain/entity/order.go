package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	// OrderStatusPending is the initial state of every checked-out order.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusApproved is the terminal success state.
	OrderStatusApproved OrderStatus = "approved"
	// OrderStatusRejected is the terminal state for declined payments.
	OrderStatusRejected OrderStatus = "rejected"
	// OrderStatusExpired is the terminal state for orders left pending too long.
	OrderStatusExpired OrderStatus = "expired"
)

// String returns the string representation of the status.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the status is a known value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusApproved, OrderStatusRejected, OrderStatusExpired:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is allowed from this status.
func (s OrderStatus) IsTerminal() bool {
	return s != OrderStatusPending
}

// ShippingInfo is the customer-supplied delivery information captured at checkout.
type ShippingInfo struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	Country  string `json:"country"`
	City     string `json:"city"`
}

// Order is a checked-out cart. Lines and Total are snapshots taken at
// creation; they are never recomputed from live catalog prices.
type Order struct {
	ID            uuid.UUID       `json:"id"`
	CustomerID    uuid.UUID       `json:"customer_id"`
	Shipping      ShippingInfo    `json:"shipping"`
	Lines         []CartLine      `json:"lines"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"payment_method"`
	Status        OrderStatus     `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
