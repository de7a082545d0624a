// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the operations for order persistence.
type OrderRepository interface {
	// Create appends a new order to the collection.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByCustomer retrieves all orders placed by a customer, newest first.
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error)

	// FindActiveByCustomer retrieves the customer's most recent pending
	// order; ErrOrderNotFound when none exists.
	FindActiveByCustomer(ctx context.Context, customerID uuid.UUID) (*entity.Order, error)

	// List retrieves every order, newest first.
	List(ctx context.Context) ([]*entity.Order, error)

	// UpdateStatus transitions an order to the given status inside the
	// collection lock, but only when guard returns nil for the currently
	// persisted order. The updated order is returned.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus, guard func(*entity.Order) error) (*entity.Order, error)

	// FindPendingOlderThan retrieves pending orders created before the cutoff.
	FindPendingOlderThan(ctx context.Context, cutoff time.Time) ([]*entity.Order, error)
}
