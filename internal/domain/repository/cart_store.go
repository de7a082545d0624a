// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CartStore holds the per-customer session carts. Carts have no
// identity beyond the customer session: they live in memory with a TTL
// and are never written to durable storage.
type CartStore interface {
	// Get returns the customer's cart, or an empty cart when none exists.
	Get(ctx context.Context, customerID uuid.UUID) (*entity.Cart, error)

	// Put replaces the customer's cart and refreshes its TTL.
	Put(ctx context.Context, cart *entity.Cart) error

	// Clear removes the customer's cart.
	Clear(ctx context.Context, customerID uuid.UUID) error
}
