package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CartUsecase defines the per-customer cart operations. Every method
// returns the cart as it stands after the operation.
type CartUsecase interface {
	// Get returns the customer's current cart.
	Get(ctx context.Context, customerID uuid.UUID) (*entity.Cart, error)

	// Add puts one unit of the product into the cart, snapshotting the
	// catalog price on first add. Unknown product leaves the cart unchanged.
	Add(ctx context.Context, customerID, productID uuid.UUID) (*entity.Cart, error)

	// Increase bumps an existing line's quantity by one.
	Increase(ctx context.Context, customerID, productID uuid.UUID) (*entity.Cart, error)

	// Decrease lowers a line's quantity by one, removing the line when
	// it would reach zero.
	Decrease(ctx context.Context, customerID, productID uuid.UUID) (*entity.Cart, error)

	// Clear empties the cart.
	Clear(ctx context.Context, customerID uuid.UUID) error
}
