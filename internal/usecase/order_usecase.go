package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckoutInput carries the shipping and payment details supplied on checkout.
type CheckoutInput struct {
	FullName      string `json:"full_name" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Address       string `json:"address" validate:"required"`
	Country       string `json:"country" validate:"required"`
	City          string `json:"city" validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"required"`
}

// ContinueInput identifies the pending order to confirm intent on.
type ContinueInput struct {
	OrderID uuid.UUID `json:"order_id" validate:"required"`
}

// ApproveInput identifies the order to approve. SkipPaymentCheck is the
// manual-approval fallback: when false and a payment confirmer is
// configured, the external ledger must confirm the payment first.
type ApproveInput struct {
	OrderID          uuid.UUID
	SkipPaymentCheck bool
}

// CheckoutView is the data rendered with the checkout form.
type CheckoutView struct {
	Cart      *entity.Cart      `json:"cart"`
	Countries []*entity.Country `json:"countries"`
}

// OrderUsecase is the order lifecycle state machine: it creates orders
// from carts and advances them through pending, approved, rejected and
// expired, emitting notifications on transitions.
type OrderUsecase interface {
	// CheckoutView returns the current cart together with the country
	// lookup for the shipping form.
	CheckoutView(ctx context.Context, customerID uuid.UUID) (*CheckoutView, error)

	// Checkout turns a non-empty cart into a pending order and clears the cart.
	Checkout(ctx context.Context, customerID uuid.UUID, input *CheckoutInput) (*entity.Order, error)

	// ContinueCheckout acknowledges a pending order without mutating it.
	ContinueCheckout(ctx context.Context, customerID, orderID uuid.UUID) (*entity.Order, error)

	// GetActiveOrder returns the customer's most recent pending order.
	GetActiveOrder(ctx context.Context, customerID uuid.UUID) (*entity.Order, error)

	// ListOrders returns the customer's orders, newest first.
	ListOrders(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error)

	// ListAllOrders returns every order for the admin dashboard.
	ListAllOrders(ctx context.Context) ([]*entity.Order, error)

	// Approve transitions a pending order to approved and notifies the
	// customer. Approving a non-pending order is a conflict.
	Approve(ctx context.Context, input *ApproveInput) (*entity.Order, error)

	// Reject transitions a pending order to rejected and notifies the customer.
	Reject(ctx context.Context, orderID uuid.UUID) (*entity.Order, error)

	// ExpirePending transitions stale pending orders to expired and
	// returns how many were expired.
	ExpirePending(ctx context.Context) (int, error)
}
