package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// PaymentConfirmer asks an external ledger whether payment for an order
// has cleared. Implementations must bound the call with a timeout and
// must report failures as (false, err): a confirmer error degrades to
// "unconfirmed", never to "approved".
type PaymentConfirmer interface {
	// Confirm reports whether a cleared payment referencing the order exists.
	Confirm(ctx context.Context, order *entity.Order) (bool, error)
}
