package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// NotificationUsecase exposes the customer's notification feed. Writes
// happen only inside the order lifecycle, never through this interface.
type NotificationUsecase interface {
	ListForRecipient(ctx context.Context, recipient string) ([]*entity.Notification, error)
}
