// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// NotificationRepository defines the append-only notification log.
// Append is the only mutator; entries are never edited or removed.
type NotificationRepository interface {
	// Append adds a notification to the log.
	Append(ctx context.Context, notification *entity.Notification) error

	// FindByRecipient retrieves all notifications addressed to a recipient, newest first.
	FindByRecipient(ctx context.Context, recipient string) ([]*entity.Notification, error)
}
