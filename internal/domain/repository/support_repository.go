// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrSupportMessageNotFound is returned when a support message is not found.
var ErrSupportMessageNotFound = errors.New("support message not found")

// ErrSupportMessageAnswered is returned when a reply already exists on a message.
var ErrSupportMessageAnswered = errors.New("support message already answered")

// SupportMessageRepository stores customer support messages. Messages
// follow the same append/patch pattern as notifications: customers
// append, admins patch in a single reply.
type SupportMessageRepository interface {
	// Append adds a new support message.
	Append(ctx context.Context, message *entity.SupportMessage) error

	// FindBySender retrieves all messages sent by one customer, newest first.
	FindBySender(ctx context.Context, sender string) ([]*entity.SupportMessage, error)

	// List retrieves every support message, newest first.
	List(ctx context.Context) ([]*entity.SupportMessage, error)

	// SetReply patches the reply on a message; ErrSupportMessageNotFound if
	// absent, ErrSupportMessageAnswered if a reply was already patched in.
	SetReply(ctx context.Context, id uuid.UUID, reply string) (*entity.SupportMessage, error)
}
