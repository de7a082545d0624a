package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a customer-facing message emitted by an order
// lifecycle transition. The log is append-only: notifications are
// never mutated or deleted once written.
type Notification struct {
	ID        uuid.UUID `json:"id"`
	Recipient string    `json:"recipient"` // Email of the customer the message is addressed to.
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
