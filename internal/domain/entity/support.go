package entity

import (
	"time"

	"github.com/google/uuid"
)

// SupportMessage is a customer question with an optional admin reply.
// Messages are appended by customers; the reply is patched in once by
// an admin and never overwritten afterwards.
type SupportMessage struct {
	ID        uuid.UUID `json:"id"`
	Sender    string    `json:"sender"` // Email of the customer who sent the message.
	Message   string    `json:"message"`
	Reply     string    `json:"reply,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Answered reports whether an admin has replied to this message.
func (m *SupportMessage) Answered() bool {
	return m.Reply != ""
}
