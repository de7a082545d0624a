package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// SendSupportInput is a customer support message.
type SendSupportInput struct {
	Message string `json:"message" validate:"required"`
}

// ReplySupportInput is the admin reply patched onto a message.
type ReplySupportInput struct {
	Reply string `json:"reply" validate:"required"`
}

// SupportUsecase handles customer support messaging.
type SupportUsecase interface {
	Send(ctx context.Context, sender string, input *SendSupportInput) (*entity.SupportMessage, error)
	ListForSender(ctx context.Context, sender string) ([]*entity.SupportMessage, error)
	ListAll(ctx context.Context) ([]*entity.SupportMessage, error)
	Reply(ctx context.Context, id uuid.UUID, input *ReplySupportInput) (*entity.SupportMessage, error)
}
