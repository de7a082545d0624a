package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// supportService implements the SupportUsecase interface.
type supportService struct {
	supportRepo repository.SupportMessageRepository
	logger      *slog.Logger
}

// SupportServiceParams holds dependencies for supportService, injected by Fx.
type SupportServiceParams struct {
	fx.In

	SupportRepo repository.SupportMessageRepository
	Logger      *slog.Logger
}

// NewSupportService is the constructor for supportService.
func NewSupportService(params SupportServiceParams) usecase.SupportUsecase {
	return &supportService{
		supportRepo: params.SupportRepo,
		logger:      params.Logger,
	}
}

// Send appends a customer support message.
func (srv *supportService) Send(ctx context.Context, sender string, input *usecase.SendSupportInput) (*entity.SupportMessage, error) {
	message := &entity.SupportMessage{
		ID:        uuid.New(),
		Sender:    sender,
		Message:   input.Message,
		CreatedAt: time.Now(),
	}

	if err := srv.supportRepo.Append(ctx, message); err != nil {
		return nil, errors.Wrap(err, "failed to append support message")
	}

	srv.logger.Info("Support message received", slog.Any("messageID", message.ID), slog.String("sender", sender))

	return message, nil
}

// ListForSender returns the customer's own messages with any replies.
func (srv *supportService) ListForSender(ctx context.Context, sender string) ([]*entity.SupportMessage, error) {
	messages, err := srv.supportRepo.FindBySender(ctx, sender)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list support messages")
	}

	return messages, nil
}

// ListAll returns every support message for the admin dashboard.
func (srv *supportService) ListAll(ctx context.Context) ([]*entity.SupportMessage, error) {
	messages, err := srv.supportRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list support messages")
	}

	return messages, nil
}

// Reply patches the admin reply onto a message. A message takes exactly
// one reply; answering again is a conflict.
func (srv *supportService) Reply(ctx context.Context, id uuid.UUID, input *usecase.ReplySupportInput) (*entity.SupportMessage, error) {
	message, err := srv.supportRepo.SetReply(ctx, id, input.Reply)
	if err != nil {
		if errors.Is(err, repository.ErrSupportMessageNotFound) {
			return nil, errors.Wrap(domainerrors.ErrSupportMessageNotFound, "support message does not exist")
		}
		if errors.Is(err, repository.ErrSupportMessageAnswered) {
			return nil, errors.Wrap(domainerrors.ErrConflict, "support message already answered")
		}

		return nil, errors.Wrap(err, "failed to set reply")
	}

	srv.logger.Info("Support message answered", slog.Any("messageID", id))

	return message, nil
}
