package jsonfile

import (
	"context"
	"sort"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// supportRepository implements repository.SupportMessageRepository on messages.json.
type supportRepository struct {
	collection *Collection[entity.SupportMessage]
}

// NewSupportMessageRepository is the constructor for supportRepository.
func NewSupportMessageRepository(store *Store) repository.SupportMessageRepository {
	return &supportRepository{
		collection: NewCollection[entity.SupportMessage](store, "messages"),
	}
}

// Append adds a new support message.
func (repo *supportRepository) Append(_ context.Context, message *entity.SupportMessage) error {
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}

	err := repo.collection.Update(func(items []entity.SupportMessage) ([]entity.SupportMessage, error) {
		return append(items, *message), nil
	})

	return errors.Wrap(err, "failed to append support message")
}

// FindBySender retrieves all messages sent by one customer, newest first.
func (repo *supportRepository) FindBySender(_ context.Context, sender string) ([]*entity.SupportMessage, error) {
	items, err := repo.collection.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load support messages")
	}

	messages := make([]*entity.SupportMessage, 0)
	for i := range items {
		if sameEmail(items[i].Sender, sender) {
			message := items[i]
			messages = append(messages, &message)
		}
	}
	sortMessagesNewestFirst(messages)

	return messages, nil
}

// List retrieves every support message, newest first.
func (repo *supportRepository) List(_ context.Context) ([]*entity.SupportMessage, error) {
	items, err := repo.collection.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load support messages")
	}

	messages := make([]*entity.SupportMessage, 0, len(items))
	for i := range items {
		message := items[i]
		messages = append(messages, &message)
	}
	sortMessagesNewestFirst(messages)

	return messages, nil
}

// SetReply patches the reply on a message. A message only takes one
// reply, so an already answered message is left untouched.
func (repo *supportRepository) SetReply(_ context.Context, id uuid.UUID, reply string) (*entity.SupportMessage, error) {
	var updated *entity.SupportMessage

	err := repo.collection.Update(func(items []entity.SupportMessage) ([]entity.SupportMessage, error) {
		for i := range items {
			if items[i].ID == id {
				if items[i].Answered() {
					return nil, repository.ErrSupportMessageAnswered
				}

				items[i].Reply = reply
				message := items[i]
				updated = &message

				return items, nil
			}
		}

		return nil, repository.ErrSupportMessageNotFound
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func sortMessagesNewestFirst(messages []*entity.SupportMessage) {
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt.After(messages[j].CreatedAt)
	})
}
