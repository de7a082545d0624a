package jsonfile

import (
	"context"
	"sort"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
)

// notificationRepository implements the append-only notification log
// on notifications.json.
type notificationRepository struct {
	collection *Collection[entity.Notification]
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(store *Store) repository.NotificationRepository {
	return &notificationRepository{
		collection: NewCollection[entity.Notification](store, "notifications"),
	}
}

// Append adds a notification to the log.
func (repo *notificationRepository) Append(_ context.Context, notification *entity.Notification) error {
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now()
	}

	err := repo.collection.Update(func(items []entity.Notification) ([]entity.Notification, error) {
		return append(items, *notification), nil
	})

	return errors.Wrap(err, "failed to append notification")
}

// FindByRecipient retrieves all notifications addressed to a recipient, newest first.
func (repo *notificationRepository) FindByRecipient(_ context.Context, recipient string) ([]*entity.Notification, error) {
	items, err := repo.collection.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load notifications")
	}

	notifications := make([]*entity.Notification, 0)
	for i := range items {
		if sameEmail(items[i].Recipient, recipient) {
			notification := items[i]
			notifications = append(notifications, &notification)
		}
	}

	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})

	return notifications, nil
}
