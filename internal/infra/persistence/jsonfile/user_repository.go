package jsonfile

import (
	"context"
	"strings"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// userRepository implements repository.UserRepository on users.json.
type userRepository struct {
	collection *Collection[entity.User]
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{
		collection: NewCollection[entity.User](store, "users"),
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	items, err := repo.collection.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load users")
	}

	for i := range items {
		if items[i].ID == id {
			user := items[i]

			return &user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	items, err := repo.collection.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load users")
	}

	for i := range items {
		if sameEmail(items[i].Email, email) {
			user := items[i]

			return &user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

// Create persists a new user. The duplicate-email check happens inside
// the collection lock, so two simultaneous signups cannot both succeed.
func (repo *userRepository) Create(_ context.Context, user *entity.User) error {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	return repo.collection.Update(func(items []entity.User) ([]entity.User, error) {
		for i := range items {
			if sameEmail(items[i].Email, user.Email) {
				return nil, repository.ErrEmailTaken
			}
		}

		return append(items, *user), nil
	})
}

// List retrieves every registered user.
func (repo *userRepository) List(_ context.Context) ([]*entity.User, error) {
	items, err := repo.collection.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load users")
	}

	users := make([]*entity.User, 0, len(items))
	for i := range items {
		user := items[i]
		users = append(users, &user)
	}

	return users, nil
}

func sameEmail(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
