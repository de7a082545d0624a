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

// orderRepository implements repository.OrderRepository on orders.json.
type orderRepository struct {
	collection *Collection[entity.Order]
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(store *Store) repository.OrderRepository {
	return &orderRepository{
		collection: NewCollection[entity.Order](store, "orders"),
	}
}

// Create appends a new order to the collection.
func (repo *orderRepository) Create(_ context.Context, order *entity.Order) error {
	err := repo.collection.Update(func(items []entity.Order) ([]entity.Order, error) {
		return append(items, *order), nil
	})

	return errors.Wrap(err, "failed to create order")
}

// FindByID retrieves an order by its unique ID.
func (repo *orderRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	items, err := repo.collection.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load orders")
	}

	for i := range items {
		if items[i].ID == id {
			order := items[i]

			return &order, nil
		}
	}

	return nil, repository.ErrOrderNotFound
}

// FindByCustomer retrieves all orders placed by a customer, newest first.
func (repo *orderRepository) FindByCustomer(_ context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	items, err := repo.collection.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load orders")
	}

	orders := make([]*entity.Order, 0)
	for i := range items {
		if items[i].CustomerID == customerID {
			order := items[i]
			orders = append(orders, &order)
		}
	}
	sortNewestFirst(orders)

	return orders, nil
}

// FindActiveByCustomer retrieves the customer's most recent pending order.
func (repo *orderRepository) FindActiveByCustomer(ctx context.Context, customerID uuid.UUID) (*entity.Order, error) {
	orders, err := repo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	for _, order := range orders {
		if order.Status == entity.OrderStatusPending {
			return order, nil
		}
	}

	return nil, repository.ErrOrderNotFound
}

// List retrieves every order, newest first.
func (repo *orderRepository) List(_ context.Context) ([]*entity.Order, error) {
	items, err := repo.collection.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load orders")
	}

	orders := make([]*entity.Order, 0, len(items))
	for i := range items {
		order := items[i]
		orders = append(orders, &order)
	}
	sortNewestFirst(orders)

	return orders, nil
}

// UpdateStatus transitions an order under the collection lock. The
// guard sees the currently persisted order, so check-and-set is atomic
// with respect to concurrent transitions.
func (repo *orderRepository) UpdateStatus(
	_ context.Context,
	id uuid.UUID,
	status entity.OrderStatus,
	guard func(*entity.Order) error,
) (*entity.Order, error) {
	var updated *entity.Order

	err := repo.collection.Update(func(items []entity.Order) ([]entity.Order, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}

			if guard != nil {
				current := items[i]
				if err := guard(&current); err != nil {
					return nil, err
				}
			}

			items[i].Status = status
			items[i].UpdatedAt = time.Now()
			order := items[i]
			updated = &order

			return items, nil
		}

		return nil, repository.ErrOrderNotFound
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// FindPendingOlderThan retrieves pending orders created before the cutoff.
func (repo *orderRepository) FindPendingOlderThan(_ context.Context, cutoff time.Time) ([]*entity.Order, error) {
	items, err := repo.collection.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load orders")
	}

	orders := make([]*entity.Order, 0)
	for i := range items {
		if items[i].Status == entity.OrderStatusPending && items[i].CreatedAt.Before(cutoff) {
			order := items[i]
			orders = append(orders, &order)
		}
	}

	return orders, nil
}

func sortNewestFirst(orders []*entity.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}
