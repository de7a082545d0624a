package jsonfile

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingOrder(customerID uuid.UUID, createdAt time.Time) *entity.Order {
	return &entity.Order{
		ID:         uuid.New(),
		CustomerID: customerID,
		Shipping:   entity.ShippingInfo{FullName: "Ada Lovelace", Email: "ada@example.com"},
		Lines: []entity.CartLine{
			{ProductID: uuid.New(), ProductName: "Keyboard", Quantity: 2, PriceSnapshot: decimal.RequireFromString("10.00")},
		},
		Total:     decimal.RequireFromString("20.00"),
		Status:    entity.OrderStatusPending,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestOrderRepositoryCreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(newTestStore(t))

	order := newPendingOrder(uuid.New(), time.Now())
	require.NoError(t, repo.Create(ctx, order))

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, found.ID)
	assert.True(t, found.Total.Equal(order.Total))

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestOrderRepositoryFindByCustomerNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(newTestStore(t))

	customerID := uuid.New()
	older := newPendingOrder(customerID, time.Now().Add(-time.Hour))
	newer := newPendingOrder(customerID, time.Now())
	stranger := newPendingOrder(uuid.New(), time.Now())

	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))
	require.NoError(t, repo.Create(ctx, stranger))

	orders, err := repo.FindByCustomer(ctx, customerID)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, newer.ID, orders[0].ID)
	assert.Equal(t, older.ID, orders[1].ID)
}

func TestOrderRepositoryFindActiveByCustomer(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(newTestStore(t))

	customerID := uuid.New()
	order := newPendingOrder(customerID, time.Now())
	require.NoError(t, repo.Create(ctx, order))

	active, err := repo.FindActiveByCustomer(ctx, customerID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, active.ID)

	_, err = repo.UpdateStatus(ctx, order.ID, entity.OrderStatusApproved, nil)
	require.NoError(t, err)

	_, err = repo.FindActiveByCustomer(ctx, customerID)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestOrderRepositoryUpdateStatusGuard(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(newTestStore(t))

	order := newPendingOrder(uuid.New(), time.Now())
	require.NoError(t, repo.Create(ctx, order))

	guard := func(current *entity.Order) error {
		if current.Status != entity.OrderStatusPending {
			return assert.AnError
		}

		return nil
	}

	updated, err := repo.UpdateStatus(ctx, order.ID, entity.OrderStatusApproved, guard)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusApproved, updated.Status)

	// Second transition fails in the guard and leaves the state alone.
	_, err = repo.UpdateStatus(ctx, order.ID, entity.OrderStatusRejected, guard)
	require.ErrorIs(t, err, assert.AnError)

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusApproved, found.Status)
}

func TestOrderRepositoryUpdateStatusMissingOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(newTestStore(t))

	_, err := repo.UpdateStatus(ctx, uuid.New(), entity.OrderStatusApproved, nil)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestOrderRepositoryFindPendingOlderThan(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(newTestStore(t))

	stale := newPendingOrder(uuid.New(), time.Now().Add(-48*time.Hour))
	fresh := newPendingOrder(uuid.New(), time.Now())
	approvedStale := newPendingOrder(uuid.New(), time.Now().Add(-48*time.Hour))

	require.NoError(t, repo.Create(ctx, stale))
	require.NoError(t, repo.Create(ctx, fresh))
	require.NoError(t, repo.Create(ctx, approvedStale))
	_, err := repo.UpdateStatus(ctx, approvedStale.ID, entity.OrderStatusApproved, nil)
	require.NoError(t, err)

	found, err := repo.FindPendingOlderThan(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, stale.ID, found[0].ID)
}
