package impl

import (
	"context"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAddSnapshotsPrice(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	customerID := uuid.New()

	product := f.seedProduct(t, "Mug", "4.50")

	cart, err := f.carts.Add(ctx, customerID, product.ID)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 1, cart.Lines[0].Quantity)
	assert.True(t, cart.Lines[0].PriceSnapshot.Equal(decimal.RequireFromString("4.50")))

	// A later price change does not touch the existing line.
	newPrice := decimal.RequireFromString("9.00")
	_, err = f.catalog.EditProduct(ctx, product.ID, &usecase.EditProductInput{Price: &newPrice})
	require.NoError(t, err)

	cart, err = f.carts.Add(ctx, customerID, product.ID)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
	assert.True(t, cart.Lines[0].PriceSnapshot.Equal(decimal.RequireFromString("4.50")))
}

func TestCartAddUnknownProductLeavesCartUnchanged(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	customerID := uuid.New()

	product := f.seedProduct(t, "Mug", "4.50")
	_, err := f.carts.Add(ctx, customerID, product.ID)
	require.NoError(t, err)

	_, err = f.carts.Add(ctx, customerID, uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))

	cart, err := f.carts.Get(ctx, customerID)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 1, cart.Lines[0].Quantity)
}

func TestCartIncreaseRequiresExistingLine(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.carts.Increase(ctx, uuid.New(), uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCartDecreaseRemovesLineAtZero(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	customerID := uuid.New()

	product := f.seedProduct(t, "Mug", "4.50")
	f.fillCart(t, customerID, product.ID, 2)

	cart, err := f.carts.Decrease(ctx, customerID, product.ID)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 1, cart.Lines[0].Quantity)

	cart, err = f.carts.Decrease(ctx, customerID, product.ID)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty(), "line at zero must be removed, not kept")
}

func TestCartClear(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	customerID := uuid.New()

	product := f.seedProduct(t, "Mug", "4.50")
	f.fillCart(t, customerID, product.ID, 1)

	require.NoError(t, f.carts.Clear(ctx, customerID))

	cart, err := f.carts.Get(ctx, customerID)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestCartTotalAcrossLines(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	customerID := uuid.New()

	mug := f.seedProduct(t, "Mug", "4.50")
	shirt := f.seedProduct(t, "Shirt", "12.00")
	f.fillCart(t, customerID, mug.ID, 2)
	f.fillCart(t, customerID, shirt.ID, 1)

	cart, err := f.carts.Get(ctx, customerID)
	require.NoError(t, err)
	assert.True(t, cart.Total().Equal(decimal.RequireFromString("21.00")))
}
