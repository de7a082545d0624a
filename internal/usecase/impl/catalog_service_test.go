package impl

import (
	"context"
	"sync"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProductRejectsNegativePrice(t *testing.T) {
	f := newFixture(t)

	_, err := f.catalog.CreateProduct(context.Background(), &usecase.CreateProductInput{
		Name:  "Broken",
		Price: decimal.RequireFromString("-1.00"),
	})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPrice))
}

func TestEditProductPartialUpdate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	product := f.seedProduct(t, "Mug", "4.50")

	name := "Travel Mug"
	updated, err := f.catalog.EditProduct(ctx, product.ID, &usecase.EditProductInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Travel Mug", updated.Name)
	assert.True(t, updated.Price.Equal(decimal.RequireFromString("4.50")), "untouched fields keep their values")
}

func TestConcurrentPartialEditsBothLand(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	product := f.seedProduct(t, "Mug", "4.50")

	name := "Travel Mug"
	price := decimal.RequireFromString("5.00")
	errs := make(chan error, 2)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, err := f.catalog.EditProduct(ctx, product.ID, &usecase.EditProductInput{Name: &name})
		errs <- err
	}()
	go func() {
		defer wg.Done()
		_, err := f.catalog.EditProduct(ctx, product.ID, &usecase.EditProductInput{Price: &price})
		errs <- err
	}()
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	products, err := f.catalog.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Travel Mug", products[0].Name, "name edit must survive the price edit")
	assert.True(t, products[0].Price.Equal(price), "price edit must survive the name edit")
}

func TestEditProductRejectsNegativePrice(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	product := f.seedProduct(t, "Mug", "4.50")

	bad := decimal.RequireFromString("-0.01")
	_, err := f.catalog.EditProduct(ctx, product.ID, &usecase.EditProductInput{Price: &bad})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPrice))
}

func TestEditMissingProduct(t *testing.T) {
	f := newFixture(t)

	name := "Ghost"
	_, err := f.catalog.EditProduct(context.Background(), uuid.New(), &usecase.EditProductInput{Name: &name})
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestDeleteProduct(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	product := f.seedProduct(t, "Mug", "4.50")
	require.NoError(t, f.catalog.DeleteProduct(ctx, product.ID))

	products, err := f.catalog.ListProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)

	// Deleting again reports not found rather than succeeding silently.
	err = f.catalog.DeleteProduct(ctx, product.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}
