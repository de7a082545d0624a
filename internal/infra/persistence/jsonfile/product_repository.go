package jsonfile

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// productRepository implements repository.ProductRepository on products.json.
type productRepository struct {
	collection *Collection[entity.Product]
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(store *Store) repository.ProductRepository {
	return &productRepository{
		collection: NewCollection[entity.Product](store, "products"),
	}
}

// List retrieves the full catalog.
func (repo *productRepository) List(_ context.Context) ([]*entity.Product, error) {
	items, err := repo.collection.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load products")
	}

	products := make([]*entity.Product, 0, len(items))
	for i := range items {
		product := items[i]
		products = append(products, &product)
	}

	return products, nil
}

// FindByID retrieves a single product by its unique ID.
func (repo *productRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	items, err := repo.collection.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load products")
	}

	for i := range items {
		if items[i].ID == id {
			product := items[i]

			return &product, nil
		}
	}

	return nil, repository.ErrProductNotFound
}

// Create persists a new product.
func (repo *productRepository) Create(_ context.Context, product *entity.Product) error {
	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now

	err := repo.collection.Update(func(items []entity.Product) ([]entity.Product, error) {
		return append(items, *product), nil
	})

	return errors.Wrap(err, "failed to create product")
}

// Apply mutates a product under the collection lock. The callback sees
// the currently persisted product, so partial edits compose instead of
// overwriting each other.
func (repo *productRepository) Apply(
	_ context.Context,
	id uuid.UUID,
	mutate func(*entity.Product) error,
) (*entity.Product, error) {
	var updated *entity.Product

	err := repo.collection.Update(func(items []entity.Product) ([]entity.Product, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}

			if err := mutate(&items[i]); err != nil {
				return nil, err
			}

			items[i].UpdatedAt = time.Now()
			product := items[i]
			updated = &product

			return items, nil
		}

		return nil, repository.ErrProductNotFound
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes a product; absence is reported, not ignored.
func (repo *productRepository) Delete(_ context.Context, id uuid.UUID) error {
	return repo.collection.Update(func(items []entity.Product) ([]entity.Product, error) {
		for i := range items {
			if items[i].ID == id {
				return append(items[:i], items[i+1:]...), nil
			}
		}

		return nil, repository.ErrProductNotFound
	})
}
